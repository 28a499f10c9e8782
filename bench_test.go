package lexcore_test

import (
	"strings"
	"testing"

	"github.com/lexcore-go/lexcore"
	"github.com/lexcore-go/lexcore/token"
)

func BenchmarkLexer(b *testing.B) {
	src := []byte(strings.Repeat("foo + 123 * bar_baz / 4.5e2 // comment\n", 64))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := lexcore.NewDefault(src)
		for {
			tok := l.Next()
			if tok.Kind == token.EndOfFile {
				break
			}
		}
	}
}

func BenchmarkLexerSkipWhitespace(b *testing.B) {
	src := []byte(strings.Repeat("foo + 123 * bar_baz / 4.5e2\n", 64))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := lexcore.NewDefault(src, lexcore.WithSkipWhitespace[token.DefaultKind](true))
		for {
			tok := l.Next()
			if tok.Kind == token.EndOfFile {
				break
			}
		}
	}
}
