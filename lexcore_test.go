package lexcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexcore-go/lexcore"
	"github.com/lexcore-go/lexcore/position"
	"github.com/lexcore-go/lexcore/token"
)

func collect(l *lexcore.Lexer[token.DefaultKind]) []token.Token[token.DefaultKind] {
	var toks []token.Token[token.DefaultKind]
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EndOfFile {
			return toks
		}
	}
}

func TestEmptyInputYieldsEOF(t *testing.T) {
	l := lexcore.NewDefault(nil)
	toks := collect(l)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EndOfFile, toks[0].Kind)
}

func TestArithmeticExpression(t *testing.T) {
	l := lexcore.NewDefault([]byte("x + 42"))
	toks := collect(l)
	kinds := make([]token.DefaultKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.DefaultKind{
		token.Identifier, token.Whitespace, token.Plus, token.Whitespace,
		token.IntegerLiteral, token.EndOfFile,
	}, kinds)
	assert.Equal(t, "x", string(toks[0].Lexeme()))
	assert.Equal(t, "42", string(toks[4].Lexeme()))
}

func TestCRLFCountedAsSingleLineBreak(t *testing.T) {
	l := lexcore.NewDefault([]byte("a\r\nb"))
	toks := collect(l)
	require.GreaterOrEqual(t, len(toks), 3)
	last := toks[len(toks)-2] // "b" identifier, before EOF
	assert.EqualValues(t, 2, last.Position.Line)
	assert.EqualValues(t, 1, last.Position.Column)
}

func TestTabAdvancesToNextStop(t *testing.T) {
	l := lexcore.NewDefault([]byte("\tx"), lexcore.WithTabWidth[token.DefaultKind](4))
	toks := collect(l)
	// Whitespace token (the tab), then identifier at column 5.
	require.GreaterOrEqual(t, len(toks), 2)
	assert.EqualValues(t, 5, toks[1].Position.Column)
}

func TestUnterminatedStringRecovers(t *testing.T) {
	l := lexcore.NewDefault([]byte(`"abc`))
	toks := collect(l)
	require.Len(t, toks, 2)
	assert.Equal(t, token.StringLiteral, toks[0].Kind)
	assert.True(t, l.Errors().HasErrors())
	stats := l.Errors().Stats()
	assert.Equal(t, 1, stats.Total)
}

func TestNonNestingCommentRecordsNestingTooDeep(t *testing.T) {
	l := lexcore.NewDefault([]byte("/* outer /* inner */ tail */"))
	toks := collect(l)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.Comment, toks[0].Kind)
	assert.True(t, l.Errors().HasErrors())
}

func TestLineCommentStopsAtNewline(t *testing.T) {
	l := lexcore.NewDefault([]byte("// hi\nx"))
	toks := collect(l)
	assert.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, "// hi", string(toks[0].Lexeme()))
}

type langKind int

const (
	kindIdentifier langKind = iota
	kindIf
	kindWhitespace
	kindEndOfFile
)

func TestKeywordTableRemapsIdentifier(t *testing.T) {
	kinds := lexcore.KindSet[langKind]{
		Identifier: kindIdentifier,
		Whitespace: kindWhitespace,
		EndOfFile:  kindEndOfFile,
	}
	keywords := map[string]langKind{"if": kindIf}
	l := lexcore.New([]byte("if x"), kinds, lexcore.WithKeywords(keywords))
	toks := collect2(l)
	assert.Equal(t, kindIf, toks[0].Kind)
	assert.Equal(t, kindIdentifier, toks[2].Kind)
}

func collect2(l *lexcore.Lexer[langKind]) []token.Token[langKind] {
	var toks []token.Token[langKind]
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == kindEndOfFile {
			return toks
		}
	}
}

func TestDotWithoutDigitIsInvalid(t *testing.T) {
	l := lexcore.NewDefault([]byte(". 1"))
	toks := collect(l)
	assert.Equal(t, token.Invalid, toks[0].Kind)
	assert.True(t, l.Errors().HasErrors())
}

func TestFloatLiteralWithExponent(t *testing.T) {
	l := lexcore.NewDefault([]byte("1.5e10"))
	toks := collect(l)
	require.Len(t, toks, 2)
	assert.Equal(t, token.FloatLiteral, toks[0].Kind)
	require.NotNil(t, toks[0].Metadata)
	assert.InDelta(t, 1.5e10, toks[0].Metadata.Float, 1)
}

func TestSkipWhitespaceOption(t *testing.T) {
	l := lexcore.NewDefault([]byte("a  b"), lexcore.WithSkipWhitespace[token.DefaultKind](true))
	toks := collect(l)
	kinds := make([]token.DefaultKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.DefaultKind{token.Identifier, token.Identifier, token.EndOfFile}, kinds)
}

func TestZeroCopyTokenSlices(t *testing.T) {
	src := []byte("foo")
	l := lexcore.NewDefault(src)
	tok := l.Next()
	require.NotEmpty(t, tok.Slice)
	assert.Same(t, &src[0], &tok.Slice[0])
}

func TestMaxErrorsHaltsLexer(t *testing.T) {
	l := lexcore.NewDefault([]byte("@@@@@"), lexcore.WithMaxErrors[token.DefaultKind](2))
	toks := collect(l)
	assert.True(t, l.Errors().HasErrors())
	stats := l.Errors().Stats()
	assert.LessOrEqual(t, stats.Total, 2)
	assert.Equal(t, token.EndOfFile, toks[len(toks)-1].Kind)
}

func TestMaxTokenLengthRecoverable(t *testing.T) {
	l := lexcore.NewDefault([]byte("abcdefghij"), lexcore.WithMaxTokenLength[token.DefaultKind](4))
	toks := collect(l)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "abcdefghij", string(toks[0].Lexeme()))
	require.True(t, l.Errors().HasErrors())
	assert.False(t, l.Errors().HasFatalErrors())
}

func TestMaxTokenLengthFatalHaltsLexer(t *testing.T) {
	l := lexcore.NewDefault([]byte("abcdefghij klm"),
		lexcore.WithMaxTokenLength[token.DefaultKind](4),
		lexcore.WithTokenTooLongFatal[token.DefaultKind](true),
	)
	toks := collect(l)
	require.True(t, l.Errors().HasFatalErrors())
	// The over-long token is still delivered; every call after it is EOF.
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, token.EndOfFile, toks[1].Kind)
}

func TestLineEndingModeCR(t *testing.T) {
	l := lexcore.NewDefault([]byte("a\rb"), lexcore.WithLineEnding[token.DefaultKind](position.CR))
	toks := collect(l)
	var b token.Token[token.DefaultKind]
	for _, tok := range toks {
		if string(tok.Lexeme()) == "b" {
			b = tok
		}
	}
	assert.EqualValues(t, 2, b.Position.Line)
}
