package lexcore

import (
	"github.com/lexcore-go/lexcore/position"
	"github.com/lexcore-go/lexcore/token"
)

// scanIdentifier scans one IsIdentifierStart codepoint followed by zero or
// more IsIdentifierContinue codepoints. If a keyword table was installed
// via WithKeywords and the lexeme matches an entry, the token is emitted
// with the keyword's kind instead of Kinds.Identifier.
func (l *Lexer[K]) scanIdentifier(startOffset int, startPos position.SourcePosition) token.Token[K] {
	slice := l.buf.ConsumeIdentifier()
	kind := l.kinds.Identifier
	if l.keywords != nil {
		if kw, ok := l.keywords[string(slice)]; ok {
			kind = kw
		}
	}
	return token.New(kind, slice, startPos)
}
