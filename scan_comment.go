package lexcore

import (
	"github.com/lexcore-go/lexcore/lexerr"
	"github.com/lexcore-go/lexcore/position"
	"github.com/lexcore-go/lexcore/token"
)

// scanComment scans a line comment ("//" to end of line, exclusive) or a
// block comment ("/*" to the matching "*/"). Block comments nest up to
// WithMaxCommentNesting levels deep (1 by default, meaning they do not
// nest); exceeding that depth records NestingTooDeep and returns the
// comment scanned up to the point of detection. Reaching end of input
// inside an unterminated block comment records UnterminatedComment. handled
// is always true: comments are never silently discarded by this method, the
// caller's WithSkipWhitespace-style option only applies to whitespace.
func (l *Lexer[K]) scanComment(startOffset int, startPos position.SourcePosition) (tok token.Token[K], handled bool) {
	_, _, _, _ = l.buf.NextCodepoint() // consume '/'
	next, _ := l.buf.Peek()
	_, _, _, _ = l.buf.NextCodepoint() // consume '/' or '*'

	if next == '/' {
		l.buf.ConsumeWhile(func(b byte) bool { return b != '\n' })
		return token.New(l.kinds.Comment, l.buf.SliceFrom(startOffset), startPos), true
	}

	depth := 1
	for {
		c, ok := l.buf.Peek()
		if !ok {
			l.addError(lexerr.New(lexerr.UnterminatedComment, startPos))
			return token.New(l.kinds.Comment, l.buf.SliceFrom(startOffset), startPos), true
		}
		if c == '*' {
			if n, ok2 := l.buf.PeekAt(1); ok2 && n == '/' {
				_, _ = l.buf.Next()
				_, _ = l.buf.Next()
				depth--
				if depth == 0 {
					return token.New(l.kinds.Comment, l.buf.SliceFrom(startOffset), startPos), true
				}
				continue
			}
		}
		if c == '/' {
			if n, ok2 := l.buf.PeekAt(1); ok2 && n == '*' {
				if depth >= l.cfg.maxCommentNesting {
					l.addError(lexerr.New(lexerr.NestingTooDeep, l.currentPosition()))
					return token.New(l.kinds.Comment, l.buf.SliceFrom(startOffset), startPos), true
				}
				_, _ = l.buf.Next()
				_, _ = l.buf.Next()
				depth++
				continue
			}
		}
		_, _, _, _ = l.buf.NextCodepoint()
	}
}
