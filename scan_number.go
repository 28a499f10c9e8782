package lexcore

import (
	"strconv"

	"github.com/lexcore-go/lexcore/lexerr"
	"github.com/lexcore-go/lexcore/position"
	"github.com/lexcore-go/lexcore/token"
)

func isASCIIDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// scanNumber scans an integer or floating-point literal starting at the
// cursor. Integer digits, an optional '.' followed by fractional digits,
// and an optional [eE][+-]?digits exponent are accepted; a '.' not
// followed by a digit is left unconsumed so the caller's next call scans
// it as a separate token.
func (l *Lexer[K]) scanNumber(startOffset int, startPos position.SourcePosition) token.Token[K] {
	l.buf.ConsumeWhile(func(b byte) bool { return isASCIIDigitByte(b) })

	isFloat := false
	if c, ok := l.buf.Peek(); ok && c == '.' {
		if next, ok2 := l.buf.PeekAt(1); ok2 && isASCIIDigitByte(next) {
			isFloat = true
			_, _ = l.buf.Next()
			l.buf.ConsumeWhile(func(b byte) bool { return isASCIIDigitByte(b) })
		}
	}

	if c, ok := l.buf.Peek(); ok && (c == 'e' || c == 'E') {
		la := 1
		if sign, ok2 := l.buf.PeekAt(1); ok2 && (sign == '+' || sign == '-') {
			la = 2
		}
		if d, ok2 := l.buf.PeekAt(la); ok2 && isASCIIDigitByte(d) {
			isFloat = true
			for i := 0; i < la+1; i++ {
				_, _ = l.buf.Next()
			}
			l.buf.ConsumeWhile(func(b byte) bool { return isASCIIDigitByte(b) })
		}
	}

	slice := l.buf.SliceFrom(startOffset)
	if isFloat {
		v, err := strconv.ParseFloat(string(slice), 64)
		if err != nil {
			l.addError(lexerr.New(lexerr.InvalidNumber, startPos))
			return token.New(l.kinds.Invalid, slice, startPos)
		}
		return token.NewWithMetadata(l.kinds.FloatLiteral, slice, startPos, token.FloatMetadata(v))
	}
	v, err := strconv.ParseInt(string(slice), 10, 64)
	if err != nil {
		l.addError(lexerr.New(lexerr.InvalidNumber, startPos))
		return token.New(l.kinds.Invalid, slice, startPos)
	}
	return token.NewWithMetadata(l.kinds.IntegerLiteral, slice, startPos, token.IntegerMetadata(v))
}
