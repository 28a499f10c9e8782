package lexcore

import (
	"github.com/lexcore-go/lexcore/charclass"
	"github.com/lexcore-go/lexcore/lexerr"
	"github.com/lexcore-go/lexcore/position"
	"github.com/lexcore-go/lexcore/token"
)

// scanString scans a double-quoted string literal starting at the opening
// '"'. Recognized escape sequences are \n \t \r \\ \" \xHH \uHHHH; an
// unrecognized escape is recorded as InvalidEscapeSequence but the raw bytes
// are kept in the lexeme so the caller can inspect them. Reaching end of
// input before the closing '"' records UnterminatedString (a recoverable
// Error, not Fatal) and returns the partial token scanned so far, per the
// unterminated-string recovery rule.
func (l *Lexer[K]) scanString(startOffset int, startPos position.SourcePosition) token.Token[K] {
	_, _, _, _ = l.buf.NextCodepoint() // consume opening quote

	var value []byte
	for {
		cp, _, ok, err := l.buf.PeekCodepoint()
		if err != nil {
			l.addError(lexerr.New(lexerr.EncodingError, l.currentPosition()))
			_, _ = l.buf.Next()
			continue
		}
		if !ok {
			l.addError(lexerr.New(lexerr.UnterminatedString, startPos))
			slice := l.buf.SliceFrom(startOffset)
			return token.NewWithMetadata(l.kinds.StringLiteral, slice, startPos, token.StringMetadata(value))
		}

		switch cp {
		case '"':
			_, _, _, _ = l.buf.NextCodepoint()
			slice := l.buf.SliceFrom(startOffset)
			return token.NewWithMetadata(l.kinds.StringLiteral, slice, startPos, token.StringMetadata(value))

		case '\n':
			// An unescaped newline also terminates the string as unterminated:
			// string literals in this grammar do not span lines.
			l.addError(lexerr.New(lexerr.UnterminatedString, startPos))
			slice := l.buf.SliceFrom(startOffset)
			return token.NewWithMetadata(l.kinds.StringLiteral, slice, startPos, token.StringMetadata(value))

		case '\\':
			_, _, _, _ = l.buf.NextCodepoint()
			decoded, consumed := l.scanEscape(startPos)
			if !consumed {
				return token.NewWithMetadata(l.kinds.StringLiteral, l.buf.SliceFrom(startOffset), startPos, token.StringMetadata(value))
			}
			value = append(value, decoded...)

		default:
			_, size, _, _ := l.buf.NextCodepoint()
			start := l.buf.Pos() - size
			value = append(value, l.buf.Source()[start:start+size]...)
		}
	}
}

// scanEscape consumes one escape-sequence body (the bytes following the
// backslash already consumed by the caller) and returns its decoded bytes.
// ok is false if end of input was reached before the escape could be read,
// in which case the caller should treat the string as unterminated.
func (l *Lexer[K]) scanEscape(stringStart position.SourcePosition) (decoded []byte, ok bool) {
	cp, _, peekOk, err := l.buf.PeekCodepoint()
	if err != nil {
		l.addError(lexerr.New(lexerr.EncodingError, l.currentPosition()))
		_, _ = l.buf.Next()
		return nil, true
	}
	if !peekOk {
		l.addError(lexerr.New(lexerr.UnterminatedString, stringStart))
		return nil, false
	}

	switch cp {
	case 'n':
		_, _, _, _ = l.buf.NextCodepoint()
		return []byte{'\n'}, true
	case 't':
		_, _, _, _ = l.buf.NextCodepoint()
		return []byte{'\t'}, true
	case 'r':
		_, _, _, _ = l.buf.NextCodepoint()
		return []byte{'\r'}, true
	case '\\':
		_, _, _, _ = l.buf.NextCodepoint()
		return []byte{'\\'}, true
	case '"':
		_, _, _, _ = l.buf.NextCodepoint()
		return []byte{'"'}, true
	case 'x':
		_, _, _, _ = l.buf.NextCodepoint()
		return l.scanHexEscape(stringStart, 2)
	case 'u':
		_, _, _, _ = l.buf.NextCodepoint()
		return l.scanHexEscape(stringStart, 4)
	default:
		l.addError(lexerr.New(lexerr.InvalidEscapeSequence, l.currentPosition()))
		_, size, gotOk, _ := l.buf.NextCodepoint()
		if !gotOk {
			return nil, true
		}
		start := l.buf.Pos() - size
		return append([]byte{'\\'}, l.buf.Source()[start:start+size]...), true
	}
}

func (l *Lexer[K]) scanHexEscape(stringStart position.SourcePosition, digits int) (decoded []byte, ok bool) {
	var v rune
	for i := 0; i < digits; i++ {
		c, peekOk := l.buf.Peek()
		if !peekOk {
			l.addError(lexerr.New(lexerr.UnterminatedString, stringStart))
			return nil, false
		}
		d, isHex := hexDigit(c)
		if !isHex {
			l.addError(lexerr.New(lexerr.InvalidEscapeSequence, l.currentPosition()))
			return nil, true
		}
		_, _ = l.buf.Next()
		v = v<<4 | rune(d)
	}
	buf := make([]byte, 4)
	n, err := charclass.EncodeUTF8(v, buf)
	if err != nil {
		n = copy(buf, string(rune(0xFFFD)))
	}
	return buf[:n], true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
