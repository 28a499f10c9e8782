// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package charclass provides UTF-8 encode/decode helpers and codepoint
// classification used by the position tracker, buffer and lexer packages.
//
// Display width is backed by golang.org/x/text/width (plus a short range
// check for wide supplementary-plane blocks); whitespace classification
// uses the standard library's unicode.White_Space table.
package charclass

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// DecodeResult is returned by DecodeUTF8.
type DecodeResult struct {
	Codepoint rune
	Size      int
}

// Sentinel errors for UTF-8 decoding.
var (
	// ErrInvalidUTF8 is returned when the leading bytes do not form a valid
	// UTF-8 sequence.
	ErrInvalidUTF8 = utf8Errorf("invalid UTF-8 sequence")
	// ErrIncompleteUTF8 is returned when the leading byte declares a
	// sequence length exceeding the available slice.
	ErrIncompleteUTF8 = utf8Errorf("incomplete UTF-8 sequence")
	// ErrBufferTooSmall is returned by EncodeUTF8 when buf cannot hold the
	// encoded codepoint.
	ErrBufferTooSmall = utf8Errorf("buffer too small for codepoint")
	// ErrInvalidCodepoint is returned by EncodeUTF8 for codepoints outside
	// the valid Unicode scalar value range.
	ErrInvalidCodepoint = utf8Errorf("invalid codepoint")
)

type utf8Error string

func (e utf8Error) Error() string { return string(e) }

func utf8Errorf(s string) error { return utf8Error(s) }

// DecodeUTF8 decodes the first codepoint from bytes. It reports
// ErrIncompleteUTF8 when the leading byte declares a length that exceeds
// len(bytes), and ErrInvalidUTF8 for any other malformed encoding.
func DecodeUTF8(bytes []byte) (DecodeResult, error) {
	if len(bytes) == 0 {
		return DecodeResult{}, ErrIncompleteUTF8
	}
	r, size := utf8.DecodeRune(bytes)
	if r == utf8.RuneError && size <= 1 {
		if !utf8.FullRune(bytes) {
			return DecodeResult{}, ErrIncompleteUTF8
		}
		return DecodeResult{}, ErrInvalidUTF8
	}
	return DecodeResult{Codepoint: r, Size: size}, nil
}

// EncodeUTF8 encodes codepoint into buf, returning the number of bytes
// written. buf must have a length of at least utf8.UTFMax (4).
func EncodeUTF8(codepoint rune, buf []byte) (int, error) {
	if !IsValidCodepoint(uint32(codepoint)) {
		return 0, ErrInvalidCodepoint
	}
	if len(buf) < utf8.RuneLen(codepoint) {
		return 0, ErrBufferTooSmall
	}
	return utf8.EncodeRune(buf, codepoint), nil
}

// IsValidCodepoint reports whether cp is a valid Unicode scalar value: at
// most U+10FFFF and not a surrogate.
func IsValidCodepoint(cp uint32) bool {
	if cp > utf8.MaxRune {
		return false
	}
	return !(cp >= 0xD800 && cp <= 0xDFFF)
}

// IsWhitespace reports whether cp is whitespace: ASCII whitespace, U+00A0,
// or any other codepoint in Unicode's White_Space property.
func IsWhitespace(cp rune) bool {
	switch cp {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0x00A0:
		return true
	}
	return unicode.Is(unicode.White_Space, cp)
}

// IsLetter reports whether cp is a letter: an ASCII letter or any other
// codepoint unicode.IsLetter accepts, in Latin-1 or in any other script.
func IsLetter(cp rune) bool {
	if cp >= 'a' && cp <= 'z' || cp >= 'A' && cp <= 'Z' {
		return true
	}
	if cp >= 0x00C0 && cp <= 0x024F {
		return unicode.IsLetter(cp)
	}
	return unicode.IsLetter(cp)
}

// IsDigit reports whether cp is an ASCII decimal digit.
func IsDigit(cp rune) bool {
	return cp >= '0' && cp <= '9'
}

// IsAlphanumeric reports whether cp is a letter or digit.
func IsAlphanumeric(cp rune) bool {
	return IsLetter(cp) || IsDigit(cp)
}

// IsIdentifierStart reports whether cp may begin an identifier: a letter,
// underscore, or dollar sign.
func IsIdentifierStart(cp rune) bool {
	return IsLetter(cp) || cp == '_' || cp == '$'
}

// IsIdentifierContinue reports whether cp may continue an identifier
// started with IsIdentifierStart.
func IsIdentifierContinue(cp rune) bool {
	return IsAlphanumeric(cp) || cp == '_'
}

// DisplayWidth returns the number of terminal display columns cp occupies:
// 0 for C0/C1 control characters, 2 for wide/fullwidth East Asian
// characters (including supplementary-plane emoji), 1 otherwise.
//
// Classification is delegated to golang.org/x/text/width rather than a
// hand-maintained range table.
func DisplayWidth(cp rune) int {
	if cp < 0 {
		return 0
	}
	if (cp >= 0x00 && cp <= 0x1F) || cp == 0x7F || (cp >= 0x80 && cp <= 0x9F) {
		return 0
	}
	switch width.LookupRune(cp).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	if isSupplementaryWide(cp) {
		return 2
	}
	return 1
}

// isSupplementaryWide covers emoji and other wide supplementary-plane
// blocks that golang.org/x/text/width does not classify as East Asian Wide
// because they predate the East Asian Width Unicode property.
func isSupplementaryWide(cp rune) bool {
	switch {
	case cp >= 0x1F300 && cp <= 0x1FAFF: // misc symbols, emoji, transport
		return true
	case cp >= 0x20000 && cp <= 0x3FFFD: // CJK extensions B-G
		return true
	}
	return false
}

// ValidateUTF8 reports whether bytes is entirely well-formed UTF-8.
func ValidateUTF8(bytes []byte) bool {
	return utf8.Valid(bytes)
}

// CountCodepoints returns the number of codepoints encoded in bytes, or an
// error if bytes contains invalid UTF-8.
func CountCodepoints(bytes []byte) (int, error) {
	n := 0
	for len(bytes) > 0 {
		r, size := utf8.DecodeRune(bytes)
		if r == utf8.RuneError && size <= 1 {
			return n, ErrInvalidUTF8
		}
		bytes = bytes[size:]
		n++
	}
	return n, nil
}
