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

// Package token defines the generic Token type returned by the lexer, its
// metadata union, and helpers for comparing and classifying tokens.
//
// Token is parameterized over a caller-supplied kind type K, so custom
// lexers are free to use their own token-kind enumeration instead of the
// DefaultKind set provided here for demonstration and tests.
package token

import (
	"bytes"

	"github.com/lexcore-go/lexcore/position"
)

// Token is a single lexical token: a kind, a zero-copy slice of the
// original source, the position of the slice's first byte, and optional
// metadata. Tokens are immutable once constructed.
type Token[K comparable] struct {
	Kind     K
	Slice    []byte
	Position position.SourcePosition
	Metadata *Metadata
}

// New constructs a Token with no metadata.
func New[K comparable](kind K, slice []byte, pos position.SourcePosition) Token[K] {
	return Token[K]{Kind: kind, Slice: slice, Position: pos}
}

// NewWithMetadata constructs a Token carrying the given metadata value.
func NewWithMetadata[K comparable](kind K, slice []byte, pos position.SourcePosition, meta Metadata) Token[K] {
	m := meta
	return Token[K]{Kind: kind, Slice: slice, Position: pos, Metadata: &m}
}

// Lexeme returns the token's underlying slice of the source.
func (t Token[K]) Lexeme() []byte {
	return t.Slice
}

// Length returns the byte length of the token's lexeme.
func (t Token[K]) Length() int {
	return len(t.Slice)
}

// Equal reports whether t and other have the same kind and byte-identical
// lexeme content. Position is not considered.
func (t Token[K]) Equal(other Token[K]) bool {
	return t.Kind == other.Kind && bytes.Equal(t.Slice, other.Slice)
}

// Identical reports whether t and other are Equal and additionally have
// identical positions.
func (t Token[K]) Identical(other Token[K]) bool {
	return t.Equal(other) && t.Position == other.Position
}
