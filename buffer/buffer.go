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

// Package buffer owns a borrowed source byte slice and a cursor into it,
// with optional position tracking and independent savepoint stacks for the
// cursor and the tracker.
//
// Buffer never copies the source: every slice it returns aliases the
// caller-supplied byte slice.
package buffer

import (
	"errors"

	"github.com/lexcore-go/lexcore/charclass"
	"github.com/lexcore-go/lexcore/position"
)

// ErrUnexpectedEOF is returned by Next when the cursor is already at the
// end of the source.
var ErrUnexpectedEOF = errors.New("buffer: unexpected end of file")

// ErrInvalidEncoding is returned by the codepoint-aware read methods when
// the bytes at the cursor are not valid UTF-8.
var ErrInvalidEncoding = errors.New("buffer: invalid utf-8 encoding")

// ErrEmptyMarkStack is returned by RestoreMark when no mark is pending.
var ErrEmptyMarkStack = errors.New("buffer: restore called on empty mark stack")

// Buffer owns a source byte slice and a cursor into it.
type Buffer struct {
	source  []byte
	pos     int
	tracker *position.Tracker
	marks   []int
}

// New constructs a Buffer over source with position tracking disabled.
func New(source []byte) *Buffer {
	return &Buffer{source: source}
}

// NewWithPositionTracking constructs a Buffer over source with a default
// Tracker attached.
func NewWithPositionTracking(source []byte, opts ...position.TrackerOption) *Buffer {
	b := New(source)
	b.EnablePositionTracking(opts...)
	return b
}

// EnablePositionTracking attaches a fresh Tracker to the buffer. Any
// previously tracked position is discarded.
func (b *Buffer) EnablePositionTracking(opts ...position.TrackerOption) {
	b.tracker = position.New(opts...)
}

// DisablePositionTracking detaches the buffer's tracker, if any.
func (b *Buffer) DisablePositionTracking() {
	b.tracker = nil
}

// Tracker returns the buffer's Tracker, or nil if position tracking is
// disabled.
func (b *Buffer) Tracker() *position.Tracker {
	return b.tracker
}

// CurrentPosition returns the tracker's current position and true, or the
// zero position and false if tracking is disabled.
func (b *Buffer) CurrentPosition() (position.SourcePosition, bool) {
	if b.tracker == nil {
		return position.SourcePosition{}, false
	}
	return b.tracker.Current(), true
}

// Len returns the total length of the source in bytes.
func (b *Buffer) Len() int {
	return len(b.source)
}

// Pos returns the current cursor offset.
func (b *Buffer) Pos() int {
	return b.pos
}

// Source returns the full underlying source slice. Callers must not mutate
// it.
func (b *Buffer) Source() []byte {
	return b.source
}

// IsAtEnd reports whether the cursor has reached the end of the source.
func (b *Buffer) IsAtEnd() bool {
	return b.pos == len(b.source)
}

// Peek returns the byte at the cursor without advancing. ok is false at
// end of input.
func (b *Buffer) Peek() (byte, bool) {
	return b.PeekAt(0)
}

// PeekAt returns the byte at pos+k without advancing. ok is false if
// pos+k is out of range.
func (b *Buffer) PeekAt(k int) (byte, bool) {
	i := b.pos + k
	if i < 0 || i >= len(b.source) {
		return 0, false
	}
	return b.source[i], true
}

// Next returns the byte at the cursor and advances past it, updating the
// tracker if position tracking is enabled. It returns ErrUnexpectedEOF at
// end of input, leaving the cursor unchanged.
func (b *Buffer) Next() (byte, error) {
	if b.IsAtEnd() {
		return 0, ErrUnexpectedEOF
	}
	c := b.source[b.pos]
	b.pos++
	if b.tracker != nil {
		b.tracker.Advance(c)
	}
	return c, nil
}

// PeekCodepoint decodes the codepoint at the cursor without advancing. ok
// is false at end of input. err is ErrInvalidEncoding if the bytes at the
// cursor are not valid UTF-8; the cursor is left unchanged either way.
func (b *Buffer) PeekCodepoint() (cp rune, size int, ok bool, err error) {
	if b.IsAtEnd() {
		return 0, 0, false, nil
	}
	res, derr := charclass.DecodeUTF8(b.source[b.pos:])
	if derr != nil {
		return 0, 0, false, ErrInvalidEncoding
	}
	return res.Codepoint, res.Size, true, nil
}

// NextCodepoint decodes the codepoint at the cursor and advances past it,
// updating the tracker if enabled. ok is false at end of input. err is
// ErrInvalidEncoding if the bytes at the cursor are not valid UTF-8, in
// which case the cursor is left unchanged.
func (b *Buffer) NextCodepoint() (cp rune, size int, ok bool, err error) {
	if b.IsAtEnd() {
		return 0, 0, false, nil
	}
	res, derr := charclass.DecodeUTF8(b.source[b.pos:])
	if derr != nil {
		return 0, 0, false, ErrInvalidEncoding
	}
	b.pos += res.Size
	if b.tracker != nil {
		b.tracker.AdvanceCodepoint(res.Codepoint, res.Size)
	}
	return res.Codepoint, res.Size, true, nil
}

// MarkPosition pushes the current cursor offset onto the cursor-only
// savepoint stack. This is independent of the tracker's own Mark/Restore
// stack, so cursor rewinds can be used without paying for tracker state
// when tracking is disabled.
func (b *Buffer) MarkPosition() {
	b.marks = append(b.marks, b.pos)
}

// RestoreMark pops the top cursor savepoint and rewinds the cursor to it.
// It returns ErrEmptyMarkStack if no mark is pending. Restoring the cursor
// does not roll back the tracker; callers that enabled position tracking
// should pair MarkPosition/RestoreMark with Tracker().Mark()/Restore().
func (b *Buffer) RestoreMark() error {
	n := len(b.marks)
	if n == 0 {
		return ErrEmptyMarkStack
	}
	b.pos = b.marks[n-1]
	b.marks = b.marks[:n-1]
	return nil
}

// MarkDepth returns the number of pending cursor savepoints.
func (b *Buffer) MarkDepth() int {
	return len(b.marks)
}

// ConsumeWhile advances the cursor past every consecutive byte for which
// predicate returns true, starting at the current position, and returns
// the consumed bytes as a slice of the source.
func (b *Buffer) ConsumeWhile(predicate func(byte) bool) []byte {
	start := b.pos
	for !b.IsAtEnd() && predicate(b.source[b.pos]) {
		_, _ = b.Next()
	}
	return b.source[start:b.pos]
}

// ConsumeWhitespace advances the cursor past consecutive Unicode
// whitespace codepoints and returns the consumed bytes.
func (b *Buffer) ConsumeWhitespace() []byte {
	start := b.pos
	for {
		cp, _, ok, err := b.PeekCodepoint()
		if !ok || err != nil || !charclass.IsWhitespace(cp) {
			break
		}
		_, _, _, _ = b.NextCodepoint()
	}
	return b.source[start:b.pos]
}

// ConsumeIdentifier advances the cursor past one IsIdentifierStart
// codepoint followed by zero or more IsIdentifierContinue codepoints, and
// returns the consumed bytes. If the cursor is not at an identifier start,
// it returns an empty slice and does not advance.
func (b *Buffer) ConsumeIdentifier() []byte {
	start := b.pos
	cp, _, ok, err := b.PeekCodepoint()
	if !ok || err != nil || !charclass.IsIdentifierStart(cp) {
		return b.source[start:start]
	}
	_, _, _, _ = b.NextCodepoint()
	for {
		cp, _, ok, err := b.PeekCodepoint()
		if !ok || err != nil || !charclass.IsIdentifierContinue(cp) {
			break
		}
		_, _, _, _ = b.NextCodepoint()
	}
	return b.source[start:b.pos]
}

// SliceFrom returns source[startOffset:pos], the bytes consumed since
// startOffset.
func (b *Buffer) SliceFrom(startOffset int) []byte {
	if startOffset < 0 {
		startOffset = 0
	}
	if startOffset > b.pos {
		return nil
	}
	return b.source[startOffset:b.pos]
}
