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

// Package position tracks (line, column, offset) across a source buffer,
// handling tab stops, LF/CR/CRLF line endings and UTF-8 display width.
package position

import (
	"errors"
	"fmt"

	"github.com/lexcore-go/lexcore/charclass"
)

// ErrEmptyStack is returned by Restore when the savepoint stack is empty.
var ErrEmptyStack = errors.New("position: restore called on empty savepoint stack")

// LineEnding selects the line-terminator convention a Tracker uses to
// decide when a CR is part of a CRLF pair.
type LineEnding int

const (
	// Auto treats any of CR, LF or CRLF as exactly one terminator, so
	// mixed endings in one source are each counted once. It does not
	// record which convention the source uses.
	Auto LineEnding = iota
	LF
	CR
	CRLF
)

// DefaultTabWidth is the tab width used when none is configured.
const DefaultTabWidth = 4

// SourcePosition is an immutable (line, column, offset) triple.
//
// Line and Column are 1-based; Offset is a 0-based byte index into the
// source buffer.
type SourcePosition struct {
	Line   uint32
	Column uint32
	Offset uint64
}

// Start is the position of the first byte of an empty or freshly opened
// buffer.
var Start = SourcePosition{Line: 1, Column: 1, Offset: 0}

// String renders p as "line:column".
func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TrackerOption configures a Tracker at construction time, following the
// functional-options shape used throughout this module's ambient stack.
type TrackerOption func(*Tracker)

// WithTabWidth sets the tab width (must be >= 1; non-positive values are
// ignored).
func WithTabWidth(width uint32) TrackerOption {
	return func(t *Tracker) {
		if width >= 1 {
			t.tabWidth = width
		}
	}
}

// WithLineEnding sets the line-ending convention.
func WithLineEnding(mode LineEnding) TrackerOption {
	return func(t *Tracker) {
		t.lineEnding = mode
	}
}

// Tracker maintains the current SourcePosition as bytes or codepoints are
// advanced over it, plus a LIFO savepoint stack.
type Tracker struct {
	current    SourcePosition
	tabWidth   uint32
	lineEnding LineEnding
	lastWasCR  bool
	savepoints []SourcePosition
}

// New returns a Tracker positioned at Start with the given options applied.
func New(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		current:    Start,
		tabWidth:   DefaultTabWidth,
		lineEnding: Auto,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Current returns the tracker's current position.
func (t *Tracker) Current() SourcePosition {
	return t.current
}

// TabWidth returns the configured tab width.
func (t *Tracker) TabWidth() uint32 {
	return t.tabWidth
}

// SetTabWidth reconfigures the tab width used by subsequent Advance calls.
func (t *Tracker) SetTabWidth(width uint32) {
	if width >= 1 {
		t.tabWidth = width
	}
}

// SetLineEnding reconfigures the line-ending convention.
func (t *Tracker) SetLineEnding(mode LineEnding) {
	t.lineEnding = mode
}

// crContinuesAsLF reports whether, given the configured line-ending mode, a
// '\n' immediately following a '\r' should be folded into the preceding
// terminator rather than counted as a second one.
func (t *Tracker) crContinuesAsLF() bool {
	return t.lastWasCR && (t.lineEnding == Auto || t.lineEnding == CRLF)
}

// Advance interprets b as a single ASCII-range byte and updates the
// tracker's position accordingly. '\n' and '\r' start a new line (except a
// '\n' folded into a preceding '\r', see crContinuesAsLF, which only
// advances the offset), '\t' moves to the next tab stop (see tabStop), and
// any other byte simply advances the column by one.
func (t *Tracker) Advance(b byte) {
	t.advanceByte(b, t.tabWidth)
}

// AdvanceWithTabWidth behaves like Advance but uses width as a one-off
// override of the configured tab width.
func (t *Tracker) AdvanceWithTabWidth(b byte, width uint32) {
	if width < 1 {
		width = t.tabWidth
	}
	t.advanceByte(b, width)
}

func (t *Tracker) advanceByte(b byte, tabWidth uint32) {
	switch b {
	case '\n':
		if t.crContinuesAsLF() {
			t.current.Offset++
			t.lastWasCR = false
			return
		}
		t.current.Line++
		t.current.Column = 1
		t.current.Offset++
		t.lastWasCR = false
	case '\r':
		t.current.Line++
		t.current.Column = 1
		t.current.Offset++
		t.lastWasCR = true
	case '\t':
		t.current.Column = tabStop(t.current.Column, tabWidth)
		t.current.Offset++
		t.lastWasCR = false
	default:
		t.current.Column++
		t.current.Offset++
		t.lastWasCR = false
	}
}

// tabStop computes the next tab stop at or after col for the given width,
// using new_col = ((col-1)/width + 1) * width + 1.
func tabStop(col, width uint32) uint32 {
	return ((col-1)/width+1)*width + 1
}

// AdvanceCodepoint treats cp as a single display unit of the given UTF-8
// byte length. Newline/tab rules apply when cp is '\n', '\r' or '\t';
// otherwise the column advances by charclass.DisplayWidth(cp).
func (t *Tracker) AdvanceCodepoint(cp rune, utf8Len int) {
	if utf8Len < 1 {
		utf8Len = 1
	}
	switch cp {
	case '\n':
		if t.crContinuesAsLF() {
			t.current.Offset += uint64(utf8Len)
			t.lastWasCR = false
			return
		}
		t.current.Line++
		t.current.Column = 1
		t.current.Offset += uint64(utf8Len)
		t.lastWasCR = false
	case '\r':
		t.current.Line++
		t.current.Column = 1
		t.current.Offset += uint64(utf8Len)
		t.lastWasCR = true
	case '\t':
		t.current.Column = tabStop(t.current.Column, t.tabWidth)
		t.current.Offset += uint64(utf8Len)
		t.lastWasCR = false
	default:
		t.current.Column += uint32(charclass.DisplayWidth(cp))
		t.current.Offset += uint64(utf8Len)
		t.lastWasCR = false
	}
}

// AdvanceUTF8Bytes decodes bytes end-to-end as UTF-8, invoking the
// codepoint rule for each decoded rune. Invalid sequences fall back to
// advancing a single byte (one display column) so the tracker never fails.
func (t *Tracker) AdvanceUTF8Bytes(bytes []byte) {
	for len(bytes) > 0 {
		res, err := charclass.DecodeUTF8(bytes)
		if err != nil {
			t.current.Column++
			t.current.Offset++
			t.lastWasCR = false
			bytes = bytes[1:]
			continue
		}
		t.AdvanceCodepoint(res.Codepoint, res.Size)
		bytes = bytes[res.Size:]
	}
}

// Mark pushes the current position onto the savepoint stack.
func (t *Tracker) Mark() {
	t.savepoints = append(t.savepoints, t.current)
}

// Restore pops the top savepoint into the current position. It returns
// ErrEmptyStack if the stack is empty, leaving the current position
// unchanged.
func (t *Tracker) Restore() error {
	n := len(t.savepoints)
	if n == 0 {
		return ErrEmptyStack
	}
	t.current = t.savepoints[n-1]
	t.savepoints = t.savepoints[:n-1]
	t.lastWasCR = false
	return nil
}

// Reset sets the current position back to Start and clears the savepoint
// stack.
func (t *Tracker) Reset() {
	t.current = Start
	t.savepoints = t.savepoints[:0]
	t.lastWasCR = false
}

// SavepointDepth returns the number of pending savepoints.
func (t *Tracker) SavepointDepth() int {
	return len(t.savepoints)
}
