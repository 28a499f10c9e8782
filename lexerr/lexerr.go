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

// Package lexerr defines the lexer's closed error-kind taxonomy, the
// LexerError value type, and a bounded ErrorCollector for recoverable
// diagnostics.
package lexerr

import (
	"errors"
	"fmt"

	"github.com/lexcore-go/lexcore/position"
)

// ErrTooManyErrors is returned by Collector.Add once the collector is at
// capacity.
var ErrTooManyErrors = errors.New("lexerr: too many errors")

// DefaultMaxErrors is the collector capacity used when none is configured.
const DefaultMaxErrors = 100

// Kind is the closed enumeration of recoverable and fatal lexer error
// kinds.
type Kind int

const (
	UnexpectedCharacter Kind = iota
	UnterminatedString
	UnterminatedComment
	InvalidEscapeSequence
	InvalidNumber
	InvalidIdentifier
	BufferOverflow
	EncodingError
	UnexpectedEndOfFile
	InvalidToken
	NestingTooDeep
	TokenTooLong
)

var kindNames = map[Kind]string{
	UnexpectedCharacter:   "UnexpectedCharacter",
	UnterminatedString:    "UnterminatedString",
	UnterminatedComment:   "UnterminatedComment",
	InvalidEscapeSequence: "InvalidEscapeSequence",
	InvalidNumber:         "InvalidNumber",
	InvalidIdentifier:     "InvalidIdentifier",
	BufferOverflow:        "BufferOverflow",
	EncodingError:         "EncodingError",
	UnexpectedEndOfFile:   "UnexpectedEndOfFile",
	InvalidToken:          "InvalidToken",
	NestingTooDeep:        "NestingTooDeep",
	TokenTooLong:          "TokenTooLong",
}

// String returns the textual name of the error kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// defaultMessages holds the static default message for each Kind, used
// when a LexerError is constructed without an explicit override.
var defaultMessages = map[Kind]string{
	UnexpectedCharacter:   "unexpected character",
	UnterminatedString:    "unterminated string literal",
	UnterminatedComment:   "unterminated comment",
	InvalidEscapeSequence: "invalid escape sequence",
	InvalidNumber:         "invalid number literal",
	InvalidIdentifier:     "invalid identifier",
	BufferOverflow:        "buffer overflow",
	EncodingError:         "invalid encoding",
	UnexpectedEndOfFile:   "unexpected end of file",
	InvalidToken:          "invalid token",
	NestingTooDeep:        "nesting too deep",
	TokenTooLong:          "token too long",
}

// DefaultMessage returns the static default message for k.
func DefaultMessage(k Kind) string {
	if m, ok := defaultMessages[k]; ok {
		return m
	}
	return k.String()
}

// DefaultSeverity returns the severity a Kind carries absent any
// configuration override: BufferOverflow is Fatal, InvalidIdentifier is a
// Warning, and every other kind is an Error.
func DefaultSeverity(k Kind) Severity {
	if k == BufferOverflow {
		return Fatal
	}
	if k == InvalidIdentifier {
		return Warning
	}
	return Error
}

// Severity classifies how a LexerError affects the lexing loop.
type Severity int

const (
	Warning Severity = iota
	Error
	Fatal
)

// String renders the severity as it appears in formatted error messages.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// LexerError is a single recoverable or fatal diagnostic produced while
// lexing.
type LexerError struct {
	Kind       Kind
	Severity   Severity
	Message    string
	Position   position.SourcePosition
	Context    string
	Suggestion string
}

// New constructs a LexerError at pos using kind's default severity and
// message.
func New(kind Kind, pos position.SourcePosition) LexerError {
	return LexerError{
		Kind:     kind,
		Severity: DefaultSeverity(kind),
		Message:  DefaultMessage(kind),
		Position: pos,
	}
}

// WithMessage returns a copy of e with Message overridden.
func (e LexerError) WithMessage(msg string) LexerError {
	e.Message = msg
	return e
}

// WithSeverity returns a copy of e with Severity overridden.
func (e LexerError) WithSeverity(sev Severity) LexerError {
	e.Severity = sev
	return e
}

// WithContext returns a copy of e with Context set.
func (e LexerError) WithContext(ctx string) LexerError {
	e.Context = ctx
	return e
}

// WithSuggestion returns a copy of e with Suggestion set.
func (e LexerError) WithSuggestion(s string) LexerError {
	e.Suggestion = s
	return e
}

// Error implements the error interface, formatting as
// "<severity>: <message> at <line>:<column>" with optional context and
// suggestion lines appended.
func (e LexerError) Error() string {
	msg := fmt.Sprintf("%s: %s at %d:%d", e.Severity, e.Message, e.Position.Line, e.Position.Column)
	if e.Context != "" {
		msg += "\n  context: " + e.Context
	}
	if e.Suggestion != "" {
		msg += "\n  suggestion: " + e.Suggestion
	}
	return msg
}

// Stats reports error counts by severity.
type Stats struct {
	Total    int
	Warnings int
	Errors   int
	Fatals   int
}

// Collector accumulates LexerError values up to a fixed capacity.
type Collector struct {
	errors       []LexerError
	maxErrors    int
	warningCount int
	errorCount   int
	fatalCount   int
}

// NewCollector returns a Collector with the given capacity. A non-positive
// maxErrors falls back to DefaultMaxErrors.
func NewCollector(maxErrors int) *Collector {
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}
	return &Collector{maxErrors: maxErrors}
}

// Add appends err to the collector, returning ErrTooManyErrors once
// len(errors) has reached maxErrors. On success the matching severity
// counter is incremented.
func (c *Collector) Add(err LexerError) error {
	if len(c.errors) >= c.maxErrors {
		return ErrTooManyErrors
	}
	c.errors = append(c.errors, err)
	switch err.Severity {
	case Warning:
		c.warningCount++
	case Error:
		c.errorCount++
	case Fatal:
		c.fatalCount++
	}
	return nil
}

// HasErrors reports whether any Error or Fatal severity diagnostic has been
// collected.
func (c *Collector) HasErrors() bool {
	return c.errorCount > 0 || c.fatalCount > 0
}

// HasFatalErrors reports whether any Fatal severity diagnostic has been
// collected.
func (c *Collector) HasFatalErrors() bool {
	return c.fatalCount > 0
}

// Errors returns the accumulated errors in insertion order. The returned
// slice must not be mutated by the caller.
func (c *Collector) Errors() []LexerError {
	return c.errors
}

// Stats reports current counts by severity.
func (c *Collector) Stats() Stats {
	return Stats{
		Total:    len(c.errors),
		Warnings: c.warningCount,
		Errors:   c.errorCount,
		Fatals:   c.fatalCount,
	}
}

// Clear empties the collected errors and zeroes the counters, retaining the
// underlying slice's capacity.
func (c *Collector) Clear() {
	c.errors = c.errors[:0]
	c.warningCount = 0
	c.errorCount = 0
	c.fatalCount = 0
}

// MaxErrors returns the collector's configured capacity.
func (c *Collector) MaxErrors() int {
	return c.maxErrors
}
