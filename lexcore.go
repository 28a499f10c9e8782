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

// Package lexcore wires the position tracker, buffer, token and error
// packages together into a driver that walks a byte slice and produces a
// stream of zero-copy Token[K] values plus collected LexerErrors.
//
// A lexer for a given language is built by supplying a KindSet that maps
// the driver's built-in classes (identifiers, number/string/comment
// literals, a fixed punctuation set, whitespace, comments, EOF and
// invalid-token markers) onto the caller's own kind type K, following the
// "default kind set for demonstration, caller kinds are authoritative"
// contract from the token package.
package lexcore

import (
	"github.com/lexcore-go/lexcore/buffer"
	"github.com/lexcore-go/lexcore/charclass"
	"github.com/lexcore-go/lexcore/lexerr"
	"github.com/lexcore-go/lexcore/position"
	"github.com/lexcore-go/lexcore/token"
)

// KindSet maps the driver's built-in token classes onto a caller's kind
// type K.
type KindSet[K comparable] struct {
	Identifier     K
	IntegerLiteral K
	FloatLiteral   K
	StringLiteral  K
	Plus           K
	Minus          K
	Star           K
	Slash          K
	LeftParen      K
	RightParen     K
	LeftBrace      K
	RightBrace     K
	Comma          K
	Semicolon      K
	Whitespace     K
	Comment        K
	EndOfFile      K
	Invalid        K
}

// DefaultKinds is the KindSet for token.DefaultKind, the demonstration kind
// enumeration. It is not authoritative: custom lexers build their own
// KindSet.
var DefaultKinds = KindSet[token.DefaultKind]{
	Identifier:     token.Identifier,
	IntegerLiteral: token.IntegerLiteral,
	FloatLiteral:   token.FloatLiteral,
	StringLiteral:  token.StringLiteral,
	Plus:           token.Plus,
	Minus:          token.Minus,
	Star:           token.Star,
	Slash:          token.Slash,
	LeftParen:      token.LeftParen,
	RightParen:     token.RightParen,
	LeftBrace:      token.LeftBrace,
	RightBrace:     token.RightBrace,
	Comma:          token.Comma,
	Semicolon:      token.Semicolon,
	Whitespace:     token.Whitespace,
	Comment:        token.Comment,
	EndOfFile:      token.EndOfFile,
	Invalid:        token.Invalid,
}

// config holds the resolved configuration for a Lexer.
type config struct {
	tabWidth          uint32
	lineEnding        position.LineEnding
	maxErrors         int
	skipWhitespace    bool
	maxCommentNesting int
	tokenTooLongFatal bool
	maxTokenLength    int
}

func defaultConfig() config {
	return config{
		tabWidth:          position.DefaultTabWidth,
		lineEnding:        position.Auto,
		maxErrors:         lexerr.DefaultMaxErrors,
		skipWhitespace:    false,
		maxCommentNesting: 1,
		tokenTooLongFatal: false,
		maxTokenLength:    0,
	}
}

// Option configures a Lexer at construction time.
type Option[K comparable] func(*Lexer[K])

// WithTabWidth sets the tab width used by the position tracker.
func WithTabWidth[K comparable](width uint32) Option[K] {
	return func(l *Lexer[K]) { l.cfg.tabWidth = width }
}

// WithLineEnding sets the line-ending convention used by the position
// tracker.
func WithLineEnding[K comparable](mode position.LineEnding) Option[K] {
	return func(l *Lexer[K]) { l.cfg.lineEnding = mode }
}

// WithMaxErrors sets the ErrorCollector capacity.
func WithMaxErrors[K comparable](n int) Option[K] {
	return func(l *Lexer[K]) { l.cfg.maxErrors = n }
}

// WithSkipWhitespace configures whether whitespace runs are emitted as
// Whitespace tokens (false, the default) or silently skipped (true).
func WithSkipWhitespace[K comparable](skip bool) Option[K] {
	return func(l *Lexer[K]) { l.cfg.skipWhitespace = skip }
}

// WithMaxCommentNesting sets the maximum nesting depth for block comments.
// The default, 1, means block comments do not nest.
func WithMaxCommentNesting[K comparable](depth int) Option[K] {
	return func(l *Lexer[K]) { l.cfg.maxCommentNesting = depth }
}

// WithTokenTooLongFatal configures whether exceeding MaxTokenLength is a
// Fatal error (halting the lexer) rather than a recoverable Error.
func WithTokenTooLongFatal[K comparable](fatal bool) Option[K] {
	return func(l *Lexer[K]) { l.cfg.tokenTooLongFatal = fatal }
}

// WithMaxTokenLength bounds the byte length of a single token's lexeme. A
// non-positive value (the default) disables the check.
func WithMaxTokenLength[K comparable](n int) Option[K] {
	return func(l *Lexer[K]) { l.cfg.maxTokenLength = n }
}

// WithKeywords installs a keyword table: identifiers whose lexeme matches a
// key are re-labeled with the corresponding kind instead of Kinds.Identifier.
func WithKeywords[K comparable](keywords map[string]K) Option[K] {
	return func(l *Lexer[K]) { l.keywords = keywords }
}

// Lexer walks a Buffer and produces Token[K] values in source order,
// collecting recoverable LexerErrors along the way.
type Lexer[K comparable] struct {
	buf      *buffer.Buffer
	errors   *lexerr.Collector
	kinds    KindSet[K]
	keywords map[string]K
	cfg      config
	halted   bool
}

// New constructs a Lexer over source using kinds to map the driver's
// built-in token classes onto K.
func New[K comparable](source []byte, kinds KindSet[K], opts ...Option[K]) *Lexer[K] {
	l := &Lexer[K]{kinds: kinds, cfg: defaultConfig()}
	for _, opt := range opts {
		opt(l)
	}
	l.buf = buffer.NewWithPositionTracking(source,
		position.WithTabWidth(l.cfg.tabWidth),
		position.WithLineEnding(l.cfg.lineEnding),
	)
	l.errors = lexerr.NewCollector(l.cfg.maxErrors)
	return l
}

// NewDefault constructs a Lexer over source using the DefaultKind
// demonstration kind set.
func NewDefault(source []byte, opts ...Option[token.DefaultKind]) *Lexer[token.DefaultKind] {
	return New(source, DefaultKinds, opts...)
}

// Errors returns the lexer's ErrorCollector.
func (l *Lexer[K]) Errors() *lexerr.Collector {
	return l.errors
}

// Buffer returns the lexer's underlying Buffer.
func (l *Lexer[K]) Buffer() *buffer.Buffer {
	return l.buf
}

func (l *Lexer[K]) addError(err lexerr.LexerError) {
	if addErr := l.errors.Add(err); addErr != nil {
		// Collector is at capacity: treat as fatal so the driver halts
		// deterministically rather than silently dropping diagnostics.
		l.halted = true
		return
	}
	if err.Severity == lexerr.Fatal {
		l.halted = true
	}
}

func (l *Lexer[K]) currentPosition() position.SourcePosition {
	pos, ok := l.buf.CurrentPosition()
	if !ok {
		return position.Start
	}
	return pos
}

func (l *Lexer[K]) eofToken() token.Token[K] {
	pos := l.currentPosition()
	return token.New(l.kinds.EndOfFile, nil, pos)
}

// checkTokenLength records a TokenTooLong error when tok's lexeme exceeds
// the configured MaxTokenLength. The error's severity is promoted to Fatal
// when WithTokenTooLongFatal is set, which halts the lexer for every
// subsequent call to Next.
func (l *Lexer[K]) checkTokenLength(tok token.Token[K], startPos position.SourcePosition) {
	if l.cfg.maxTokenLength <= 0 || len(tok.Slice) <= l.cfg.maxTokenLength {
		return
	}
	err := lexerr.New(lexerr.TokenTooLong, startPos)
	if l.cfg.tokenTooLongFatal {
		err = err.WithSeverity(lexerr.Fatal)
	}
	l.addError(err)
}

// Next returns the next token in source order, terminating the stream with
// an EndOfFile token. Once a Fatal error has occurred, every subsequent
// call returns EndOfFile deterministically.
func (l *Lexer[K]) Next() token.Token[K] {
	if l.halted {
		return l.eofToken()
	}
	if l.buf.IsAtEnd() {
		return l.eofToken()
	}

	for {
		startOffset := l.buf.Pos()
		startPos := l.currentPosition()

		cp, _, ok, err := l.buf.PeekCodepoint()
		if err != nil {
			l.addError(lexerr.New(lexerr.EncodingError, startPos))
			_, nextErr := l.buf.Next()
			if nextErr != nil {
				return l.eofToken()
			}
			if l.halted {
				return l.eofToken()
			}
			continue
		}
		if !ok {
			return l.eofToken()
		}

		tok, retry := l.scanOne(cp, startOffset, startPos)
		if retry {
			if l.halted {
				return l.eofToken()
			}
			continue
		}
		l.checkTokenLength(tok, startPos)
		return tok
	}
}

// scanOne dispatches on the first codepoint of the next token. retry is
// true when the caller should loop back to Next's top because no token was
// produced (a whitespace run skipped under WithSkipWhitespace).
func (l *Lexer[K]) scanOne(cp rune, startOffset int, startPos position.SourcePosition) (tok token.Token[K], retry bool) {
	switch {
	case isWhitespaceRune(cp):
		slice := l.buf.ConsumeWhitespace()
		if l.cfg.skipWhitespace {
			return token.Token[K]{}, true
		}
		return token.New(l.kinds.Whitespace, slice, startPos), false

	case isDigitRune(cp):
		return l.scanNumber(startOffset, startPos), false

	case isIdentifierStartRune(cp):
		return l.scanIdentifier(startOffset, startPos), false

	case cp == '"':
		return l.scanString(startOffset, startPos), false

	case cp == '.':
		if next, ok := l.buf.PeekAt(1); ok && isASCIIDigitByte(next) {
			return l.scanNumber(startOffset, startPos), false
		}
		// A '.' not followed by a digit is not a valid number start.
		_, _, _, _ = l.buf.NextCodepoint()
		l.addError(lexerr.New(lexerr.InvalidNumber, startPos))
		return token.New(l.kinds.Invalid, l.buf.SliceFrom(startOffset), startPos), false

	case cp == '/':
		if next, ok := l.buf.PeekAt(1); ok && (next == '/' || next == '*') {
			t, handled := l.scanComment(startOffset, startPos)
			if !handled {
				return token.Token[K]{}, true
			}
			return t, false
		}
		return l.emitSingle(l.kinds.Slash, startOffset, startPos), false

	default:
		if kind, ok := l.punctuationKind(cp); ok {
			return l.emitSingle(kind, startOffset, startPos), false
		}
		// Unrecognized character: recover by skipping one codepoint and
		// emitting an Invalid token for it.
		_, _, _, _ = l.buf.NextCodepoint()
		slice := l.buf.SliceFrom(startOffset)
		l.addError(lexerr.New(lexerr.UnexpectedCharacter, startPos))
		return token.New(l.kinds.Invalid, slice, startPos), false
	}
}

func (l *Lexer[K]) punctuationKind(cp rune) (K, bool) {
	switch cp {
	case '+':
		return l.kinds.Plus, true
	case '-':
		return l.kinds.Minus, true
	case '*':
		return l.kinds.Star, true
	case '(':
		return l.kinds.LeftParen, true
	case ')':
		return l.kinds.RightParen, true
	case '{':
		return l.kinds.LeftBrace, true
	case '}':
		return l.kinds.RightBrace, true
	case ',':
		return l.kinds.Comma, true
	case ';':
		return l.kinds.Semicolon, true
	default:
		var zero K
		return zero, false
	}
}

func (l *Lexer[K]) emitSingle(kind K, startOffset int, startPos position.SourcePosition) token.Token[K] {
	_, _, _, _ = l.buf.NextCodepoint()
	return token.New(kind, l.buf.SliceFrom(startOffset), startPos)
}

func isWhitespaceRune(cp rune) bool { return charclass.IsWhitespace(cp) }
func isDigitRune(cp rune) bool      { return cp >= '0' && cp <= '9' }
func isIdentifierStartRune(cp rune) bool {
	return charclass.IsIdentifierStart(cp)
}
