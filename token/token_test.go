package token_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/lexcore-go/lexcore/position"
	"github.com/lexcore-go/lexcore/token"
)

func TestNewAndAccessors(t *testing.T) {
	src := []byte("hello world")
	tok := token.New(token.Identifier, src[0:5], position.Start)
	assert.Equal(t, "hello", string(tok.Lexeme()))
	assert.Equal(t, 5, tok.Length())
}

func TestNewWithMetadata(t *testing.T) {
	tok := token.NewWithMetadata(token.IntegerLiteral, []byte("42"), position.Start, token.IntegerMetadata(42))
	assert.Equal(t, token.MetaInteger, tok.Metadata.Kind)
	assert.EqualValues(t, 42, tok.Metadata.Integer)
}

func TestEqualAndIdentical(t *testing.T) {
	p1 := position.SourcePosition{Line: 1, Column: 1, Offset: 0}
	p2 := position.SourcePosition{Line: 2, Column: 1, Offset: 10}
	a := token.New(token.Identifier, []byte("x"), p1)
	b := token.New(token.Identifier, []byte("x"), p2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Identical(b))

	c := token.New(token.Identifier, []byte("x"), p1)
	assert.True(t, a.Identical(c))

	if diff := cmp.Diff(a, c); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestAreAdjacentAndDistance(t *testing.T) {
	a := token.New(token.Identifier, []byte("ab"), position.SourcePosition{Offset: 0})
	b := token.New(token.Plus, []byte("+"), position.SourcePosition{Offset: 2})
	assert.True(t, token.AreAdjacent(a, b))
	assert.EqualValues(t, 2, token.Distance(a, b))

	c := token.New(token.Plus, []byte("+"), position.SourcePosition{Offset: 3})
	assert.False(t, token.AreAdjacent(a, c))
}

func TestCompareByPosition(t *testing.T) {
	a := token.New(token.Identifier, nil, position.SourcePosition{Offset: 5})
	b := token.New(token.Identifier, nil, position.SourcePosition{Offset: 10})
	assert.Equal(t, -1, token.CompareByPosition(a, b))
	assert.Equal(t, 1, token.CompareByPosition(b, a))
	assert.Equal(t, 0, token.CompareByPosition(a, a))
}

func TestDefaultClassifier(t *testing.T) {
	cls := token.DefaultClassifier()
	assert.True(t, cls.IsWhitespace(token.Whitespace))
	assert.True(t, cls.IsComment(token.Comment))
	assert.True(t, cls.IsIdentifier(token.Identifier))
	assert.True(t, cls.IsLiteral(token.IntegerLiteral))
	assert.True(t, cls.IsLiteral(token.StringLiteral))
	assert.True(t, cls.IsOperator(token.Plus))
	assert.False(t, cls.IsOperator(token.Identifier))
	assert.False(t, cls.IsKeyword(token.Identifier))
}

func TestMapClassifier(t *testing.T) {
	type kind int
	const (
		kIf kind = iota
		kIdent
	)
	cls := token.MapClassifier[kind]{
		Keyword:    map[kind]bool{kIf: true},
		Identifier: map[kind]bool{kIdent: true},
	}
	assert.True(t, cls.IsKeyword(kIf))
	assert.False(t, cls.IsKeyword(kIdent))
	assert.True(t, cls.IsIdentifier(kIdent))
}
