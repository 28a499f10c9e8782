package token

import "strings"

// Classifier answers trait questions about a token kind: is it
// whitespace, a comment, an identifier, a literal, an operator, or a
// keyword.
//
// Callers with a closed, well-named kind enumeration can use
// NameClassifier; callers that want precise control (or whose kind type
// does not implement fmt.Stringer) should supply their own Classifier, for
// instance one backed by a lookup table keyed by kind.
type Classifier[K comparable] interface {
	IsWhitespace(K) bool
	IsComment(K) bool
	IsIdentifier(K) bool
	IsLiteral(K) bool
	IsOperator(K) bool
	IsKeyword(K) bool
}

// stringer is the subset of fmt.Stringer NameClassifier depends on.
type stringer interface {
	String() string
}

// NameClassifier implements Classifier by inspecting the textual name of
// K's String() method: a variant named "...Whitespace..." is whitespace, a
// variant named "...Comment..." is a comment, and so on. K must implement
// fmt.Stringer (e.g. via an enum with a hand-written or stringer-generated
// String method).
type NameClassifier[K stringer] struct{}

func (NameClassifier[K]) contains(k K, substr string) bool {
	return strings.Contains(k.String(), substr)
}

func (c NameClassifier[K]) IsWhitespace(k K) bool { return c.contains(k, "Whitespace") }
func (c NameClassifier[K]) IsComment(k K) bool    { return c.contains(k, "Comment") }
func (c NameClassifier[K]) IsIdentifier(k K) bool { return c.contains(k, "Identifier") }
func (c NameClassifier[K]) IsLiteral(k K) bool    { return c.contains(k, "Literal") }
func (c NameClassifier[K]) IsKeyword(k K) bool    { return c.contains(k, "Keyword") }

func (c NameClassifier[K]) IsOperator(k K) bool {
	name := k.String()
	for _, op := range operatorNames {
		if name == op {
			return true
		}
	}
	return false
}

// operatorNames lists the DefaultKind operator/punctuation variant names
// NameClassifier recognizes as operators; custom kind sets that want
// operator classification via name inspection should name their variants
// to match one of these, or supply their own Classifier.
var operatorNames = []string{
	"Plus", "Minus", "Star", "Slash",
	"LeftParen", "RightParen", "LeftBrace", "RightBrace",
	"Comma", "Semicolon",
}

// MapClassifier implements Classifier from caller-supplied sets of kinds,
// avoiding any reliance on variant naming. Unset fields behave as empty
// sets.
type MapClassifier[K comparable] struct {
	Whitespace map[K]bool
	Comment    map[K]bool
	Identifier map[K]bool
	Literal    map[K]bool
	Operator   map[K]bool
	Keyword    map[K]bool
}

func (m MapClassifier[K]) IsWhitespace(k K) bool { return m.Whitespace[k] }
func (m MapClassifier[K]) IsComment(k K) bool    { return m.Comment[k] }
func (m MapClassifier[K]) IsIdentifier(k K) bool { return m.Identifier[k] }
func (m MapClassifier[K]) IsLiteral(k K) bool    { return m.Literal[k] }
func (m MapClassifier[K]) IsOperator(k K) bool   { return m.Operator[k] }
func (m MapClassifier[K]) IsKeyword(k K) bool    { return m.Keyword[k] }

// DefaultClassifier returns the NameClassifier for DefaultKind, the
// demonstration kind set. The Lexer itself does not consult a Classifier.
func DefaultClassifier() Classifier[DefaultKind] {
	return NameClassifier[DefaultKind]{}
}
