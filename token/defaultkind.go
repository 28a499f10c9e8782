package token

// DefaultKind is a demonstration token-kind enumeration used by this
// module's own tests and by the Lexer when callers do not supply a custom
// kind type. It is not authoritative: callers define their own K.
type DefaultKind int

const (
	Identifier DefaultKind = iota
	IntegerLiteral
	FloatLiteral
	StringLiteral
	Plus
	Minus
	Star
	Slash
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Semicolon
	Whitespace
	Comment
	EndOfFile
	Invalid
)

var defaultKindNames = [...]string{
	Identifier:     "Identifier",
	IntegerLiteral: "IntegerLiteral",
	FloatLiteral:   "FloatLiteral",
	StringLiteral:  "StringLiteral",
	Plus:           "Plus",
	Minus:          "Minus",
	Star:           "Star",
	Slash:          "Slash",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	Comma:          "Comma",
	Semicolon:      "Semicolon",
	Whitespace:     "Whitespace",
	Comment:        "Comment",
	EndOfFile:      "EndOfFile",
	Invalid:        "Invalid",
}

// String implements fmt.Stringer, naming the variant the way a
// stringer-generated Type would. It backs the default, name-based
// classifier in classify.go.
func (k DefaultKind) String() string {
	if int(k) >= 0 && int(k) < len(defaultKindNames) {
		return defaultKindNames[k]
	}
	return "Unknown"
}
