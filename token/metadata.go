package token

// MetadataKind tags the active variant of a Metadata value.
type MetadataKind int

const (
	MetaNone MetadataKind = iota
	MetaInteger
	MetaFloat
	MetaString
	MetaBoolean
	MetaCharacter
	MetaOpaque
)

// Metadata is a tagged union carrying the parsed value of a literal token.
// Only the field matching Kind is meaningful.
type Metadata struct {
	Kind      MetadataKind
	Integer   int64
	Float     float64
	String    []byte
	Boolean   bool
	Character rune
	Opaque    interface{}
}

// IntegerMetadata builds an integer-variant Metadata.
func IntegerMetadata(v int64) Metadata {
	return Metadata{Kind: MetaInteger, Integer: v}
}

// FloatMetadata builds a float-variant Metadata.
func FloatMetadata(v float64) Metadata {
	return Metadata{Kind: MetaFloat, Float: v}
}

// StringMetadata builds a string-variant Metadata. The lexer passes the
// literal's contents with escape sequences decoded, in a freshly built
// slice rather than a subslice of the source buffer.
func StringMetadata(slice []byte) Metadata {
	return Metadata{Kind: MetaString, String: slice}
}

// BooleanMetadata builds a boolean-variant Metadata.
func BooleanMetadata(v bool) Metadata {
	return Metadata{Kind: MetaBoolean, Boolean: v}
}

// CharacterMetadata builds a character-variant Metadata.
func CharacterMetadata(v rune) Metadata {
	return Metadata{Kind: MetaCharacter, Character: v}
}

// OpaqueMetadata builds an opaque-variant Metadata, an escape hatch for
// caller-defined payloads that do not fit the value variants above.
func OpaqueMetadata(v interface{}) Metadata {
	return Metadata{Kind: MetaOpaque, Opaque: v}
}
