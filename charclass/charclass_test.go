package charclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexcore-go/lexcore/charclass"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	cases := []string{"a", "中", "𐍈", "é"}
	for _, s := range cases {
		res, err := charclass.DecodeUTF8([]byte(s))
		require.NoError(t, err)
		buf := make([]byte, 4)
		n, err := charclass.EncodeUTF8(res.Codepoint, buf)
		require.NoError(t, err)
		assert.Equal(t, []byte(s), buf[:n])
		assert.Equal(t, len(s), res.Size)
	}
}

func TestDecodeUTF8Errors(t *testing.T) {
	_, err := charclass.DecodeUTF8([]byte{0xE4, 0xB8}) // truncated 3-byte seq
	assert.ErrorIs(t, err, charclass.ErrIncompleteUTF8)

	_, err = charclass.DecodeUTF8([]byte{0xFF})
	assert.ErrorIs(t, err, charclass.ErrInvalidUTF8)

	_, err = charclass.DecodeUTF8(nil)
	assert.ErrorIs(t, err, charclass.ErrIncompleteUTF8)
}

func TestEncodeUTF8Errors(t *testing.T) {
	_, err := charclass.EncodeUTF8('a', nil)
	assert.ErrorIs(t, err, charclass.ErrBufferTooSmall)

	_, err = charclass.EncodeUTF8(0xD800, make([]byte, 4))
	assert.ErrorIs(t, err, charclass.ErrInvalidCodepoint)

	_, err = charclass.EncodeUTF8(0x110000, make([]byte, 4))
	assert.ErrorIs(t, err, charclass.ErrInvalidCodepoint)
}

func TestIsValidCodepoint(t *testing.T) {
	assert.True(t, charclass.IsValidCodepoint(0x41))
	assert.True(t, charclass.IsValidCodepoint(0x10FFFF))
	assert.False(t, charclass.IsValidCodepoint(0x110000))
	assert.False(t, charclass.IsValidCodepoint(0xD800))
	assert.False(t, charclass.IsValidCodepoint(0xDFFF))
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\r', '\v', '\f', 0x00A0} {
		assert.True(t, charclass.IsWhitespace(r), "rune %U", r)
	}
	assert.False(t, charclass.IsWhitespace('x'))
}

func TestIdentifierClassifiers(t *testing.T) {
	assert.True(t, charclass.IsIdentifierStart('_'))
	assert.True(t, charclass.IsIdentifierStart('$'))
	assert.True(t, charclass.IsIdentifierStart('x'))
	assert.False(t, charclass.IsIdentifierStart('1'))

	assert.True(t, charclass.IsIdentifierContinue('1'))
	assert.True(t, charclass.IsIdentifierContinue('_'))
	assert.False(t, charclass.IsIdentifierContinue(' '))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 0, charclass.DisplayWidth(0x07))   // control char
	assert.Equal(t, 1, charclass.DisplayWidth('x'))     // ASCII
	assert.Equal(t, 2, charclass.DisplayWidth('中'))   // CJK
	assert.Equal(t, 2, charclass.DisplayWidth(0x1F600)) // emoji
}

func TestValidateAndCountCodepoints(t *testing.T) {
	assert.True(t, charclass.ValidateUTF8([]byte("hello 世界")))
	assert.False(t, charclass.ValidateUTF8([]byte{0xFF, 0xFE}))

	n, err := charclass.CountCodepoints([]byte("中x"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = charclass.CountCodepoints([]byte{0xFF})
	assert.ErrorIs(t, err, charclass.ErrInvalidUTF8)
}
