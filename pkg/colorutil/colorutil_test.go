package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#FFFFFF", Hex(White))
	assert.Equal(t, "#FF0000", Hex(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, "#00FF0080", Hex(color.NRGBA{G: 255, A: 0x80}))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = ParseHex("fff")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	c, err = ParseHex("#12345678")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, c)

	_, err = ParseHex("#12")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestToNRGBA(t *testing.T) {
	assert.Equal(t, White, ToNRGBA(color.White))
	assert.Equal(t, color.NRGBA{}, ToNRGBA(nil))
}
