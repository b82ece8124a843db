package color

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, h := range []string{"#d4af37", "#000000", "#FFFFFF", "0a0B0c", "#123abc"} {
		c := HexToRGB(h)
		want := "#" + strings.ToUpper(strings.TrimPrefix(h, "#"))
		assert.Equal(t, want, RGBToHex(c.R, c.G, c.B), h)
	}
}

func TestHexToRGBInvalidIsBlack(t *testing.T) {
	assert.Equal(t, RGB{0, 0, 0}, HexToRGB("zzzzzz"))
	assert.Equal(t, RGB{0, 0, 0}, HexToRGB("#fff"))
	assert.Equal(t, RGB{0, 0, 0}, HexToRGB("#1234567"))

	_, ok := ParseHex("zzzzzz")
	assert.False(t, ok)
	c, ok := ParseHex("#D4AF37")
	require.True(t, ok)
	assert.Equal(t, RGB{212, 175, 55}, c)
}

func TestParseRGBAAlphaDefault(t *testing.T) {
	for _, v := range []int{0, 1, 127, 200, 255} {
		c, ok := ParseRGBA(fmt.Sprintf("rgba(%d,%d,%d)", v, 255-v, v/2))
		require.True(t, ok)
		assert.Equal(t, 1.0, c.A)
		assert.Equal(t, RGB{v, 255 - v, v / 2}, c.RGB())
	}

	c, ok := ParseRGBA("rgb(10, 20, 30)")
	require.True(t, ok)
	assert.Equal(t, RGBA{10, 20, 30, 1}, c)
}

func TestParseRGBAWithAlpha(t *testing.T) {
	c, ok := ParseRGBA("rgba(255, 255, 255, 0.1)")
	require.True(t, ok)
	assert.Equal(t, RGBA{255, 255, 255, 0.1}, c)
}

func TestParseRGBAIgnoresCase(t *testing.T) {
	c, ok := ParseRGBA(" RGBA(1, 2, 3, 0.5) ")
	require.True(t, ok)
	assert.Equal(t, RGBA{1, 2, 3, 0.5}, c)

	c, ok = ParseRGBA("Rgb(4,5,6)")
	require.True(t, ok)
	assert.Equal(t, RGBA{4, 5, 6, 1}, c)
}

func TestParseRGBAMiss(t *testing.T) {
	for _, s := range []string{"not a color", "", "#FFFFFF", "rgba(1,2)", "linear-gradient(rgba(1,2,3), #fff)", "color: rgba(1,2,3)", "rgba(1,2,3);"} {
		_, ok := ParseRGBA(s)
		assert.False(t, ok, s)
	}
}

func TestRGBToHexPadsAndClamps(t *testing.T) {
	assert.Equal(t, "#000000", RGBToHex(0, 0, 0))
	assert.Equal(t, "#01020A", RGBToHex(1, 2, 10))
	assert.Equal(t, "#FF0000", RGBToHex(300, -4, 0))
}

func TestClassifyAndNormalize(t *testing.T) {
	grad := "linear-gradient(135deg, #D4AF37 0%, #8A6E1C 100%)"
	assert.Equal(t, KindGradient, Classify(grad))
	assert.Equal(t, grad, Normalize(grad))

	assert.Equal(t, KindHex, Classify("#abcdef"))
	assert.Equal(t, "#ABCDEF", Normalize("abcdef"))

	assert.Equal(t, KindRGBA, Classify("rgb(1, 2, 3)"))
	assert.Equal(t, "rgba(1, 2, 3, 1)", Normalize("rgb(1,2,3)"))

	assert.Equal(t, KindUnknown, Classify("transparent"))
	assert.Equal(t, "transparent", Normalize("transparent"))
}

func TestGradientNeverSolid(t *testing.T) {
	_, ok := Solid("radial-gradient(#fff, #000)")
	assert.False(t, ok)
	assert.Equal(t, "radial-gradient(#fff, #000)", Darken("radial-gradient(#fff, #000)", 0.5))
}

func TestDarken(t *testing.T) {
	assert.Equal(t, "#D4AF37", Darken("#D4AF37", 0))
	assert.Equal(t, "#000000", Darken("#D4AF37", 1))

	mid := HexToRGB(Darken("#D4AF37", 0.3))
	assert.Less(t, mid.R, 212)
	assert.Less(t, mid.G, 175)
}

func TestFormatRGBA(t *testing.T) {
	assert.Equal(t, "rgba(212, 175, 55, 0.15)", FormatRGBA(RGB{212, 175, 55}, 0.15))
	assert.Equal(t, "rgba(0, 0, 0, 1)", FormatRGBA(RGB{}, 3))
}
