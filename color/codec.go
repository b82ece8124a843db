// Package color converts between the CSS color notations the theme editor
// accepts: #RRGGBB hex, rgb()/rgba() functional notation and opaque gradient
// expressions.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a solid color with 8-bit channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// RGBA is a solid color with an alpha channel in [0,1].
type RGBA struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Kind classifies a color string.
type Kind int

const (
	KindUnknown Kind = iota
	KindHex
	KindRGBA
	KindGradient
)

func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindRGBA:
		return "rgba"
	case KindGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

var (
	hexPattern  = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)
	rgbaPattern = regexp.MustCompile(`(?i)^\s*rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]+)\s*)?\)\s*$`)
)

// ParseHex parses a 6-digit hex color with an optional leading '#'.
// The second return value reports whether text matched.
func ParseHex(text string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, false
	}
	var c RGB
	for i, dst := range []*int{&c.R, &c.G, &c.B} {
		v, _ := strconv.ParseUint(m[i+1], 16, 8)
		*dst = int(v)
	}
	return c, true
}

// HexToRGB parses a 6-digit hex color. Input that does not match yields
// black; use ParseHex to tell a miss apart from a real #000000.
func HexToRGB(hex string) RGB {
	c, _ := ParseHex(hex)
	return c
}

// ParseRGBA parses rgb(r, g, b) or rgba(r, g, b, a), case-insensitively.
// Alpha defaults to 1. The whole text, apart from surrounding whitespace,
// must be the color: rgba inside a longer value such as a gradient is a
// miss. ok is false when text is not functional rgb notation.
func ParseRGBA(text string) (c RGBA, ok bool) {
	m := rgbaPattern.FindStringSubmatch(text)
	if m == nil {
		return RGBA{}, false
	}
	c.R, _ = strconv.Atoi(m[1])
	c.G, _ = strconv.Atoi(m[2])
	c.B, _ = strconv.Atoi(m[3])
	c.A = 1
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return RGBA{}, false
		}
		c.A = a
	}
	return c, true
}

// RGBToHex renders channels as #RRGGBB with uppercase digits.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%06X", clamp(r)<<16|clamp(g)<<8|clamp(b))
}

// FormatRGBA renders c with the given alpha as rgba(r, g, b, a).
func FormatRGBA(c RGB, alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", clamp(c.R), clamp(c.G), clamp(c.B),
		strconv.FormatFloat(clampAlpha(alpha), 'f', -1, 64))
}

// IsGradient reports whether text is a gradient expression. Gradients are
// opaque and never decomposed.
func IsGradient(text string) bool {
	return strings.Contains(text, "gradient")
}

// Classify reports which notation text uses.
func Classify(text string) Kind {
	switch {
	case IsGradient(text):
		return KindGradient
	case hexPattern.MatchString(text):
		return KindHex
	case rgbaPattern.MatchString(text):
		return KindRGBA
	default:
		return KindUnknown
	}
}

// Normalize returns the canonical form of a color: hex uppercased with a
// leading '#', rgb/rgba re-rendered as rgba. Gradients and anything else
// (keywords such as "transparent") pass through unchanged.
func Normalize(text string) string {
	switch Classify(text) {
	case KindHex:
		c := HexToRGB(text)
		return RGBToHex(c.R, c.G, c.B)
	case KindRGBA:
		c, _ := ParseRGBA(text)
		return FormatRGBA(c.RGB(), c.A)
	default:
		return text
	}
}

// Solid extracts the RGB channels of a hex or rgba color.
func Solid(text string) (RGB, bool) {
	if IsGradient(text) {
		return RGB{}, false
	}
	if c, ok := ParseHex(text); ok {
		return c, true
	}
	if c, ok := ParseRGBA(text); ok {
		return c.RGB(), true
	}
	return RGB{}, false
}

// Darken blends a solid color toward black in Lab space by amount (0..1)
// and returns it as hex. Non-solid input is returned unchanged.
func Darken(text string, amount float64) string {
	c, ok := Solid(text)
	if !ok {
		return text
	}
	base := colorful.Color{
		R: float64(clamp(c.R)) / 255,
		G: float64(clamp(c.G)) / 255,
		B: float64(clamp(c.B)) / 255,
	}
	r, g, b := base.BlendLab(colorful.Color{}, clampAlpha(amount)).Clamped().RGB255()
	return RGBToHex(int(r), int(g), int(b))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
