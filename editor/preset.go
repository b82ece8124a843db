package editor

import (
	"fmt"

	"themeplane/color"
	"themeplane/model"
)

const (
	glassFill   = 0.15
	glassBorder = 0.35
	gradientEnd = 0.3
)

// ApplyPreset returns prior with every visual field replaced by the preset's
// values derived from the theme colors. Padding is kept from prior.
func ApplyPreset(p model.ButtonPreset, c model.Colors, prior model.ButtonStyle) (model.ButtonStyle, error) {
	if err := p.Validate(); err != nil {
		return prior, err
	}

	out := model.ButtonStyle{Preset: p, Padding: prior.Padding}
	switch p {
	case model.PresetSolid:
		out.BackgroundColor = c.ButtonBg
		out.TextColor = c.ButtonText
		out.BorderColor = c.ButtonBg
		out.BorderWidth = 0
		out.BorderRadius = 4
		out.Shadow = model.ShadowSM
		out.TextTransform = model.TransformUppercase
		out.FontWeight = "600"

	case model.PresetOutline:
		out.BackgroundColor = "transparent"
		out.TextColor = c.Accent
		out.BorderColor = c.Accent
		out.BorderWidth = 2
		out.BorderRadius = 4
		out.Shadow = model.ShadowNone
		out.TextTransform = model.TransformUppercase
		out.FontWeight = "600"

	case model.PresetGhost:
		out.BackgroundColor = "transparent"
		out.TextColor = c.Accent
		out.BorderColor = "transparent"
		out.BorderWidth = 0
		out.BorderRadius = 4
		out.Shadow = model.ShadowNone
		out.TextTransform = model.TransformNone
		out.FontWeight = "500"

	case model.PresetGlass:
		out.BackgroundColor = "rgba(255, 255, 255, 0.1)"
		out.BorderColor = "rgba(255, 255, 255, 0.2)"
		if rgb, ok := color.Solid(c.Accent); ok {
			out.BackgroundColor = color.FormatRGBA(rgb, glassFill)
			out.BorderColor = color.FormatRGBA(rgb, glassBorder)
		}
		out.TextColor = c.TextPrimary
		out.BorderWidth = 1
		out.BorderRadius = 12
		out.Shadow = model.ShadowMD
		out.TextTransform = model.TransformNone
		out.FontWeight = "500"

	case model.PresetGradient:
		out.BackgroundColor = gradient(c.Accent)
		out.TextColor = c.ButtonText
		out.BorderColor = "transparent"
		out.BorderWidth = 0
		out.BorderRadius = 8
		out.Shadow = model.ShadowLG
		out.TextTransform = model.TransformUppercase
		out.FontWeight = "700"
	}
	return out, nil
}

func gradient(accent string) string {
	if color.IsGradient(accent) {
		return accent
	}
	start := color.Normalize(accent)
	return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", start, color.Darken(accent, gradientEnd))
}
