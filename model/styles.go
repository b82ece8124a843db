package model

import "errors"

// TypographyStyle is the font setup of a single text role.
type TypographyStyle struct {
	FontFamily    FontFamily    `json:"fontFamily"`
	FontWeight    FontWeight    `json:"fontWeight"`
	TextTransform TextTransform `json:"textTransform"`
}

func (t TypographyStyle) Validate() error {
	return errors.Join(t.FontFamily.Validate(), t.FontWeight.Validate(), t.TextTransform.Validate())
}

// ButtonPreset names a bundle of button defaults derived from the theme.
type ButtonPreset string

const (
	PresetSolid    ButtonPreset = "solid"
	PresetOutline  ButtonPreset = "outline"
	PresetGhost    ButtonPreset = "ghost"
	PresetGlass    ButtonPreset = "glass"
	PresetGradient ButtonPreset = "gradient"
)

var ButtonPresets = []ButtonPreset{PresetSolid, PresetOutline, PresetGhost, PresetGlass, PresetGradient}

func (p ButtonPreset) Validate() error {
	return oneOf("button preset", p, ButtonPresets)
}

// ButtonStyle describes a storefront button. BorderWidth and BorderRadius
// are in pixels; Padding is a raw CSS length ("12px 24px").
type ButtonStyle struct {
	Preset          ButtonPreset  `json:"preset"`
	BackgroundColor string        `json:"backgroundColor"`
	TextColor       string        `json:"textColor"`
	BorderColor     string        `json:"borderColor"`
	BorderWidth     int           `json:"borderWidth"`
	BorderRadius    int           `json:"borderRadius"`
	Shadow          ShadowTier    `json:"shadow"`
	TextTransform   TextTransform `json:"textTransform"`
	FontWeight      FontWeight    `json:"fontWeight"`
	Padding         string        `json:"padding"`
}

func (b ButtonStyle) Validate() error {
	var errs []error
	if b.Preset != "" {
		errs = append(errs, b.Preset.Validate())
	}
	errs = append(errs,
		b.Shadow.Validate(),
		b.TextTransform.Validate(),
		b.FontWeight.Validate(),
		nonNegative("border width", b.BorderWidth),
		nonNegative("border radius", b.BorderRadius),
	)
	return errors.Join(errs...)
}

// CardStyle describes a storefront card container.
type CardStyle struct {
	BackgroundColor string     `json:"backgroundColor"`
	BorderColor     string     `json:"borderColor"`
	BorderWidth     int        `json:"borderWidth"`
	BorderRadius    int        `json:"borderRadius"`
	Shadow          ShadowTier `json:"shadow"`
}

func (c CardStyle) Validate() error {
	return errors.Join(
		c.Shadow.Validate(),
		nonNegative("border width", c.BorderWidth),
		nonNegative("border radius", c.BorderRadius),
	)
}

func nonNegative(what string, v int) error {
	if v < 0 {
		return &RangeError{Field: what, Value: v}
	}
	return nil
}

// RangeError reports a negative pixel measure.
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return e.Field + " must not be negative"
}

func (e *RangeError) Unwrap() error { return ErrInvalidValue }
