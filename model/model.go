// Package model holds the style records edited by themeplane: theme colors,
// typography, navigation, button and card styles, and their enumerations.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when an enumerated field holds a value outside
// its allowed set.
var ErrInvalidValue = errors.New("invalid value")

// FontFamily is one of the supported storefront font families.
type FontFamily string

const (
	FontInter        FontFamily = "Inter"
	FontRoboto       FontFamily = "Roboto"
	FontOpenSans     FontFamily = "Open Sans"
	FontLato         FontFamily = "Lato"
	FontMontserrat   FontFamily = "Montserrat"
	FontPoppins      FontFamily = "Poppins"
	FontPlayfair     FontFamily = "Playfair Display"
	FontMerriweather FontFamily = "Merriweather"
	FontGeorgia      FontFamily = "Georgia"
	FontArial        FontFamily = "Arial"
)

// FontFamilies lists the supported font families in menu order.
var FontFamilies = []FontFamily{
	FontInter, FontRoboto, FontOpenSans, FontLato, FontMontserrat,
	FontPoppins, FontPlayfair, FontMerriweather, FontGeorgia, FontArial,
}

// Validate reports ErrInvalidValue for an unsupported family.
func (f FontFamily) Validate() error {
	return oneOf("font family", f, FontFamilies)
}

// FontWeight is a numeric CSS font weight kept as a string ("400").
type FontWeight string

// FontWeights lists the accepted weights, lightest first.
var FontWeights = []FontWeight{"300", "400", "500", "600", "700", "800", "900"}

func (w FontWeight) Validate() error {
	return oneOf("font weight", w, FontWeights)
}

// TextTransform is a CSS text-transform value.
type TextTransform string

const (
	TransformNone       TextTransform = "none"
	TransformUppercase  TextTransform = "uppercase"
	TransformCapitalize TextTransform = "capitalize"
	TransformLowercase  TextTransform = "lowercase"
)

var TextTransforms = []TextTransform{TransformNone, TransformUppercase, TransformCapitalize, TransformLowercase}

func (t TextTransform) Validate() error {
	return oneOf("text transform", t, TextTransforms)
}

// TextRole names a typographic role on the storefront.
type TextRole string

const (
	RoleBody TextRole = "body"
	RoleH1   TextRole = "h1"
	RoleH2   TextRole = "h2"
	RoleH3   TextRole = "h3"
	RoleH4   TextRole = "h4"
)

// TextRoles lists roles in publish order.
var TextRoles = []TextRole{RoleBody, RoleH1, RoleH2, RoleH3, RoleH4}

func (r TextRole) Validate() error {
	return oneOf("text role", r, TextRoles)
}

// ShadowTier names a predefined drop-shadow intensity.
type ShadowTier string

const (
	ShadowNone ShadowTier = "none"
	ShadowSM   ShadowTier = "sm"
	ShadowMD   ShadowTier = "md"
	ShadowLG   ShadowTier = "lg"
	ShadowXL   ShadowTier = "xl"
)

var ShadowTiers = []ShadowTier{ShadowNone, ShadowSM, ShadowMD, ShadowLG, ShadowXL}

func (s ShadowTier) Validate() error {
	return oneOf("shadow", s, ShadowTiers)
}

var shadowCSS = map[ShadowTier]string{
	ShadowNone: "none",
	ShadowSM:   "0 1px 2px rgba(0, 0, 0, 0.05)",
	ShadowMD:   "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
	ShadowLG:   "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
	ShadowXL:   "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 8px 10px -6px rgba(0, 0, 0, 0.1)",
}

// CSS returns the box-shadow value for the tier. Unknown tiers render as none.
func (s ShadowTier) CSS() string {
	if v, ok := shadowCSS[s]; ok {
		return v
	}
	return "none"
}

// MobileMenuStyle is how navigation opens on small screens.
type MobileMenuStyle string

const (
	MenuOverlay   MobileMenuStyle = "overlay"
	MenuSidepanel MobileMenuStyle = "sidepanel"
)

var MobileMenuStyles = []MobileMenuStyle{MenuOverlay, MenuSidepanel}

func (m MobileMenuStyle) Validate() error {
	return oneOf("mobile menu style", m, MobileMenuStyles)
}

func oneOf[T ~string](what string, v T, allowed []T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%s %q: %w", what, string(v), ErrInvalidValue)
}
