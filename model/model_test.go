package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidation(t *testing.T) {
	assert.NoError(t, FontOpenSans.Validate())
	assert.ErrorIs(t, FontFamily("Comic Sans").Validate(), ErrInvalidValue)
	assert.NoError(t, FontWeight("700").Validate())
	assert.ErrorIs(t, FontWeight("bold").Validate(), ErrInvalidValue)
	assert.ErrorIs(t, MobileMenuStyle("drawer").Validate(), ErrInvalidValue)
	assert.ErrorIs(t, TextRole("h5").Validate(), ErrInvalidValue)
}

func TestButtonStyleValidate(t *testing.T) {
	b := ButtonStyle{
		Preset:        PresetOutline,
		Shadow:        ShadowNone,
		TextTransform: TransformUppercase,
		FontWeight:    "600",
		BorderWidth:   2,
	}
	require.NoError(t, b.Validate())

	b.BorderWidth = -1
	err := b.Validate()
	require.ErrorIs(t, err, ErrInvalidValue)
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "border width", rangeErr.Field)
}

func TestShadowCSS(t *testing.T) {
	assert.Equal(t, "none", ShadowNone.CSS())
	assert.Equal(t, "none", ShadowTier("huge").CSS())
	assert.Contains(t, ShadowMD.CSS(), "4px 6px")
}

func TestColorsGetSet(t *testing.T) {
	var c Colors
	for _, k := range ColorKeys {
		require.True(t, c.Set(k, "#"+k))
	}
	assert.Equal(t, "#textPrimary", c.TextPrimary)
	assert.Equal(t, "#mobileMenuAccent", c.MobileMenuAccent)

	v, ok := c.Get("buttonBg")
	assert.True(t, ok)
	assert.Equal(t, "#buttonBg", v)

	assert.False(t, c.Set("link", "#fff"))
	_, ok = c.Get("link")
	assert.False(t, ok)
}

func TestThemeCloneDoesNotAlias(t *testing.T) {
	orig := Theme{Typography: map[TextRole]TypographyStyle{
		RoleBody: {FontFamily: FontInter, FontWeight: "400", TextTransform: TransformNone},
	}}
	cp := orig.Clone()
	cp.Typography[RoleBody] = TypographyStyle{FontFamily: FontArial}
	assert.Equal(t, FontInter, orig.Typography[RoleBody].FontFamily)

	empty := Theme{}.Clone()
	assert.NotNil(t, empty.Typography)
}
