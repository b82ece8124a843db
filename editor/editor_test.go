package editor

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeplane/model"
	"themeplane/registry"
	"themeplane/storage"
	"themeplane/theme"
)

type fixture struct {
	kv      *storage.Memory
	themes  *theme.Store
	buttons *registry.Buttons
	cards   *registry.Cards
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	kv := storage.NewMemory()
	return fixture{
		kv:      kv,
		themes:  theme.NewStore(kv, theme.WithAppName("shop"), theme.WithLogger(zerolog.Nop())),
		buttons: registry.NewButtons(kv, "shop"),
		cards:   registry.NewCards(kv, "shop"),
	}
}

func TestButtonEditorDirtyAndCommit(t *testing.T) {
	f := newFixture(t)
	e, err := OpenButton(f.buttons, f.themes, "add_to_cart")
	require.NoError(t, err)
	assert.False(t, e.Dirty())

	require.NoError(t, e.SetBorderRadius(10))
	assert.True(t, e.Dirty())
	require.NoError(t, e.SetBorderRadius(e.Source().BorderRadius))
	assert.False(t, e.Dirty())

	require.NoError(t, e.SetBackgroundColor("#ff0000"))
	assert.Equal(t, "#FF0000", e.Value().BackgroundColor)
	require.NoError(t, e.Commit())
	assert.True(t, e.Closed())

	stored, err := f.buttons.Get("add_to_cart")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", stored.BackgroundColor)

	assert.ErrorIs(t, e.Commit(), ErrClosed)
	assert.ErrorIs(t, e.SetPadding("1px"), ErrClosed)
}

func TestButtonEditorDiscard(t *testing.T) {
	f := newFixture(t)
	e, err := OpenButton(f.buttons, f.themes, "buy_now")
	require.NoError(t, err)
	require.NoError(t, e.SetPadding("2px"))
	e.Discard()

	stored, err := f.buttons.Get("buy_now")
	require.NoError(t, err)
	assert.Equal(t, registry.DefaultButtons()["buy_now"], stored)
	assert.False(t, e.Dirty())
}

func TestButtonEditorSetterValidation(t *testing.T) {
	f := newFixture(t)
	e, err := OpenButton(f.buttons, f.themes, "buy_now")
	require.NoError(t, err)

	assert.ErrorIs(t, e.SetBorderWidth(-1), model.ErrInvalidValue)
	assert.ErrorIs(t, e.SetShadow("huge"), model.ErrInvalidValue)
	assert.ErrorIs(t, e.SelectPreset("neon"), model.ErrInvalidValue)
	assert.False(t, e.Dirty())

	_, err = OpenButton(f.buttons, f.themes, "missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestSelectOutlinePresetKeepsPadding(t *testing.T) {
	f := newFixture(t)
	e, err := OpenButton(f.buttons, f.themes, "buy_now")
	require.NoError(t, err)
	require.NoError(t, e.SetPadding("9px 31px"))

	require.NoError(t, e.SelectPreset(model.PresetOutline))
	got := e.Value()
	assert.Equal(t, "transparent", got.BackgroundColor)
	assert.Equal(t, "#D4AF37", got.TextColor)
	assert.Equal(t, "#D4AF37", got.BorderColor)
	assert.Equal(t, 2, got.BorderWidth)
	assert.Equal(t, "9px 31px", got.Padding)
	assert.Equal(t, model.PresetOutline, got.Preset)
}

func TestPresetFollowsThemeAccent(t *testing.T) {
	f := newFixture(t)
	_, err := f.themes.Update(theme.SectionColors, map[string]string{"accent": "#112233"})
	require.NoError(t, err)

	e, err := OpenButton(f.buttons, f.themes, "buy_now")
	require.NoError(t, err)
	require.NoError(t, e.SelectPreset(model.PresetGhost))
	assert.Equal(t, "#112233", e.Value().TextColor)
}

func TestApplyPresetTable(t *testing.T) {
	colors := theme.DefaultTheme().Colors
	prior := model.ButtonStyle{Padding: "1px 2px"}

	for _, p := range model.ButtonPresets {
		out, err := ApplyPreset(p, colors, prior)
		require.NoError(t, err, p)
		assert.NoError(t, out.Validate(), p)
		assert.Equal(t, "1px 2px", out.Padding, p)
		assert.Equal(t, p, out.Preset)
	}

	solid, _ := ApplyPreset(model.PresetSolid, colors, prior)
	assert.Equal(t, colors.ButtonBg, solid.BackgroundColor)
	assert.Equal(t, colors.ButtonText, solid.TextColor)

	glass, _ := ApplyPreset(model.PresetGlass, colors, prior)
	assert.Equal(t, "rgba(212, 175, 55, 0.15)", glass.BackgroundColor)
	assert.Equal(t, "rgba(212, 175, 55, 0.35)", glass.BorderColor)

	grad, _ := ApplyPreset(model.PresetGradient, colors, prior)
	assert.Contains(t, grad.BackgroundColor, "linear-gradient(135deg, #D4AF37 0%, #")

	colors.Accent = "linear-gradient(90deg, red, blue)"
	grad, _ = ApplyPreset(model.PresetGradient, colors, prior)
	assert.Equal(t, colors.Accent, grad.BackgroundColor)
	glass, _ = ApplyPreset(model.PresetGlass, colors, prior)
	assert.Equal(t, "rgba(255, 255, 255, 0.1)", glass.BackgroundColor)
}

func TestApplyToAllRequiresConfirmation(t *testing.T) {
	f := newFixture(t)
	e, err := OpenButton(f.buttons, f.themes, "buy_now")
	require.NoError(t, err)
	require.NoError(t, e.SelectPreset(model.PresetOutline))

	_, err = e.ApplyToAll(Never)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	sticky, err := f.buttons.Get("buy_now_sticky")
	require.NoError(t, err)
	assert.Equal(t, registry.DefaultButtons()["buy_now_sticky"], sticky)

	var asked string
	changed, err := e.ApplyToAll(ConfirmFunc(func(action string) bool { asked = action; return true }))
	require.NoError(t, err)
	assert.Contains(t, asked, "buy_now")
	assert.Equal(t, []string{"buy_now", "buy_now_mobile", "buy_now_sticky"}, changed)
	assert.False(t, e.Dirty())

	sticky, err = f.buttons.Get("buy_now_sticky")
	require.NoError(t, err)
	assert.Equal(t, e.Value(), sticky)

	cart, err := f.buttons.Get("add_to_cart")
	require.NoError(t, err)
	assert.Equal(t, registry.DefaultButtons()["add_to_cart"], cart)
}

func TestButtonApplyPatch(t *testing.T) {
	f := newFixture(t)
	e, err := OpenButton(f.buttons, f.themes, "newsletter")
	require.NoError(t, err)

	require.NoError(t, e.Apply(map[string]string{
		"preset":      "outline",
		"borderWidth": "3px",
		"textColor":   "rgb(1,2,3)",
		"padding":     " 4px ",
	}))
	got := e.Value()
	assert.Equal(t, 3, got.BorderWidth)
	assert.Equal(t, "rgba(1, 2, 3, 1)", got.TextColor)
	assert.Equal(t, "4px", got.Padding)
	assert.Equal(t, "#D4AF37", got.BorderColor)

	assert.ErrorIs(t, e.Apply(map[string]string{"glow": "1"}), ErrUnknownField)
	assert.ErrorIs(t, e.Apply(map[string]string{"borderRadius": "wide"}), model.ErrInvalidValue)
}

func TestCardEditor(t *testing.T) {
	f := newFixture(t)
	e, err := OpenCard(f.cards, "product")
	require.NoError(t, err)

	require.NoError(t, e.Apply(map[string]string{"shadow": "xl", "borderRadius": "16", "backgroundColor": "abcdef"}))
	assert.True(t, e.Dirty())
	require.NoError(t, e.Commit())

	stored, err := f.cards.Get("product")
	require.NoError(t, err)
	assert.Equal(t, model.ShadowXL, stored.Shadow)
	assert.Equal(t, 16, stored.BorderRadius)
	assert.Equal(t, "#ABCDEF", stored.BackgroundColor)

	e, err = OpenCard(f.cards, "blog")
	require.NoError(t, err)
	assert.ErrorIs(t, e.Apply(map[string]string{"padding": "1px"}), ErrUnknownField)
	assert.ErrorIs(t, e.SetBorderWidth(-2), model.ErrInvalidValue)
}

func TestThemeEditorCommitsChangedSections(t *testing.T) {
	f := newFixture(t)
	var published []model.Theme
	f.themes.Subscribe(func(th model.Theme, _ []theme.Variable) { published = append(published, th) })
	require.Len(t, published, 1)

	e := OpenTheme(f.themes)
	require.NoError(t, e.SetColor("accent", "#ff0000"))
	require.NoError(t, e.SetTypography(model.RoleH2, "fontWeight", "800"))
	require.NoError(t, e.SetMobileMenuStyle(model.MenuOverlay))
	assert.True(t, e.Dirty())

	require.NoError(t, e.Commit())
	require.Len(t, published, 2, "one commit publishes once")

	last := published[1]
	assert.Equal(t, "#FF0000", last.Colors.Accent)
	assert.Equal(t, model.FontWeight("800"), last.Typography[model.RoleH2].FontWeight)
	assert.Equal(t, model.MenuOverlay, last.Navigation.MobileMenuStyle)
	assert.Equal(t, last, f.themes.Current())
}

func TestThemeEditorCommitWithoutChangesDoesNotPublish(t *testing.T) {
	f := newFixture(t)
	var published int
	f.themes.Subscribe(func(model.Theme, []theme.Variable) { published++ })

	e := OpenTheme(f.themes)
	require.NoError(t, e.Commit())
	assert.Equal(t, 1, published)
}

func TestThemeEditorDraftIsIsolated(t *testing.T) {
	f := newFixture(t)
	e := OpenTheme(f.themes)
	require.NoError(t, e.SetTypography(model.RoleBody, "fontFamily", "Roboto"))
	require.NoError(t, e.SetMobileMenuStyle(model.MenuOverlay))

	assert.Equal(t, theme.DefaultTheme(), f.themes.Current())
	assert.Equal(t, model.FontInter, e.Source().Typography[model.RoleBody].FontFamily)

	e.Discard()
	assert.Equal(t, theme.DefaultTheme(), f.themes.Current())
}

func TestThemeEditorValidation(t *testing.T) {
	f := newFixture(t)
	e := OpenTheme(f.themes)
	assert.ErrorIs(t, e.SetColor("link", "#fff"), theme.ErrUnknownKey)
	assert.ErrorIs(t, e.SetTypography("h6", "fontFamily", "Inter"), theme.ErrUnknownKey)
	assert.ErrorIs(t, e.SetTypography(model.RoleH1, "letterSpacing", "1px"), ErrUnknownField)
	assert.ErrorIs(t, e.SetTypography(model.RoleH1, "fontWeight", "bold"), model.ErrInvalidValue)
	assert.ErrorIs(t, e.SetMobileMenuStyle("drawer"), model.ErrInvalidValue)
	assert.False(t, e.Dirty())
}

func TestThemeEditorReset(t *testing.T) {
	f := newFixture(t)
	_, err := f.themes.Update(theme.SectionColors, map[string]string{"accent": "#FF0000"})
	require.NoError(t, err)

	e := OpenTheme(f.themes)
	assert.ErrorIs(t, e.Reset(Never), ErrNotConfirmed)
	assert.Equal(t, "#FF0000", f.themes.Current().Colors.Accent)

	require.NoError(t, e.Reset(Always))
	assert.Equal(t, theme.DefaultTheme(), f.themes.Current())
	assert.Equal(t, theme.DefaultTheme(), e.Value())
	assert.False(t, e.Dirty())

	restarted := theme.NewStore(f.kv, theme.WithAppName("shop"), theme.WithLogger(zerolog.Nop()))
	assert.Equal(t, theme.DefaultTheme(), restarted.Current())
}
