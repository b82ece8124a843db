package editor

import (
	"fmt"
	"maps"

	"themeplane/color"
	"themeplane/model"
	"themeplane/theme"
)

// ThemeStore is the subset of theme.Store the theme editor writes through.
type ThemeStore interface {
	Current() model.Theme
	UpdateSections(partials map[theme.Section]any) (model.Theme, error)
	Reset() model.Theme
}

// ThemeEditor edits the active theme.
type ThemeEditor struct {
	*Draft[model.Theme]
	store ThemeStore
}

// OpenTheme copies the store's current theme into a new draft.
func OpenTheme(store ThemeStore) *ThemeEditor {
	e := &ThemeEditor{store: store}
	src := store.Current()
	e.Draft = newDraft(src, src.Clone(), e.commitSections)
	return e
}

// commitSections writes every changed section in one store update.
func (e *ThemeEditor) commitSections(v model.Theme) error {
	src := e.Source()
	partials := make(map[theme.Section]any, len(theme.Sections))
	if v.Colors != src.Colors {
		partials[theme.SectionColors] = v.Colors
	}
	if !maps.Equal(v.Typography, src.Typography) {
		partials[theme.SectionTypography] = v.Typography
	}
	if v.Navigation != src.Navigation {
		partials[theme.SectionNavigation] = v.Navigation
	}
	if len(partials) == 0 {
		return nil
	}
	_, err := e.store.UpdateSections(partials)
	return err
}

// SetColor replaces one color role.
func (e *ThemeEditor) SetColor(key, value string) error {
	return e.set(func(t *model.Theme) error {
		if !t.Colors.Set(key, color.Normalize(value)) {
			return fmt.Errorf("color %q: %w", key, theme.ErrUnknownKey)
		}
		return nil
	})
}

// TypographyFields lists the properties SetTypography accepts.
var TypographyFields = []string{"fontFamily", "fontWeight", "textTransform"}

// SetTypography replaces one property of one text role.
func (e *ThemeEditor) SetTypography(role model.TextRole, field, value string) error {
	return e.set(func(t *model.Theme) error {
		if err := role.Validate(); err != nil {
			return fmt.Errorf("%w: %w", theme.ErrUnknownKey, err)
		}
		st := t.Typography[role]
		switch field {
		case "fontFamily":
			st.FontFamily = model.FontFamily(value)
			if err := st.FontFamily.Validate(); err != nil {
				return err
			}
		case "fontWeight":
			st.FontWeight = model.FontWeight(value)
			if err := st.FontWeight.Validate(); err != nil {
				return err
			}
		case "textTransform":
			st.TextTransform = model.TextTransform(value)
			if err := st.TextTransform.Validate(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%q: %w", field, ErrUnknownField)
		}
		typo := maps.Clone(t.Typography)
		typo[role] = st
		t.Typography = typo
		return nil
	})
}

// SetMobileMenuStyle replaces the mobile navigation style.
func (e *ThemeEditor) SetMobileMenuStyle(m model.MobileMenuStyle) error {
	return e.set(func(t *model.Theme) error {
		if err := m.Validate(); err != nil {
			return err
		}
		t.Navigation.MobileMenuStyle = m
		return nil
	})
}

// Reset restores the default theme once c confirms. The draft is reopened
// on the defaults.
func (e *ThemeEditor) Reset(c Confirmer) error {
	if e.Closed() {
		return ErrClosed
	}
	if !c.Confirm("reset the theme to its defaults") {
		return ErrNotConfirmed
	}
	t := e.store.Reset()
	e.source = t
	e.value = t.Clone()
	return nil
}
