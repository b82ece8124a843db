package editor

import (
	"fmt"
	"strconv"
	"strings"

	"themeplane/color"
	"themeplane/model"
	"themeplane/registry"
)

// ThemeSource supplies the colors presets are derived from.
type ThemeSource interface {
	Current() model.Theme
}

// ButtonEditor edits one entry of the button registry.
type ButtonEditor struct {
	*Draft[model.ButtonStyle]
	key     string
	buttons *registry.Buttons
	themes  ThemeSource
}

// OpenButton loads the button stored under key into a new draft.
func OpenButton(buttons *registry.Buttons, themes ThemeSource, key string) (*ButtonEditor, error) {
	src, err := buttons.Get(key)
	if err != nil {
		return nil, err
	}
	e := &ButtonEditor{key: key, buttons: buttons, themes: themes}
	e.Draft = newDraft(src, src, func(v model.ButtonStyle) error {
		return buttons.Update(key, v)
	})
	return e, nil
}

// Key returns the registry key being edited.
func (e *ButtonEditor) Key() string { return e.key }

func (e *ButtonEditor) SetBackgroundColor(v string) error {
	return e.set(func(b *model.ButtonStyle) error { b.BackgroundColor = color.Normalize(v); return nil })
}

func (e *ButtonEditor) SetTextColor(v string) error {
	return e.set(func(b *model.ButtonStyle) error { b.TextColor = color.Normalize(v); return nil })
}

func (e *ButtonEditor) SetBorderColor(v string) error {
	return e.set(func(b *model.ButtonStyle) error { b.BorderColor = color.Normalize(v); return nil })
}

func (e *ButtonEditor) SetBorderWidth(px int) error {
	return e.set(func(b *model.ButtonStyle) error {
		if px < 0 {
			return &model.RangeError{Field: "border width", Value: px}
		}
		b.BorderWidth = px
		return nil
	})
}

func (e *ButtonEditor) SetBorderRadius(px int) error {
	return e.set(func(b *model.ButtonStyle) error {
		if px < 0 {
			return &model.RangeError{Field: "border radius", Value: px}
		}
		b.BorderRadius = px
		return nil
	})
}

func (e *ButtonEditor) SetShadow(s model.ShadowTier) error {
	return e.set(func(b *model.ButtonStyle) error {
		if err := s.Validate(); err != nil {
			return err
		}
		b.Shadow = s
		return nil
	})
}

func (e *ButtonEditor) SetTextTransform(t model.TextTransform) error {
	return e.set(func(b *model.ButtonStyle) error {
		if err := t.Validate(); err != nil {
			return err
		}
		b.TextTransform = t
		return nil
	})
}

func (e *ButtonEditor) SetFontWeight(w model.FontWeight) error {
	return e.set(func(b *model.ButtonStyle) error {
		if err := w.Validate(); err != nil {
			return err
		}
		b.FontWeight = w
		return nil
	})
}

func (e *ButtonEditor) SetPadding(v string) error {
	return e.set(func(b *model.ButtonStyle) error { b.Padding = strings.TrimSpace(v); return nil })
}

// SelectPreset overwrites the visual fields with the preset's values for the
// current theme. Padding is preserved.
func (e *ButtonEditor) SelectPreset(p model.ButtonPreset) error {
	colors := e.themes.Current().Colors
	return e.set(func(b *model.ButtonStyle) error {
		next, err := ApplyPreset(p, colors, *b)
		if err != nil {
			return err
		}
		*b = next
		return nil
	})
}

// ApplyToAll writes the draft to every buy-now button once c confirms. It
// returns the keys that changed.
func (e *ButtonEditor) ApplyToAll(c Confirmer) ([]string, error) {
	if e.Closed() {
		return nil, ErrClosed
	}
	if !c.Confirm(fmt.Sprintf("apply this style to all %s* buttons", registry.BuyNowPrefix)) {
		return nil, ErrNotConfirmed
	}
	changed, err := e.buttons.ApplyToPrefix(registry.BuyNowPrefix, e.Value())
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(e.key, registry.BuyNowPrefix) {
		e.source = e.value
	}
	return changed, nil
}

// ButtonFields lists the field names Apply understands.
var ButtonFields = []string{
	"preset", "backgroundColor", "textColor", "borderColor", "borderWidth",
	"borderRadius", "shadow", "textTransform", "fontWeight", "padding",
}

// Apply routes each named field to its setter. A preset is applied first so
// explicit fields in the same patch override it.
func (e *ButtonEditor) Apply(patch map[string]string) error {
	for name := range patch {
		if !known(ButtonFields, name) {
			return fmt.Errorf("%q: %w", name, ErrUnknownField)
		}
	}
	for _, name := range ButtonFields {
		v, ok := patch[name]
		if !ok {
			continue
		}
		if err := e.applyField(name, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (e *ButtonEditor) applyField(name, v string) error {
	switch name {
	case "preset":
		return e.SelectPreset(model.ButtonPreset(v))
	case "backgroundColor":
		return e.SetBackgroundColor(v)
	case "textColor":
		return e.SetTextColor(v)
	case "borderColor":
		return e.SetBorderColor(v)
	case "borderWidth":
		px, err := parsePixels(v)
		if err != nil {
			return err
		}
		return e.SetBorderWidth(px)
	case "borderRadius":
		px, err := parsePixels(v)
		if err != nil {
			return err
		}
		return e.SetBorderRadius(px)
	case "shadow":
		return e.SetShadow(model.ShadowTier(v))
	case "textTransform":
		return e.SetTextTransform(model.TextTransform(v))
	case "fontWeight":
		return e.SetFontWeight(model.FontWeight(v))
	case "padding":
		return e.SetPadding(v)
	}
	return ErrUnknownField
}

func parsePixels(v string) (int, error) {
	px, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil {
		return 0, fmt.Errorf("%q is not a pixel value: %w", v, model.ErrInvalidValue)
	}
	return px, nil
}

func known(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
