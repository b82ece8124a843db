package editor

import (
	"errors"
	"fmt"

	"themeplane/color"
	"themeplane/model"
	"themeplane/registry"
)

// ErrUnknownField is returned by Apply for field names an editor lacks.
var ErrUnknownField = errors.New("unknown field")

// CardEditor edits one entry of the card registry.
type CardEditor struct {
	*Draft[model.CardStyle]
	key string
}

// OpenCard loads the card stored under key into a new draft.
func OpenCard(cards *registry.Cards, key string) (*CardEditor, error) {
	src, err := cards.Get(key)
	if err != nil {
		return nil, err
	}
	e := &CardEditor{key: key}
	e.Draft = newDraft(src, src, func(v model.CardStyle) error {
		return cards.Update(key, v)
	})
	return e, nil
}

func (e *CardEditor) Key() string { return e.key }

func (e *CardEditor) SetBackgroundColor(v string) error {
	return e.set(func(c *model.CardStyle) error { c.BackgroundColor = color.Normalize(v); return nil })
}

func (e *CardEditor) SetBorderColor(v string) error {
	return e.set(func(c *model.CardStyle) error { c.BorderColor = color.Normalize(v); return nil })
}

func (e *CardEditor) SetBorderWidth(px int) error {
	return e.set(func(c *model.CardStyle) error {
		if px < 0 {
			return &model.RangeError{Field: "border width", Value: px}
		}
		c.BorderWidth = px
		return nil
	})
}

func (e *CardEditor) SetBorderRadius(px int) error {
	return e.set(func(c *model.CardStyle) error {
		if px < 0 {
			return &model.RangeError{Field: "border radius", Value: px}
		}
		c.BorderRadius = px
		return nil
	})
}

func (e *CardEditor) SetShadow(s model.ShadowTier) error {
	return e.set(func(c *model.CardStyle) error {
		if err := s.Validate(); err != nil {
			return err
		}
		c.Shadow = s
		return nil
	})
}

var CardFields = []string{"backgroundColor", "borderColor", "borderWidth", "borderRadius", "shadow"}

// Apply routes each named field to its setter.
func (e *CardEditor) Apply(patch map[string]string) error {
	for name := range patch {
		if !known(CardFields, name) {
			return fmt.Errorf("%q: %w", name, ErrUnknownField)
		}
	}
	for _, name := range CardFields {
		v, ok := patch[name]
		if !ok {
			continue
		}
		var err error
		switch name {
		case "backgroundColor":
			err = e.SetBackgroundColor(v)
		case "borderColor":
			err = e.SetBorderColor(v)
		case "borderWidth", "borderRadius":
			var px int
			if px, err = parsePixels(v); err == nil {
				if name == "borderWidth" {
					err = e.SetBorderWidth(px)
				} else {
					err = e.SetBorderRadius(px)
				}
			}
		case "shadow":
			err = e.SetShadow(model.ShadowTier(v))
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
