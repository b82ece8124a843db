package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"themeplane/model"
)

// Section is one independently updatable partition of a theme.
type Section string

const (
	SectionColors     Section = "colors"
	SectionTypography Section = "typography"
	SectionNavigation Section = "navigation"
)

var Sections = []Section{SectionColors, SectionTypography, SectionNavigation}

var (
	ErrUnknownSection = errors.New("unknown theme section")
	ErrUnknownKey     = errors.New("unknown key")
)

// ParseSection validates a section name.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownSection)
}

// mergePersisted overlays a stored record onto def field by field. Corrupt or
// missing parts keep the default; unknown keys and roles are dropped.
func mergePersisted(data []byte, def model.Theme, log zerolog.Logger) model.Theme {
	out := def.Clone()

	var rec map[string]json.RawMessage
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Warn().Err(err).Msg("stored theme is corrupt, using defaults")
		return out
	}

	if raw, ok := rec[string(SectionColors)]; ok {
		var colors map[string]any
		if err := json.Unmarshal(raw, &colors); err != nil {
			log.Warn().Err(err).Msg("stored colors are corrupt, using defaults")
		}
		for _, key := range model.ColorKeys {
			if v, ok := colors[key].(string); ok && v != "" {
				out.Colors.Set(key, v)
			}
		}
	}

	if raw, ok := rec[string(SectionTypography)]; ok {
		var roles map[string]map[string]any
		if err := json.Unmarshal(raw, &roles); err != nil {
			log.Warn().Err(err).Msg("stored typography is corrupt, using defaults")
		}
		for _, role := range model.TextRoles {
			saved, ok := roles[string(role)]
			if !ok {
				continue
			}
			out.Typography[role] = mergeTypography(out.Typography[role], saved)
		}
	}

	if raw, ok := rec[string(SectionNavigation)]; ok {
		var nav map[string]any
		if err := json.Unmarshal(raw, &nav); err != nil {
			log.Warn().Err(err).Msg("stored navigation is corrupt, using defaults")
		}
		if v, ok := nav["mobileMenuStyle"].(string); ok && model.MobileMenuStyle(v).Validate() == nil {
			out.Navigation.MobileMenuStyle = model.MobileMenuStyle(v)
		}
	}

	return out
}

func mergeTypography(def model.TypographyStyle, saved map[string]any) model.TypographyStyle {
	out := def
	if v, ok := saved["fontFamily"].(string); ok && model.FontFamily(v).Validate() == nil {
		out.FontFamily = model.FontFamily(v)
	}
	switch v := saved["fontWeight"].(type) {
	case string:
		if model.FontWeight(v).Validate() == nil {
			out.FontWeight = model.FontWeight(v)
		}
	case float64:
		w := model.FontWeight(strconv.Itoa(int(v)))
		if w.Validate() == nil {
			out.FontWeight = w
		}
	}
	if v, ok := saved["textTransform"].(string); ok && model.TextTransform(v).Validate() == nil {
		out.TextTransform = model.TextTransform(v)
	}
	return out
}

// applyPartial returns cur with partial shallow-merged into section. Only the
// keys present in partial change; typography roles are replaced wholesale.
func applyPartial(cur model.Theme, section Section, partial any) (model.Theme, error) {
	raw, err := partialJSON(partial)
	if err != nil {
		return cur, err
	}
	next := cur.Clone()

	switch section {
	case SectionColors:
		var patch map[string]string
		if err := json.Unmarshal(raw, &patch); err != nil {
			return cur, fmt.Errorf("decode colors: %w", err)
		}
		for key, value := range patch {
			if !next.Colors.Set(key, value) {
				return cur, fmt.Errorf("color %q: %w", key, ErrUnknownKey)
			}
		}

	case SectionTypography:
		var patch map[model.TextRole]model.TypographyStyle
		if err := json.Unmarshal(raw, &patch); err != nil {
			return cur, fmt.Errorf("decode typography: %w", err)
		}
		for role, style := range patch {
			if err := role.Validate(); err != nil {
				return cur, fmt.Errorf("%w: %w", ErrUnknownKey, err)
			}
			if err := style.Validate(); err != nil {
				return cur, fmt.Errorf("typography %s: %w", role, err)
			}
			next.Typography[role] = style
		}

	case SectionNavigation:
		var patch map[string]json.RawMessage
		if err := json.Unmarshal(raw, &patch); err != nil {
			return cur, fmt.Errorf("decode navigation: %w", err)
		}
		for key, value := range patch {
			if key != "mobileMenuStyle" {
				return cur, fmt.Errorf("navigation %q: %w", key, ErrUnknownKey)
			}
			var style model.MobileMenuStyle
			if err := json.Unmarshal(value, &style); err != nil {
				return cur, fmt.Errorf("decode mobileMenuStyle: %w", err)
			}
			if err := style.Validate(); err != nil {
				return cur, err
			}
			next.Navigation.MobileMenuStyle = style
		}

	default:
		return cur, fmt.Errorf("%q: %w", section, ErrUnknownSection)
	}

	return next, nil
}

func partialJSON(partial any) ([]byte, error) {
	switch p := partial.(type) {
	case json.RawMessage:
		return p, nil
	case []byte:
		return p, nil
	case nil:
		return []byte("{}"), nil
	}
	raw, err := json.Marshal(partial)
	if err != nil {
		return nil, fmt.Errorf("encode partial: %w", err)
	}
	return raw, nil
}
