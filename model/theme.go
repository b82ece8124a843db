package model

import "maps"

// Colors holds the named color roles of a theme. Values are hex, rgba or
// gradient text.
type Colors struct {
	Accent               string `json:"accent"`
	Background           string `json:"background"`
	TextPrimary          string `json:"textPrimary"`
	TextSecondary        string `json:"textSecondary"`
	ButtonBg             string `json:"buttonBg"`
	ButtonText           string `json:"buttonText"`
	Surface              string `json:"surface"`
	Border               string `json:"border"`
	MobileMenuBackground string `json:"mobileMenuBackground"`
	MobileMenuText       string `json:"mobileMenuText"`
	MobileMenuAccent     string `json:"mobileMenuAccent"`
}

// ColorKeys lists the color role keys in publish order.
var ColorKeys = []string{
	"accent", "background", "textPrimary", "textSecondary", "buttonBg",
	"buttonText", "surface", "border", "mobileMenuBackground",
	"mobileMenuText", "mobileMenuAccent",
}

func (c *Colors) field(key string) *string {
	switch key {
	case "accent":
		return &c.Accent
	case "background":
		return &c.Background
	case "textPrimary":
		return &c.TextPrimary
	case "textSecondary":
		return &c.TextSecondary
	case "buttonBg":
		return &c.ButtonBg
	case "buttonText":
		return &c.ButtonText
	case "surface":
		return &c.Surface
	case "border":
		return &c.Border
	case "mobileMenuBackground":
		return &c.MobileMenuBackground
	case "mobileMenuText":
		return &c.MobileMenuText
	case "mobileMenuAccent":
		return &c.MobileMenuAccent
	}
	return nil
}

// Get returns the value of a color role by key.
func (c Colors) Get(key string) (string, bool) {
	p := c.field(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set replaces a single color role. It reports false for unknown keys.
func (c *Colors) Set(key, value string) bool {
	p := c.field(key)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Navigation holds storefront navigation settings.
type Navigation struct {
	MobileMenuStyle MobileMenuStyle `json:"mobileMenuStyle"`
}

// Theme is the complete storefront theme.
type Theme struct {
	Colors     Colors                       `json:"colors"`
	Typography map[TextRole]TypographyStyle `json:"typography"`
	Navigation Navigation                   `json:"navigation"`
}

// Clone returns a deep copy so callers can never alias the typography map.
func (t Theme) Clone() Theme {
	out := t
	out.Typography = maps.Clone(t.Typography)
	if out.Typography == nil {
		out.Typography = make(map[TextRole]TypographyStyle)
	}
	return out
}
