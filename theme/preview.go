package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"themeplane/color"
	"themeplane/model"
)

var (
	previewTitle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	previewKey   = lipgloss.NewStyle().Width(22)
	previewMuted = lipgloss.NewStyle().Faint(true)
)

// Preview renders t for a terminal: a swatch per color role followed by the
// typography table and navigation style.
func Preview(t model.Theme) string {
	var b strings.Builder
	b.WriteString(previewTitle.Render("Colors"))
	b.WriteString("\n")
	for _, key := range model.ColorKeys {
		v, _ := t.Colors.Get(key)
		fmt.Fprintf(&b, "%s %s %s\n", swatch(v), previewKey.Render(key), v)
	}

	b.WriteString("\n")
	b.WriteString(previewTitle.Render("Typography"))
	b.WriteString("\n")
	for _, role := range model.TextRoles {
		st, ok := t.Typography[role]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", previewKey.Width(6).Render(string(role)),
			previewKey.Render(string(st.FontFamily)), st.FontWeight, previewMuted.Render(string(st.TextTransform)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", previewKey.Render("mobile menu"), t.Navigation.MobileMenuStyle)
	return b.String()
}

func swatch(value string) string {
	c, ok := color.Solid(value)
	if !ok {
		return previewMuted.Render(" ~~ ")
	}
	hex := color.RGBToHex(c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
