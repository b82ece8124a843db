package theme

import "themeplane/model"

// DefaultTheme returns the compiled-in theme. Each call returns a fresh copy.
func DefaultTheme() model.Theme {
	return model.Theme{
		Colors: model.Colors{
			Accent:               "#D4AF37",
			Background:           "#0A0A0A",
			TextPrimary:          "#FFFFFF",
			TextSecondary:        "#A3A3A3",
			ButtonBg:             "#D4AF37",
			ButtonText:           "#0A0A0A",
			Surface:              "#171717",
			Border:               "#262626",
			MobileMenuBackground: "#0A0A0A",
			MobileMenuText:       "#FFFFFF",
			MobileMenuAccent:     "#D4AF37",
		},
		Typography: map[model.TextRole]model.TypographyStyle{
			model.RoleBody: {FontFamily: model.FontInter, FontWeight: "400", TextTransform: model.TransformNone},
			model.RoleH1:   {FontFamily: model.FontPlayfair, FontWeight: "700", TextTransform: model.TransformNone},
			model.RoleH2:   {FontFamily: model.FontPlayfair, FontWeight: "600", TextTransform: model.TransformNone},
			model.RoleH3:   {FontFamily: model.FontInter, FontWeight: "600", TextTransform: model.TransformNone},
			model.RoleH4:   {FontFamily: model.FontInter, FontWeight: "500", TextTransform: model.TransformUppercase},
		},
		Navigation: model.Navigation{MobileMenuStyle: model.MenuSidepanel},
	}
}
