package registry

import (
	"themeplane/model"
	"themeplane/storage"
)

// BuyNowPrefix selects the buy-now button family.
const BuyNowPrefix = "buy_now"

// ButtonKey is the record key of the button registry for app.
func ButtonKey(app string) string { return app + "_buttons" }

// CardKey is the record key of the card registry for app.
func CardKey(app string) string { return app + "_cards" }

// DefaultButtons returns the seeded button styles.
func DefaultButtons() map[string]model.ButtonStyle {
	buyNow := model.ButtonStyle{
		Preset:          model.PresetSolid,
		BackgroundColor: "#D4AF37",
		TextColor:       "#0A0A0A",
		BorderColor:     "#D4AF37",
		BorderWidth:     0,
		BorderRadius:    4,
		Shadow:          model.ShadowSM,
		TextTransform:   model.TransformUppercase,
		FontWeight:      "600",
		Padding:         "14px 28px",
	}
	sticky := buyNow
	sticky.Padding = "12px 20px"
	mobile := buyNow
	mobile.Padding = "12px 16px"

	addToCart := model.ButtonStyle{
		Preset:          model.PresetOutline,
		BackgroundColor: "transparent",
		TextColor:       "#D4AF37",
		BorderColor:     "#D4AF37",
		BorderWidth:     2,
		BorderRadius:    4,
		Shadow:          model.ShadowNone,
		TextTransform:   model.TransformUppercase,
		FontWeight:      "600",
		Padding:         "14px 28px",
	}
	newsletter := addToCart
	newsletter.Preset = model.PresetGhost
	newsletter.BorderColor = "transparent"
	newsletter.BorderWidth = 0
	newsletter.TextTransform = model.TransformNone
	newsletter.FontWeight = "500"
	newsletter.Padding = "10px 18px"

	return map[string]model.ButtonStyle{
		"buy_now":        buyNow,
		"buy_now_sticky": sticky,
		"buy_now_mobile": mobile,
		"add_to_cart":    addToCart,
		"newsletter":     newsletter,
	}
}

// DefaultCards returns the seeded card styles.
func DefaultCards() map[string]model.CardStyle {
	base := model.CardStyle{
		BackgroundColor: "#171717",
		BorderColor:     "#262626",
		BorderWidth:     1,
		BorderRadius:    8,
		Shadow:          model.ShadowSM,
	}
	collection := base
	collection.BorderRadius = 12
	collection.Shadow = model.ShadowMD
	blog := base
	blog.BorderWidth = 0
	blog.Shadow = model.ShadowNone

	return map[string]model.CardStyle{
		"product":    base,
		"collection": collection,
		"blog":       blog,
	}
}

type (
	Buttons = Registry[model.ButtonStyle]
	Cards   = Registry[model.CardStyle]
)

// NewButtons opens the button registry for app.
func NewButtons(kv storage.KV, app string) *Buttons {
	return New(kv, ButtonKey(app), DefaultButtons())
}

// NewCards opens the card registry for app.
func NewCards(kv storage.KV, app string) *Cards {
	return New(kv, CardKey(app), DefaultCards())
}
