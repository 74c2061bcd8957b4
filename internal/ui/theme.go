// Package ui provides the DialogKit application windows.
//
// This file defines the application theme and maps the config's theme name
// to a light/dark variant.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// systemVariant marks "follow the OS setting" and is never passed to the
// base theme.
const systemVariant fyne.ThemeVariant = 255

// DialogKitTheme wraps the default Fyne theme with slightly larger entry
// text so long binary values stay readable.
type DialogKitTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewDialogKitTheme creates a theme for a config theme name
// ("light", "dark" or "system").
func NewDialogKitTheme(name string) *DialogKitTheme {
	return &DialogKitTheme{
		base:    theme.DefaultTheme(),
		variant: variantForName(name),
	}
}

// variantForName maps a theme name to a variant; unknown names follow the system.
func variantForName(name string) fyne.ThemeVariant {
	switch name {
	case "light":
		return theme.VariantLight
	case "dark":
		return theme.VariantDark
	default:
		return systemVariant
	}
}

// SetThemeName switches the variant by config name.
func (t *DialogKitTheme) SetThemeName(name string) {
	t.variant = variantForName(name)
}

// Color delegates to the base theme, forcing the configured variant.
func (t *DialogKitTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != systemVariant {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *DialogKitTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *DialogKitTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size enlarges body text and keeps the default padding.
func (t *DialogKitTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	default:
		return t.base.Size(name)
	}
}
