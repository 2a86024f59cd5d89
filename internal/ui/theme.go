// Package ui shows rendered tag clouds in a desktop window.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// previewTheme wraps the default Fyne theme, paints the window background
// with the cloud background and tightens padding around the image.
type previewTheme struct {
	base       fyne.Theme
	background color.Color
}

func newPreviewTheme(background color.Color) *previewTheme {
	return &previewTheme{base: theme.DefaultTheme(), background: background}
}

// Color returns the cloud background for the window background and
// delegates everything else.
func (t *previewTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground && t.background != nil {
		return t.background
	}
	return t.base.Color(name, variant)
}

func (t *previewTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *previewTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *previewTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 0
	case theme.SizeNameInnerPadding:
		return 0
	default:
		return t.base.Size(name)
	}
}
