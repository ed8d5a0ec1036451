package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	paperColor = color.Black
	inkColor   = color.White
	caretColor = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
)

// notepadTheme is the dark variant of the default theme with white text on
// black, a cyan caret and a fixed text size.
type notepadTheme struct {
	base     fyne.Theme
	textSize float32
}

func NewTheme(textSize float32) fyne.Theme {
	return &notepadTheme{base: theme.DefaultTheme(), textSize: textSize}
}

func (t *notepadTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return paperColor
	case theme.ColorNameForeground:
		return inkColor
	case theme.ColorNamePrimary:
		return caretColor
	}
	return t.base.Color(name, theme.VariantDark)
}

func (t *notepadTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *notepadTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *notepadTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 {
		return t.textSize
	}
	return t.base.Size(name)
}
