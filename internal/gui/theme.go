package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	colorBackground = color.NRGBA{R: 0x1a, G: 0x02, B: 0x02, A: 0xff}
	colorInput      = color.NRGBA{R: 0x2a, G: 0x05, B: 0x05, A: 0xff}
	colorButton     = color.NRGBA{R: 0x4a, G: 0x04, B: 0x04, A: 0xff}
	colorHover      = color.NRGBA{R: 0x6a, G: 0x06, B: 0x06, A: 0xff}
	colorPressed    = color.NRGBA{R: 0x2a, G: 0x02, B: 0x02, A: 0xff}
	colorGold       = color.NRGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0xff}
	colorText       = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	colorMuted      = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// underworldTheme is a dark red and gold theme. Anything it does not
// override falls through to the dark variant of the default theme.
type underworldTheme struct{}

var _ fyne.Theme = (*underworldTheme)(nil)

func NewTheme() fyne.Theme {
	return &underworldTheme{}
}

func (t *underworldTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return colorBackground
	case theme.ColorNameInputBackground:
		return colorInput
	case theme.ColorNameButton:
		return colorButton
	case theme.ColorNameHover:
		return colorHover
	case theme.ColorNamePressed:
		return colorPressed
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return colorGold
	case theme.ColorNameForeground:
		return colorText
	case theme.ColorNameDisabled, theme.ColorNamePlaceHolder:
		return colorMuted
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *underworldTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *underworldTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *underworldTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameHeadingText {
		return 28
	}
	return theme.DefaultTheme().Size(name)
}
