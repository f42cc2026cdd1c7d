package app

import (
	"image/color"

	"circuit-sketch/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SketchTheme is the fixed dark theme with rounded buttons.
type SketchTheme struct{}

var _ fyne.Theme = (*SketchTheme)(nil)

func (t *SketchTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colorutil.Background
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return colorutil.Button
	case theme.ColorNameHover:
		return colorutil.Hover
	case theme.ColorNamePressed:
		return colorutil.Pressed
	case theme.ColorNameForeground:
		return colorutil.Foreground
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *SketchTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *SketchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *SketchTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 12
	case theme.SizeNameText:
		return 14
	case theme.SizeNamePadding:
		return 6
	default:
		return theme.DefaultTheme().Size(name)
	}
}
