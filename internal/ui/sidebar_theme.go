package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SidebarTheme tightens padding and text sizes so the sidebar fits more
// bookmarks per screen
type SidebarTheme struct{}

// NewSidebarTheme creates the application theme
func NewSidebarTheme() fyne.Theme {
	return &SidebarTheme{}
}

// Color returns theme colors
func (t *SidebarTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 166, G: 227, B: 161, A: 255} // Green for synced
	case theme.ColorNameError:
		return color.RGBA{R: 243, G: 139, B: 168, A: 255} // Red for sync failures
	case theme.ColorNamePrimary:
		return color.RGBA{R: 203, G: 166, B: 247, A: 255} // Accent
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 30, G: 30, B: 46, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SidebarTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SidebarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *SidebarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	}

	return theme.DefaultTheme().Size(name)
}
