package ui

import "github.com/charmbracelet/lipgloss"

// lipgloss colors matching the ANSI 256 codes of each theme's accent.
var accentColors = map[string]lipgloss.Color{
	"dark":   lipgloss.Color("39"),
	"light":  lipgloss.Color("27"),
	"orange": lipgloss.Color("208"),
}

// BannerStyle returns the boxed style used for the REPL banner. With the
// no-color theme the box keeps its border but drops all colors.
func BannerStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 3).
		Bold(true)
	if c, ok := accentColors[GetCurrentTheme().Name]; ok {
		style = style.BorderForeground(c).Foreground(c)
	}
	return style
}

// RenderBanner renders title inside the banner box.
func RenderBanner(title string) string {
	return BannerStyle().Render(title)
}

// KeyValueStyle returns the style used for labels in key/value listings.
func KeyValueStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().Width(width)
	if c, ok := accentColors[GetCurrentTheme().Name]; ok {
		style = style.Foreground(c)
	}
	return style
}
