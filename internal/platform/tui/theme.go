package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the menu and results screens.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemLocked  lipgloss.Style
	Badge       lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style
	Panel       lipgloss.Style
	Warning     lipgloss.Style
}

// DefaultTheme returns the water-blue theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemLocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Bold(true)
	theme.ItemActive = lipgloss.NewStyle().Reverse(true)
	theme.Badge = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Warning = lipgloss.NewStyle().Underline(true)
	return theme
}

// ThemeByName returns a theme by name, falling back to the default.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, "mono") || strings.EqualFold(name, "monochrome") {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
