package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles of the menus and the scoreboard.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style

	Best  lipgloss.Style // personal best next to a hole
	Under lipgloss.Style // scores under par
	Over  lipgloss.Style // scores over par
}

// DefaultTheme returns the green-and-gold default theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Best:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Under: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Over:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// MonochromeTheme returns a theme without colors for dumb terminals.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		MenuTitle:       plain.Bold(true),
		MenuItemNormal:  plain,
		MenuItemActive:  plain.Reverse(true),
		MenuDescription: plain.Faint(true),
		Controls:        plain.Faint(true),
		Best:            plain.Bold(true),
		Under:           plain,
		Over:            plain,
	}
}

var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the global theme.
func CurrentTheme() Theme {
	return theme
}

// toParStyle picks the style for a score relative to par.
func (t Theme) toParStyle(d int) lipgloss.Style {
	switch {
	case d < 0:
		return t.Under
	case d > 0:
		return t.Over
	default:
		return t.MenuItemNormal
	}
}
