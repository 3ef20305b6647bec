package common

import (
	"github.com/charmbracelet/lipgloss"
)

func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
}

var defaultStyle = lipgloss.NewStyle()

// DimStyle is used for secondary text such as hints and timestamps
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// BarStyle is the light grey strip behind the toolbar
func BarStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Background(lipgloss.Color("254")).
		Foreground(lipgloss.Color("236"))
}

// TitleStyle renders the toolbar title
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).MarginRight(2)
}

// ButtonStyle renders a filled toolbar button
func ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("254"))
}

// CloseButtonStyle renders the close button, darker than the others
func CloseButtonStyle() lipgloss.Style {
	return ButtonStyle().Background(lipgloss.Color("233"))
}

// SelectStyle renders the outlined language selector
func SelectStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("236")).
		Background(lipgloss.Color("255"))
}

// ToggleStyle renders a page toggle option
func ToggleStyle(active bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	if active {
		return style.Background(lipgloss.Color("5")).Foreground(lipgloss.Color("255"))
	}
	return style.Foreground(lipgloss.Color("240"))
}

// PopupStyle frames menus and pickers drawn as overlays
func PopupStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
}

// HeaderStyle renders table headers
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Underline(true)
}

// ErrorStyle renders error text in the status line
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
}
