// Package styles defines shared lipgloss styles for indicator output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	infoColor    = lipgloss.Color("#5FAFAF") // Teal accent
	subtleColor  = lipgloss.Color("#666666") // Gray for secondary text
	successColor = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor   = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// PlainStyle leaves text untouched
	PlainStyle = lipgloss.NewStyle()

	// InfoStyle for active bar glyphs
	InfoStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	// SubtleStyle for unfilled bar cells and hints
	SubtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// SuccessStyle for the finished bar
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// ErrorStyle for the failed bar
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)
