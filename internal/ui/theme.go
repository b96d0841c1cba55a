// Package ui renders the console summaries printed after a command finishes.
// Report files are written by package report and are never styled.
package ui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Colors
var (
	Primary = lipgloss.Color("#33A8FF")
	Muted   = lipgloss.Color("#6B7280")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	CountStyle = lipgloss.NewStyle().
			Bold(true).
			Width(5).
			Align(lipgloss.Right)
)

// ClassColor maps a report class name to a theme color.
func ClassColor(class string) color.Color {
	switch strings.ToLower(class) {
	case "external", "nonexistent":
		return Error
	case "unknown", "unused":
		return Warning
	case "internal", "in use":
		return Success
	default:
		return Muted
	}
}

// RenderClass renders a class name with a colored bullet.
func RenderClass(class string) string {
	bullet := lipgloss.NewStyle().Foreground(ClassColor(class)).Render("●")
	return bullet + " " + class
}
