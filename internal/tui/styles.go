// Package tui holds the interactive terminal form and the lipgloss renderers
// shared with the plain CLI output.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorGreen  = lipgloss.Color("35")
	colorLeaf   = lipgloss.Color("114")
	colorRed    = lipgloss.Color("196")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
	colorBorder = lipgloss.Color("240")
)

//nolint:gochecknoglobals // lipgloss styles are immutable values shared across views.
var (
	// HeaderStyle renders section titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	// LabelStyle renders field labels and result keys.
	LabelStyle = lipgloss.NewStyle().Foreground(colorGray)

	// ValueStyle renders values.
	ValueStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)

	// FocusedStyle highlights the field that receives key input.
	FocusedStyle = lipgloss.NewStyle().Foreground(colorLeaf).Bold(true)

	// ErrorStyle renders failure reasons.
	ErrorStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	// SubtleStyle renders help text.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorGray).Italic(true)

	// BoxStyle frames the result panel.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// TableHeaderStyle renders table column titles.
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Padding(0, 1)

	// TableCellStyle renders table cells.
	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)
)
