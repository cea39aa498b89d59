package tui

import "github.com/charmbracelet/lipgloss"

// Newsroom-on-dark palette: amber masthead accents, ink background,
// red reserved for alerts.
const (
	colorMasthead = "#F4B860"
	colorInk      = "#1C1C28"
	colorPaper    = "#F2EFE9"
	colorOK       = "#2E8B57"
	colorAlert    = "#D64545"
	colorMuted    = "#8A8A8A"
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorInk)).
		Background(lipgloss.Color(colorMasthead)).
		Padding(0, 2).
		MarginTop(1)

	StatusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorOK))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAlert))

	InfoStyle = lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color(colorMuted))

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(colorMasthead)).
		Padding(1, 3)

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPaper)).
		Background(lipgloss.Color(colorInk)).
		Padding(0, 1)
)
