package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorDone   = lipgloss.AdaptiveColor{Light: "#22863A", Dark: "#97E023"}
	colorError  = lipgloss.AdaptiveColor{Light: "#CB2431", Dark: "#F97583"}

	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	panelStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	doneStyle     = lipgloss.NewStyle().Foreground(colorDone).Strikethrough(true)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
)
