package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4D96FF"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD93D"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6BCB77"))
)
