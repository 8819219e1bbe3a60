package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for the frame around the game output
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	EchoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	FocusedBorderColor = lipgloss.Color("#04B575")
	BorderColor        = lipgloss.Color("#626262")
)
