package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for the scorecard and prompts
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
	Stat   lipgloss.Style
	Value  lipgloss.Style
	Notice lipgloss.Style
	Info   lipgloss.Style
	Banner lipgloss.Style
}

// NewStyles creates the styles bound to a renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true).
			Padding(0, 1),
		Cell: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1).
			Align(lipgloss.Center),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Stat: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Value: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Notice: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Banner: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
	}
}
