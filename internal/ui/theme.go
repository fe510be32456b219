package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the Lipgloss styles used by the console.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Danger  lipgloss.Style
	Badge   lipgloss.Style
	Panel   lipgloss.Style
	Key     lipgloss.Style
}

// DefaultStyles returns the console palette (Dracula colors).
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#bd93f9")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")).
			Width(10),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f8f8f2")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50fa7b")),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555")),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#282a36")).
			Background(lipgloss.Color("#8be9fd")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#44475a")).
			Padding(0, 1),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffb86c")),
	}
}
