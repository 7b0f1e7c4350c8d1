package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the annotate session colors and styles.
type Theme struct {
	Primary lipgloss.Color
	Danger  lipgloss.Color
	Success lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color

	TitleStyle    lipgloss.Style
	CurrentStyle  lipgloss.Style
	SelectedStyle lipgloss.Style
	PlacedStyle   lipgloss.Style
	MissingStyle  lipgloss.Style
	StatusStyle   lipgloss.Style
	ErrorStyle    lipgloss.Style
	HelpStyle     lipgloss.Style
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() Theme {
	t := Theme{
		Primary: lipgloss.Color("#7C3AED"),
		Danger:  lipgloss.Color("#EF4444"),
		Success: lipgloss.Color("#10B981"),
		Muted:   lipgloss.Color("#6B7280"),
		Text:    lipgloss.Color("#E5E7EB"),
	}

	t.TitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.CurrentStyle = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.SelectedStyle = lipgloss.NewStyle().Foreground(t.Danger)
	t.PlacedStyle = lipgloss.NewStyle().Foreground(t.Success)
	t.MissingStyle = lipgloss.NewStyle().Foreground(t.Muted)
	t.StatusStyle = lipgloss.NewStyle().Foreground(t.Muted)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Danger).Bold(true)
	t.HelpStyle = lipgloss.NewStyle().Foreground(t.Muted)
	return t
}
