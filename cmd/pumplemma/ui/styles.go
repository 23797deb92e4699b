package ui

import "github.com/charmbracelet/lipgloss"

// Styles bundles the explorer's lipgloss styles.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Selected     lipgloss.Style
	Kind         lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the explorer's default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#1f77b4")),
		Label: lipgloss.NewStyle().Bold(true),
		FocusedLabel: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ff7f0e")),
		Selected: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#2ca02c")),
		Kind: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#9467bd")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d62728")),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
