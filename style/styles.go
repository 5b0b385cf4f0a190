package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Default widget directives.
const (
	DefaultHeader   = "bold white on blue"
	DefaultSelector = "blue"
)

// Styles holds the lipgloss styles widgets fall back on when no directive
// is given for a structural element.
type Styles struct {
	// Selector
	ChoiceLabel lipgloss.Style // numbered "N. label" lines
	ChoiceDesc  lipgloss.Style // indented descriptions

	// InfoFrame
	EntryTitle lipgloss.Style
	EntryBody  lipgloss.Style

	// DataFrame
	Bullet lipgloss.Style // "+" marker when a line has no color directive

	// Misc
	Muted lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		ChoiceLabel: lipgloss.NewStyle().Bold(true),
		ChoiceDesc:  lipgloss.NewStyle(),

		EntryTitle: lipgloss.NewStyle().Bold(true),
		EntryBody:  lipgloss.NewStyle(),

		Bullet: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray (subtle)

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
