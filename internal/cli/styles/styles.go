// Package styles holds the lipgloss styles for human-readable CLI output.
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/unitime/unitime/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	IDStyle       lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	IDStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle)).
		Faint(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))
}
