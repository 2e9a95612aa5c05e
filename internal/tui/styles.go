package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/unitime/unitime/internal/config/colors"
)

// Layout constants; widths include borders and padding
const (
	columnWidth = 32
	cardWidth   = columnWidth - 4
	columnGap   = 1
	// rows above the board: title bar and a blank line
	boardTop = 2
)

// styles for the kanban board, derived from a color scheme
type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	normal   lipgloss.Style
	info     lipgloss.Style
	errorMsg lipgloss.Style

	column         lipgloss.Style
	columnSelected lipgloss.Style
	columnDragged  lipgloss.Style
	columnDrop     lipgloss.Style
	columnTitle    lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardDragged  lipgloss.Style

	editPrompt   lipgloss.Style
	createPrompt lipgloss.Style
	deletePrompt lipgloss.Style
	preview      lipgloss.Style
}

func newStyles(c colors.ColorScheme) styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1).
		Width(columnWidth)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.TaskBorder)).
		Foreground(lipgloss.Color(c.Normal)).
		Padding(0, 1).
		Width(cardWidth)

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Accent)),
		subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal)),
		info:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.InfoFg)),
		errorMsg: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.ErrorFg)),

		column:         column,
		columnSelected: column.BorderForeground(lipgloss.Color(c.SelectedBorder)),
		columnDragged:  column.BorderForeground(lipgloss.Color(c.DragBorder)).BorderStyle(lipgloss.DoubleBorder()),
		columnDrop:     column.BorderForeground(lipgloss.Color(c.DropTarget)),
		columnTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),

		card:         card,
		cardSelected: card.BorderForeground(lipgloss.Color(c.SelectedBorder)),
		cardDragged:  card.BorderForeground(lipgloss.Color(c.DragBorder)).BorderStyle(lipgloss.DoubleBorder()),

		editPrompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Edit)),
		createPrompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Create)),
		deletePrompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Delete)),
		preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Accent)).
			Padding(0, 1),
	}
}
