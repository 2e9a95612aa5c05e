package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/unitime/unitime/internal/drag"
	"github.com/unitime/unitime/internal/markdown"
)

// View renders the board with a title bar above and the prompt and key
// help below
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) render() string {
	if m.mode == PreviewMode {
		return m.renderPreview()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	l := m.layout()
	if len(l.columns) == 0 {
		b.WriteString(m.styles.subtle.Render(fmt.Sprintf("No columns yet. Press %s to create one.", m.cfg.KeyMappings.CreateColumn)))
	} else {
		b.WriteString(l.view)
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTitle() string {
	title := m.styles.title.Render("UniTime")
	cols := m.store.Columns()
	if len(cols) == 0 {
		return title
	}
	info := fmt.Sprintf("%d columns, %d tasks", len(cols), len(m.store.Tasks()))
	if visible := m.visibleColumns(); visible < len(cols) {
		info += fmt.Sprintf(" (showing %d-%d)", m.offset+1, m.offset+visible)
	}
	return title + "  " + m.styles.subtle.Render(info)
}

func (m Model) renderFooter() string {
	var lines []string

	switch m.mode {
	case RenameColumnMode:
		lines = append(lines, m.styles.editPrompt.Render(m.input.View()))
	case EditTaskMode:
		lines = append(lines, m.styles.createPrompt.Render(m.input.View()))
	case ConfirmDeleteMode:
		col, _ := m.selectedColumn()
		n := len(m.store.TasksInColumn(col.ID))
		lines = append(lines, m.styles.deletePrompt.Render(
			fmt.Sprintf("Delete %q and its %s? (y/n)", col.Title, countLabel(n))))
	}

	if active, ok := m.drag.Active(); ok {
		lines = append(lines, m.styles.info.Render(m.dragStatus(active)))
	} else if m.status != "" {
		style := m.styles.info
		if m.failed {
			style = m.styles.errorMsg
		}
		lines = append(lines, style.Render(m.status))
	}

	if m.drag.State() == drag.Dragging {
		lines = append(lines, m.help.View(dragKeys(m.keys)))
	} else {
		lines = append(lines, m.help.View(m.keys))
	}
	return strings.Join(lines, "\n")
}

func (m Model) dragStatus(active drag.Subject) string {
	if active.Kind == drag.KindColumn {
		col, _ := m.store.Column(active.ColumnID)
		return fmt.Sprintf("Moving column %q", col.Title)
	}
	task, _ := m.store.Task(active.TaskID)
	col, _ := m.store.Column(task.ColumnID)
	return fmt.Sprintf("Moving task into %q", col.Title)
}

func (m Model) renderPreview() string {
	task, _ := m.selectedTask()
	width := m.width - 4
	if width <= 0 {
		width = 76
	}
	body := markdown.Render(task.Content, width, markdown.DefaultStyle)
	box := m.styles.preview.Render(strings.TrimRight(body, "\n"))
	hint := m.styles.subtle.Render("press any key to close")
	if m.width == 0 || m.height == 0 {
		return box + "\n" + hint
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box+"\n"+hint)
}
