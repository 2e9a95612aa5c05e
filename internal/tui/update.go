package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/unitime/unitime/internal/drag"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.clampSelection()
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case RenameColumnMode, EditTaskMode:
			return m.updateInput(msg)
		case ConfirmDeleteMode:
			return m.updateConfirm(msg)
		case PreviewMode:
			m.mode = NormalMode
			return m, nil
		}
		if m.drag.State() == drag.Dragging {
			return m.updateDragKeys(msg)
		}
		return m.updateNormal(msg)

	case refreshMsg:
		return m.handleRefresh()

	case tea.MouseClickMsg:
		return m.handleMousePress(tea.Mouse(msg))
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(tea.Mouse(msg))
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(tea.Mouse(msg))
	}

	if m.mode == RenameColumnMode || m.mode == EditTaskMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleRefresh waits for the next tick while a gesture or prompt is open,
// since either may hold ids the outside change removed
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	if m.refresh == nil {
		return m, nil
	}
	if m.mode != NormalMode || m.drag.State() == drag.Dragging {
		return m, m.scheduleRefresh()
	}

	col, task := m.Selected()
	changed, err := m.refresh()
	if err != nil {
		slog.Warn("failed to refresh board", "error", err)
	}
	if changed {
		switch {
		case task != "":
			m.selectTask(task)
		case col != "":
			m.selectColumn(col)
		default:
			m.clampSelection()
		}
	}
	return m, m.scheduleRefresh()
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	km := m.cfg.KeyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.help.ShowAll = !m.help.ShowAll
	case km.PrevColumn, "left":
		m.col--
		m.clampSelection()
	case km.NextColumn, "right":
		m.col++
		m.clampSelection()
	case km.PrevTask, "up":
		if m.row > noRow {
			m.row--
		}
		m.clampSelection()
	case km.NextTask, "down":
		m.row++
		m.clampSelection()
	case km.AddTask:
		return m.handleAddTask()
	case km.EditTask:
		return m.handleEditTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.CreateColumn:
		return m.handleCreateColumn()
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		if _, ok := m.selectedColumn(); ok {
			m.mode = ConfirmDeleteMode
		}
	case km.Grab:
		return m.handleGrab()
	case km.Preview:
		if _, ok := m.selectedTask(); ok {
			m.mode = PreviewMode
		}
	}
	return m, nil
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	col, ok := m.selectedColumn()
	if !ok {
		m.setError(errors.New("create a column first"))
		return m, nil
	}
	task, err := m.store.CreateTask(col.ID)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.selectTask(task.ID)
	return m.openInput(EditTaskMode, "")
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	return m.openInput(EditTaskMode, task.Content)
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if err := m.store.DeleteTask(task.ID); err != nil {
		m.setError(err)
		return m, nil
	}
	m.clampSelection()
	m.setStatus("Task deleted")
	return m, nil
}

func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	col := m.store.CreateColumn()
	m.selectColumn(col.ID)
	m.setStatus(fmt.Sprintf("Created %q", col.Title))
	return m, nil
}

func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	col, ok := m.selectedColumn()
	if !ok {
		return m, nil
	}
	return m.openInput(RenameColumnMode, col.Title)
}

func (m Model) openInput(mode Mode, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.editing = ""
	if mode == EditTaskMode {
		task, _ := m.selectedTask()
		m.editing = task.ID
		m.input.Prompt = "Task: "
		m.input.Placeholder = "what needs doing?"
	} else {
		m.input.Prompt = "Column: "
		m.input.Placeholder = "column title"
	}
	m.input.SetValue(value)
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		var err error
		if m.mode == EditTaskMode {
			err = m.store.UpdateTaskContent(m.editing, value)
		} else if col, ok := m.selectedColumn(); ok {
			err = m.store.RenameColumn(col.ID, value)
		}
		m.closeInput()
		if err != nil {
			m.setError(err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = NormalMode
	m.editing = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) updateConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = NormalMode
		col, ok := m.selectedColumn()
		if !ok {
			return m, nil
		}
		removed, err := m.store.DeleteColumn(col.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.row = noRow
		m.clampSelection()
		m.setStatus(fmt.Sprintf("Deleted %q and %d task(s)", col.Title, removed))
	case "n", "N", "esc":
		m.mode = NormalMode
	}
	return m, nil
}
