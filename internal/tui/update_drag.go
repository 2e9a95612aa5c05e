package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/unitime/unitime/internal/drag"
	"github.com/unitime/unitime/internal/types"
)

// handleGrab picks up the selected task, or the selected column when its
// header is selected
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	if task, ok := m.selectedTask(); ok {
		m.start(drag.TaskSubject(task.ID), false)
		return m, nil
	}
	if col, ok := m.selectedColumn(); ok {
		m.start(drag.ColumnSubject(col.ID), false)
	}
	return m, nil
}

func (m *Model) start(subject drag.Subject, mouse bool) {
	if err := m.drag.Start(subject); err != nil {
		m.setError(err)
		return
	}
	m.mouseDrag = mouse
	m.dropCol = m.col
	m.status = ""
}

// updateDragKeys moves the dragged item one step per key press
func (m Model) updateDragKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.mouseDrag {
		// a mouse gesture owns the drag until release, except for cancel
		if msg.String() == m.cfg.KeyMappings.Cancel {
			m.cancelDrag()
		}
		return m, nil
	}

	active, _ := m.drag.Active()
	km := m.cfg.KeyMappings

	switch msg.String() {
	case km.Cancel:
		m.cancelDrag()
		return m, nil
	case km.Drop, km.Grab:
		m.endKeyboardDrag(active)
		return m, nil
	case "ctrl+c":
		m.cancelDrag()
		return m, tea.Quit
	}

	if active.Kind == drag.KindColumn {
		switch msg.String() {
		case km.PrevColumn, "left":
			m.dropCol = max(m.dropCol-1, 0)
		case km.NextColumn, "right":
			m.dropCol = min(m.dropCol+1, len(m.store.Columns())-1)
		}
		m.ensureVisible()
		return m, nil
	}

	switch msg.String() {
	case km.PrevTask, "up":
		m.drag.Over(m.neighbor(active.TaskID, -1))
	case km.NextTask, "down":
		m.drag.Over(m.neighbor(active.TaskID, 1))
	case km.PrevColumn, "left":
		m.drag.Over(m.adjacent(active.TaskID, -1))
	case km.NextColumn, "right":
		m.drag.Over(m.adjacent(active.TaskID, 1))
	}
	m.selectTask(active.TaskID)
	return m, nil
}

// neighbor targets the task step positions away from id in its column
func (m Model) neighbor(id types.TaskID, step int) *drag.Target {
	task, ok := m.store.Task(id)
	if !ok {
		return nil
	}
	tasks := m.store.TasksInColumn(task.ColumnID)
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		if j := i + step; j >= 0 && j < len(tasks) {
			return drag.OverTask(tasks[j].ID)
		}
		return nil
	}
	return nil
}

// adjacent targets the column step positions away from id's column, aiming
// at the task on the same row when there is one
func (m Model) adjacent(id types.TaskID, step int) *drag.Target {
	task, ok := m.store.Task(id)
	if !ok {
		return nil
	}
	cols := m.store.Columns()
	j := m.store.ColumnIndex(task.ColumnID) + step
	if j < 0 || j >= len(cols) {
		return nil
	}
	tasks := m.store.TasksInColumn(cols[j].ID)
	if len(tasks) == 0 {
		return drag.OverColumn(cols[j].ID)
	}
	return drag.OverTask(tasks[min(max(m.row, 0), len(tasks)-1)].ID)
}

func (m *Model) endKeyboardDrag(active drag.Subject) {
	if active.Kind == drag.KindColumn {
		cols := m.store.Columns()
		if m.dropCol < 0 || m.dropCol >= len(cols) {
			m.drag.End(nil)
			m.clampSelection()
			return
		}
		m.drag.End(drag.OverColumn(cols[m.dropCol].ID))
		m.selectColumn(active.ColumnID)
		return
	}

	// dropping on itself keeps the position of the last step
	m.drag.End(drag.OverTask(active.TaskID))
	m.selectTask(active.TaskID)
}

func (m *Model) cancelDrag() {
	active, _ := m.drag.Active()
	m.drag.Cancel()
	m.mouseDrag = false
	m.reselect(active)
	m.setStatus("Drag cancelled")
}

func (m *Model) reselect(s drag.Subject) {
	switch s.Kind {
	case drag.KindTask:
		m.selectTask(s.TaskID)
	case drag.KindColumn:
		m.selectColumn(s.ColumnID)
	default:
		m.clampSelection()
	}
}

func (m Model) handleMousePress(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft || m.mode != NormalMode || m.drag.State() == drag.Dragging {
		return m, nil
	}
	h, ok := m.layout().at(mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}

	switch {
	case h.task != "":
		m.selectTask(h.task)
		m.start(drag.TaskSubject(h.task), true)
	case h.header:
		m.selectColumn(h.column.id)
		m.start(drag.ColumnSubject(h.column.id), true)
	default:
		m.selectColumn(h.column.id)
	}
	return m, nil
}

func (m Model) handleMouseMotion(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if !m.mouseDrag || m.drag.State() != drag.Dragging {
		return m, nil
	}
	active, _ := m.drag.Active()
	l := m.layout()

	if active.Kind == drag.KindColumn {
		if h, ok := l.at(mouse.X, mouse.Y); ok {
			m.dropCol = h.column.index
		}
		return m, nil
	}

	m.drag.Over(l.target(mouse.X, mouse.Y))
	m.selectTask(active.TaskID)
	return m, nil
}

func (m Model) handleMouseRelease(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if !m.mouseDrag || m.drag.State() != drag.Dragging {
		return m, nil
	}
	active, _ := m.drag.Active()
	target := m.layout().target(mouse.X, mouse.Y)
	if target == nil {
		slog.Debug("dropped outside the board", "kind", active.Kind)
	}

	m.drag.End(target)
	m.mouseDrag = false
	m.reselect(active)
	return m, nil
}
