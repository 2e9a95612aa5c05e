// Package tui is the interactive kanban board. Keyboard and mouse gestures
// are turned into drag controller events; all board changes go through the
// store.
package tui

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/config"
	"github.com/unitime/unitime/internal/drag"
	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/types"
)

// Mode is what the board is currently accepting input for
type Mode int

const (
	NormalMode Mode = iota
	RenameColumnMode
	EditTaskMode
	ConfirmDeleteMode
	PreviewMode
)

// noRow selects a column's header instead of one of its tasks
const noRow = -1

// Model is the bubbletea model for the board
type Model struct {
	store  *board.Store
	drag   *drag.Controller
	cfg    *config.Config
	keys   keyMap
	styles styles
	help   help.Model
	input  textinput.Model

	width  int
	height int
	mode   Mode

	// selection; row is an index into the selected column's tasks
	col    int
	row    int
	offset int

	// column a dragged column would land on
	dropCol int
	// gesture came from the mouse and ends on button release
	mouseDrag bool

	// target of the open prompt
	editing types.TaskID
	status  string
	failed  bool

	// picks up changes other processes saved
	refresh      RefreshFunc
	refreshEvery time.Duration
}

// RefreshFunc reloads outside changes into the store and reports whether
// the board changed
type RefreshFunc func() (bool, error)

// refreshMsg asks the model to pick up outside changes
type refreshMsg struct{}

// New creates a board model over store, driving drags through ctl
func New(store *board.Store, ctl *drag.Controller, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if ctl == nil {
		ctl = drag.NewController(store, nil)
	}

	input := textinput.New()
	input.CharLimit = 500
	input.SetWidth(columnWidth * 2)

	m := Model{
		store:  store,
		drag:   ctl,
		cfg:    cfg,
		keys:   newKeyMap(cfg.KeyMappings),
		styles: newStyles(cfg.ColorScheme),
		help:   help.New(),
		input:  input,
	}
	m.clampSelection()
	return m
}

// WithRefresh makes the board call fn every interval so that changes saved
// by CLI commands show up while it is open
func (m Model) WithRefresh(fn RefreshFunc, every time.Duration) Model {
	m.refresh = fn
	m.refreshEvery = every
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.scheduleRefresh()
}

func (m Model) scheduleRefresh() tea.Cmd {
	if m.refresh == nil || m.refreshEvery <= 0 {
		return nil
	}
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

// Mode returns the current input mode
func (m Model) Mode() Mode {
	return m.mode
}

// Selected returns the selected column and task. The task is zero when the
// column header is selected.
func (m Model) Selected() (types.ColumnID, types.TaskID) {
	col, ok := m.selectedColumn()
	if !ok {
		return "", ""
	}
	task, _ := m.selectedTask()
	return col.ID, task.ID
}

// Status returns the last status line message
func (m Model) Status() string {
	return m.status
}

func (m Model) selectedColumn() (models.Column, bool) {
	cols := m.store.Columns()
	if m.col < 0 || m.col >= len(cols) {
		return models.Column{}, false
	}
	return cols[m.col], true
}

func (m Model) selectedTask() (models.Task, bool) {
	col, ok := m.selectedColumn()
	if !ok || m.row < 0 {
		return models.Task{}, false
	}
	tasks := m.store.TasksInColumn(col.ID)
	if m.row >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.row], true
}

// clampSelection keeps the selection inside the board after it changed
func (m *Model) clampSelection() {
	cols := m.store.Columns()
	if len(cols) == 0 {
		m.col, m.row, m.offset = 0, noRow, 0
		return
	}
	m.col = min(max(m.col, 0), len(cols)-1)

	n := len(m.store.TasksInColumn(cols[m.col].ID))
	switch {
	case n == 0:
		m.row = noRow
	case m.row >= n:
		m.row = n - 1
	case m.row < noRow:
		m.row = noRow
	}
	m.ensureVisible()
}

// selectTask moves the selection onto id wherever it currently is
func (m *Model) selectTask(id types.TaskID) {
	task, ok := m.store.Task(id)
	if !ok {
		m.clampSelection()
		return
	}
	m.col = m.store.ColumnIndex(task.ColumnID)
	m.row = 0
	for i, t := range m.store.TasksInColumn(task.ColumnID) {
		if t.ID == id {
			m.row = i
			break
		}
	}
	m.clampSelection()
}

// selectColumn moves the selection onto the header of id
func (m *Model) selectColumn(id types.ColumnID) {
	if i := m.store.ColumnIndex(id); i >= 0 {
		m.col = i
	}
	m.row = noRow
	m.clampSelection()
}

// visibleColumns is how many columns fit in the terminal
func (m Model) visibleColumns() int {
	n := len(m.store.Columns())
	if m.width <= 0 {
		return n
	}
	fit := (m.width + columnGap) / (columnWidth + columnGap)
	return max(1, min(fit, n))
}

func (m *Model) ensureVisible() {
	visible := m.visibleColumns()
	focus := m.col
	if m.drag.State() == drag.Dragging && !m.mouseDrag {
		if s, _ := m.drag.Active(); s.Kind == drag.KindColumn {
			focus = m.dropCol
		}
	}
	if focus < m.offset {
		m.offset = focus
	}
	if focus >= m.offset+visible {
		m.offset = focus - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.store.Columns())-visible))
}

func (m *Model) setStatus(msg string) {
	m.status, m.failed = msg, false
}

func (m *Model) setError(err error) {
	slog.Debug("board action failed", "error", err)
	m.status, m.failed = err.Error(), true
}
