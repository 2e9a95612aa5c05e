// Package board holds the board state store: the ordered columns, the
// ordered task sequence and every mutation on them.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/types"
)

// maxIDAttempts bounds id regeneration when a generator repeats itself
const maxIDAttempts = 64

// Persister receives the full board after every committed mutation and
// returns the saved board at startup.
type Persister interface {
	Load(ctx context.Context) (models.Board, error)
	Save(ctx context.Context, board models.Board) error
}

// Store is the single source of truth for columns and tasks.
//
// Tasks live in one global sequence; a column's tasks are the tasks of that
// sequence carrying its id, in sequence order. Positions are never stored on
// the records themselves, so reordering cannot invalidate an id.
type Store struct {
	mu      sync.RWMutex
	columns []models.Column
	tasks   []models.Task

	// every id this store has seen; ids are never handed out twice
	issued map[string]struct{}

	persister    Persister
	newColumnID  func() types.ColumnID
	newTaskID    func() types.TaskID
	defaultTitle string
	logger       *slog.Logger
	ctx          context.Context

	// committed board waiting to be saved once the lock is released
	unsaved   *models.Board
	unsavedOp string
}

// New creates an empty store that saves through p. A nil persister keeps
// the board in memory only.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		issued:       make(map[string]struct{}),
		persister:    p,
		newColumnID:  types.NewColumnID,
		newTaskID:    types.NewTaskID,
		defaultTitle: models.DefaultColumnTitle,
		logger:       slog.Default(),
		ctx:          context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// READS
// ============================================================================

// Snapshot returns a copy of the whole board
func (s *Store) Snapshot() models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Columns returns a copy of the ordered columns
func (s *Store) Columns() []models.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.columns)
}

// Tasks returns a copy of the global task sequence
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// TasksInColumn returns the tasks of a column in display order
func (s *Store) TasksInColumn(id types.ColumnID) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Task
	for _, t := range s.tasks {
		if t.ColumnID == id {
			out = append(out, t)
		}
	}
	return out
}

// Column looks up a column by id
func (s *Store) Column(id types.ColumnID) (models.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.columnIndexLocked(id)
	if i < 0 {
		return models.Column{}, false
	}
	return s.columns[i], true
}

// Task looks up a task by id
func (s *Store) Task(id types.TaskID) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.taskIndexLocked(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// ColumnIndex returns the position of a column, or -1
func (s *Store) ColumnIndex(id types.ColumnID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.columnIndexLocked(id)
}

// TaskIndex returns the position of a task in the global sequence, or -1
func (s *Store) TaskIndex(id types.TaskID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskIndexLocked(id)
}

// ============================================================================
// COLUMN MUTATIONS
// ============================================================================

// CreateColumn appends a column with a fresh id and the default title
func (s *Store) CreateColumn() models.Column {
	s.mu.Lock()
	defer s.unlock()

	col := models.Column{ID: s.freshColumnIDLocked(), Title: s.defaultTitle}
	s.columns = append(s.columns, col)
	s.commitLocked("create column")
	return col
}

// SeedColumns creates one column per title in a single commit, but only
// when the board has no columns yet. It returns the created columns.
func (s *Store) SeedColumns(titles ...string) []models.Column {
	s.mu.Lock()
	defer s.unlock()

	if len(s.columns) > 0 || len(titles) == 0 {
		return nil
	}
	created := make([]models.Column, 0, len(titles))
	for _, title := range titles {
		col := models.Column{ID: s.freshColumnIDLocked(), Title: title}
		s.columns = append(s.columns, col)
		created = append(created, col)
	}
	s.commitLocked("seed columns")
	return created
}

// RenameColumn replaces a column's title
func (s *Store) RenameColumn(id types.ColumnID, title string) error {
	s.mu.Lock()
	defer s.unlock()

	i := s.columnIndexLocked(id)
	if i < 0 {
		return ErrColumnNotFound
	}
	if s.columns[i].Title == title {
		return nil
	}
	s.columns[i].Title = title
	s.commitLocked("rename column")
	return nil
}

// DeleteColumn removes a column together with all of its tasks. Readers
// never observe the column gone while its tasks remain. It returns the
// number of tasks removed.
func (s *Store) DeleteColumn(id types.ColumnID) (int, error) {
	s.mu.Lock()
	defer s.unlock()

	i := s.columnIndexLocked(id)
	if i < 0 {
		return 0, ErrColumnNotFound
	}

	s.columns = slices.Delete(s.columns, i, i+1)
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool {
		return t.ColumnID == id
	})
	removed := before - len(s.tasks)

	s.commitLocked("delete column")
	return removed, nil
}

// ReorderColumns moves the column at from to position to
func (s *Store) ReorderColumns(from, to int) error {
	s.mu.Lock()
	defer s.unlock()

	n := len(s.columns)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d with %d columns", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}
	s.columns = move(s.columns, from, to)
	s.commitLocked("reorder columns")
	return nil
}

// ============================================================================
// TASK MUTATIONS
// ============================================================================

// CreateTask appends a task with placeholder content to a column. Unknown
// columns are rejected so that no task is ever orphaned.
func (s *Store) CreateTask(columnID types.ColumnID) (models.Task, error) {
	s.mu.Lock()
	defer s.unlock()

	if s.columnIndexLocked(columnID) < 0 {
		return models.Task{}, ErrColumnNotFound
	}

	task := models.Task{
		ID:       s.freshTaskIDLocked(),
		ColumnID: columnID,
		Content:  fmt.Sprintf(models.TaskContentFormat, len(s.tasks)+1),
	}
	s.tasks = append(s.tasks, task)
	s.commitLocked("create task")
	return task, nil
}

// UpdateTaskContent replaces a task's content
func (s *Store) UpdateTaskContent(id types.TaskID, content string) error {
	s.mu.Lock()
	defer s.unlock()

	i := s.taskIndexLocked(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	if s.tasks[i].Content == content {
		return nil
	}
	s.tasks[i].Content = content
	s.commitLocked("update task")
	return nil
}

// DeleteTask removes a task
func (s *Store) DeleteTask(id types.TaskID) error {
	s.mu.Lock()
	defer s.unlock()

	i := s.taskIndexLocked(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.commitLocked("delete task")
	return nil
}

// ReorderTask moves a task so that it becomes the targetIndex-th task of
// targetColumn, re-parenting it if needed. An index past the end of the
// column places the task after the column's last task.
func (s *Store) ReorderTask(id types.TaskID, targetColumn types.ColumnID, targetIndex int) error {
	s.mu.Lock()
	defer s.unlock()

	from := s.taskIndexLocked(id)
	if from < 0 {
		return ErrTaskNotFound
	}
	if s.columnIndexLocked(targetColumn) < 0 {
		return ErrColumnNotFound
	}
	if targetIndex < 0 {
		return fmt.Errorf("%w: task index %d", ErrIndexOutOfRange, targetIndex)
	}

	task := s.tasks[from]
	rest := slices.Delete(slices.Clone(s.tasks), from, from+1)

	var siblings []int
	for i, t := range rest {
		if t.ColumnID == targetColumn {
			siblings = append(siblings, i)
		}
	}

	var at int
	switch {
	case targetIndex < len(siblings):
		at = siblings[targetIndex]
	case len(siblings) > 0:
		at = siblings[len(siblings)-1] + 1
	default:
		at = len(rest)
	}

	task.ColumnID = targetColumn
	next := slices.Insert(rest, at, task)
	if slices.Equal(next, s.tasks) {
		return nil
	}
	s.tasks = next
	s.commitLocked("reorder task")
	return nil
}

// MoveTask moves a task to index of the global sequence (remove, then
// insert) and assigns it to columnID.
func (s *Store) MoveTask(id types.TaskID, columnID types.ColumnID, index int) error {
	s.mu.Lock()
	defer s.unlock()

	from := s.taskIndexLocked(id)
	if from < 0 {
		return ErrTaskNotFound
	}
	if s.columnIndexLocked(columnID) < 0 {
		return ErrColumnNotFound
	}
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: task index %d with %d tasks", ErrIndexOutOfRange, index, len(s.tasks))
	}
	if from == index && s.tasks[from].ColumnID == columnID {
		return nil
	}

	s.tasks[from].ColumnID = columnID
	s.tasks = move(s.tasks, from, index)
	s.commitLocked("move task")
	return nil
}

// ReparentTask assigns a task to another column without changing its
// position in the global sequence.
func (s *Store) ReparentTask(id types.TaskID, columnID types.ColumnID) error {
	s.mu.Lock()
	defer s.unlock()

	i := s.taskIndexLocked(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	if s.columnIndexLocked(columnID) < 0 {
		return ErrColumnNotFound
	}
	if s.tasks[i].ColumnID == columnID {
		return nil
	}
	s.tasks[i].ColumnID = columnID
	s.commitLocked("reparent task")
	return nil
}

// Restore replaces the board with an earlier snapshot. It is how an
// aborted drag is rolled back.
func (s *Store) Restore(b models.Board) {
	s.mu.Lock()
	defer s.unlock()

	b = b.Clone()
	s.columns = b.Columns
	s.tasks = b.Tasks
	s.markIssuedLocked()
	s.commitLocked("restore")
}

// Adopt takes in a board written by another process. saved is the last
// board this store handed to the persister and merged is what the backend
// holds now. Changes made here since saved are merged on top and saved
// again; otherwise merged is taken as is.
func (s *Store) Adopt(saved, merged models.Board) {
	s.mu.Lock()
	defer s.unlock()

	current := s.snapshotLocked()
	next, _ := Sanitize(merged)
	local := !current.Equal(saved)
	if local {
		next = Merge(saved, current, merged)
	}
	s.columns = next.Columns
	s.tasks = next.Tasks
	s.markIssuedLocked()
	if local {
		s.commitLocked("adopt")
	}
	s.logger.Info("adopted outside changes", "columns", len(next.Columns), "tasks", len(next.Tasks))
}

// ============================================================================
// INTERNALS
// ============================================================================

func (s *Store) snapshotLocked() models.Board {
	return models.Board{
		Columns: slices.Clone(s.columns),
		Tasks:   slices.Clone(s.tasks),
	}
}

// commitLocked marks the board for saving. The persister is called by
// unlock, outside the lock, so it may call back into the store.
func (s *Store) commitLocked(op string) {
	if s.persister == nil {
		return
	}
	b := s.snapshotLocked()
	s.unsaved, s.unsavedOp = &b, op
}

// unlock releases a write lock and saves the board it committed, if any.
// Save errors only cost durability, so they are logged and dropped.
func (s *Store) unlock() {
	b, op := s.unsaved, s.unsavedOp
	s.unsaved, s.unsavedOp = nil, ""
	s.mu.Unlock()

	if b == nil {
		return
	}
	if err := s.persister.Save(s.ctx, *b); err != nil {
		s.logger.Warn("failed to persist board",
			"op", op,
			"columns", len(b.Columns),
			"tasks", len(b.Tasks),
			"error", err)
	}
}

func (s *Store) columnIndexLocked(id types.ColumnID) int {
	return slices.IndexFunc(s.columns, func(c models.Column) bool { return c.ID == id })
}

func (s *Store) taskIndexLocked(id types.TaskID) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

func (s *Store) freshColumnIDLocked() types.ColumnID {
	id := s.newColumnID()
	for attempt := 1; s.isIssuedColumn(string(id)); attempt++ {
		if attempt >= maxIDAttempts {
			id = types.NewColumnID()
			continue
		}
		id = s.newColumnID()
	}
	s.issued["c:"+string(id)] = struct{}{}
	return id
}

func (s *Store) freshTaskIDLocked() types.TaskID {
	id := s.newTaskID()
	for attempt := 1; s.isIssuedTask(string(id)); attempt++ {
		if attempt >= maxIDAttempts {
			id = types.NewTaskID()
			continue
		}
		id = s.newTaskID()
	}
	s.issued["t:"+string(id)] = struct{}{}
	return id
}

func (s *Store) isIssuedColumn(id string) bool {
	_, ok := s.issued["c:"+id]
	return ok || id == ""
}

func (s *Store) isIssuedTask(id string) bool {
	_, ok := s.issued["t:"+id]
	return ok || id == ""
}

func (s *Store) markIssuedLocked() {
	for _, c := range s.columns {
		s.issued["c:"+string(c.ID)] = struct{}{}
	}
	for _, t := range s.tasks {
		s.issued["t:"+string(t.ID)] = struct{}{}
	}
}

// move relocates items[from] to index to, shifting the elements between
func move[T any](items []T, from, to int) []T {
	item := items[from]
	items = slices.Delete(items, from, from+1)
	return slices.Insert(items, to, item)
}
