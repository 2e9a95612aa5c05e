// Package drag turns drag gestures (start, over, end, cancel) into board
// mutations. A gesture drags exactly one column or one task.
package drag

import (
	"log/slog"

	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/types"
)

// State of the controller
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Kind tags what a Subject or Target refers to
type Kind int

const (
	KindColumn Kind = iota + 1
	KindTask
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindTask:
		return "task"
	}
	return "none"
}

// Subject is the entity being dragged. It is fixed for the whole gesture.
type Subject struct {
	Kind     Kind
	ColumnID types.ColumnID
	TaskID   types.TaskID
}

// ColumnSubject drags a column
func ColumnSubject(id types.ColumnID) Subject {
	return Subject{Kind: KindColumn, ColumnID: id}
}

// TaskSubject drags a task
func TaskSubject(id types.TaskID) Subject {
	return Subject{Kind: KindTask, TaskID: id}
}

// Target is the entity under the pointer. A nil *Target means the pointer
// is outside every drop zone.
type Target struct {
	Kind     Kind
	ColumnID types.ColumnID
	TaskID   types.TaskID
}

// OverColumn targets a column
func OverColumn(id types.ColumnID) *Target {
	return &Target{Kind: KindColumn, ColumnID: id}
}

// OverTask targets a task
func OverTask(id types.TaskID) *Target {
	return &Target{Kind: KindTask, TaskID: id}
}

// Controller runs one drag gesture at a time against a store
type Controller struct {
	store  *board.Store
	logger *slog.Logger

	state  State
	active Subject

	// board as it was at drag start, for rollback
	origin models.Board
	// set once a drag-over changed the board
	touched bool
	// last target handed to Over
	lastOver *Target
}

// NewController creates an idle controller for store
func NewController(store *board.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{store: store, logger: logger}
}

// State reports whether a gesture is in progress
func (c *Controller) State() State {
	return c.state
}

// Active returns the dragged subject while a gesture is in progress
func (c *Controller) Active() (Subject, bool) {
	if c.state != Dragging {
		return Subject{}, false
	}
	return c.active, true
}

// Start begins a gesture on subject
func (c *Controller) Start(subject Subject) error {
	if c.state == Dragging {
		return ErrAlreadyDragging
	}
	if !c.exists(subject) {
		return ErrUnknownSubject
	}

	c.state = Dragging
	c.active = subject
	c.origin = c.store.Snapshot()
	c.touched = false
	c.lastOver = nil
	c.logger.Debug("drag start", "kind", subject.Kind, "column", subject.ColumnID, "task", subject.TaskID)
	return nil
}

// Over applies one drag-over event. Only task drags change the board while
// hovering; column moves are decided on drop.
func (c *Controller) Over(target *Target) {
	if c.state != Dragging || target == nil || c.active.Kind != KindTask {
		return
	}

	active := c.active.TaskID
	last := *target
	c.lastOver = &last
	switch target.Kind {
	case KindTask:
		if target.TaskID == active {
			return
		}
		over, ok := c.store.Task(target.TaskID)
		if !ok {
			return
		}
		c.apply(c.store.MoveTask(active, over.ColumnID, c.store.TaskIndex(over.ID)))
	case KindColumn:
		c.apply(c.store.ReparentTask(active, target.ColumnID))
	}
}

// End finishes the gesture on target. A task dropped on a target other than
// the last drag-over is applied there first, so the drop position always
// wins. The active subject is cleared no matter what happens.
func (c *Controller) End(target *Target) {
	if c.state != Dragging {
		return
	}
	subject := c.active
	defer c.reset()

	if target == nil {
		// dropped outside every drop zone
		c.rollback()
		return
	}

	if subject.Kind != KindColumn {
		if c.lastOver == nil || *c.lastOver != *target {
			c.Over(target)
		}
		c.logger.Debug("drag end", "task", subject.TaskID, "changed", c.touched)
		return
	}

	dest := target.ColumnID
	if target.Kind == KindTask {
		task, ok := c.store.Task(target.TaskID)
		if !ok {
			return
		}
		dest = task.ColumnID
	}
	if dest == subject.ColumnID {
		return
	}

	from, to := c.store.ColumnIndex(subject.ColumnID), c.store.ColumnIndex(dest)
	if from < 0 || to < 0 {
		return
	}
	if err := c.store.ReorderColumns(from, to); err != nil {
		c.logger.Debug("column drop ignored", "error", err)
	}
}

// Cancel aborts the gesture and leaves the board as it was at drag start
func (c *Controller) Cancel() {
	if c.state != Dragging {
		return
	}
	c.rollback()
	c.reset()
}

func (c *Controller) apply(err error) {
	if err != nil {
		c.logger.Debug("drag over ignored", "error", err)
		return
	}
	c.touched = true
}

func (c *Controller) rollback() {
	if c.touched {
		c.store.Restore(c.origin)
	}
}

func (c *Controller) reset() {
	c.state = Idle
	c.active = Subject{}
	c.origin = models.Board{}
	c.touched = false
	c.lastOver = nil
}

func (c *Controller) exists(s Subject) bool {
	switch s.Kind {
	case KindColumn:
		_, ok := c.store.Column(s.ColumnID)
		return ok
	case KindTask:
		_, ok := c.store.Task(s.TaskID)
		return ok
	}
	return false
}
