package drag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/types"
)

// fixedPersister serves one board and counts saves
type fixedPersister struct {
	board models.Board
	saves int
}

func (p *fixedPersister) Load(ctx context.Context) (models.Board, error) { return p.board, nil }

func (p *fixedPersister) Save(ctx context.Context, b models.Board) error {
	p.saves++
	return nil
}

func setup(t *testing.T, b models.Board) (*Controller, *board.Store, *fixedPersister) {
	t.Helper()
	p := &fixedPersister{board: b}
	store := board.Load(context.Background(), p)
	return NewController(store, nil), store, p
}

// twoColumns: A holds t1, t3; B holds t2
func twoColumns() models.Board {
	return models.Board{
		Columns: []models.Column{{ID: "A", Title: "A"}, {ID: "B", Title: "B"}, {ID: "C", Title: "C"}},
		Tasks: []models.Task{
			{ID: "t1", ColumnID: "A", Content: "x"},
			{ID: "t2", ColumnID: "B", Content: "y"},
			{ID: "t3", ColumnID: "A", Content: "z"},
		},
	}
}

func ids(tasks []models.Task) []types.TaskID {
	out := make([]types.TaskID, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func columnOrder(cols []models.Column) []types.ColumnID {
	out := make([]types.ColumnID, len(cols))
	for i, c := range cols {
		out[i] = c.ID
	}
	return out
}

func TestStart_TracksSubject(t *testing.T) {
	c, _, _ := setup(t, twoColumns())

	require.NoError(t, c.Start(TaskSubject("t1")))

	assert.Equal(t, Dragging, c.State())
	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, KindTask, active.Kind)
	assert.Equal(t, types.TaskID("t1"), active.TaskID)

	assert.ErrorIs(t, c.Start(TaskSubject("t2")), ErrAlreadyDragging)
}

func TestStart_UnknownSubject(t *testing.T) {
	c, _, _ := setup(t, twoColumns())

	assert.ErrorIs(t, c.Start(TaskSubject("ghost")), ErrUnknownSubject)
	assert.ErrorIs(t, c.Start(ColumnSubject("ghost")), ErrUnknownSubject)
	assert.ErrorIs(t, c.Start(Subject{}), ErrUnknownSubject)
	assert.Equal(t, Idle, c.State())
}

// Scenario: dragging t1 (column A) over t2 (column B) updates t1 to column
// B and places it next to t2.
func TestOverTask_AdoptsColumnAndPosition(t *testing.T) {
	c, store, _ := setup(t, twoColumns())

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.Over(OverTask("t2"))

	t1, _ := store.Task("t1")
	assert.Equal(t, types.ColumnID("B"), t1.ColumnID)
	assert.Equal(t, []types.TaskID{"t2", "t1", "t3"}, ids(store.Tasks()))
	assert.Equal(t, []types.TaskID{"t2", "t1"}, ids(store.TasksInColumn("B")))
}

func TestOverColumn_ReparentsWithoutReordering(t *testing.T) {
	c, store, _ := setup(t, twoColumns())

	require.NoError(t, c.Start(TaskSubject("t3")))
	c.Over(OverColumn("C"))

	t3, _ := store.Task("t3")
	assert.Equal(t, types.ColumnID("C"), t3.ColumnID)
	assert.Equal(t, []types.TaskID{"t1", "t2", "t3"}, ids(store.Tasks()))
}

func TestOverThenDrop_KeepsLastOverPosition(t *testing.T) {
	c, store, p := setup(t, twoColumns())

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.Over(OverColumn("C"))
	c.Over(OverColumn("B"))
	c.Over(OverTask("t2"))
	afterOver := store.Snapshot()
	c.End(OverTask("t2"))

	assert.Equal(t, Idle, c.State())
	assert.Equal(t, afterOver, store.Snapshot())
	t1, _ := store.Task("t1")
	assert.Equal(t, types.ColumnID("B"), t1.ColumnID)
	assert.Positive(t, p.saves)
}

func TestOverSequence_MatchesStepwiseApplication(t *testing.T) {
	b := models.Board{
		Columns: []models.Column{{ID: "A"}},
		Tasks: []models.Task{
			{ID: "t1", ColumnID: "A"},
			{ID: "t2", ColumnID: "A"},
			{ID: "t3", ColumnID: "A"},
			{ID: "t4", ColumnID: "A"},
		},
	}
	c, store, _ := setup(t, b)

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.Over(OverTask("t2"))
	assert.Equal(t, []types.TaskID{"t2", "t1", "t3", "t4"}, ids(store.Tasks()))
	c.Over(OverTask("t3"))
	assert.Equal(t, []types.TaskID{"t2", "t3", "t1", "t4"}, ids(store.Tasks()))
	c.Over(OverTask("t4"))
	assert.Equal(t, []types.TaskID{"t2", "t3", "t4", "t1"}, ids(store.Tasks()))
	c.Over(OverTask("t2"))
	assert.Equal(t, []types.TaskID{"t1", "t2", "t3", "t4"}, ids(store.Tasks()))
	c.End(OverTask("t2"))
}

func TestOver_SelfAndNilAreNoops(t *testing.T) {
	c, store, p := setup(t, twoColumns())
	before := store.Snapshot()

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.Over(OverTask("t1"))
	c.Over(nil)
	c.Over(OverTask("ghost"))
	c.End(OverTask("t1"))

	assert.Equal(t, before, store.Snapshot())
	assert.Zero(t, p.saves)
}

func TestOver_IgnoredWhileIdle(t *testing.T) {
	c, store, _ := setup(t, twoColumns())
	before := store.Snapshot()

	c.Over(OverTask("t2"))
	c.End(OverTask("t2"))

	assert.Equal(t, before, store.Snapshot())
}

func TestColumnDrag_OverDoesNothingDropReorders(t *testing.T) {
	c, store, _ := setup(t, twoColumns())

	require.NoError(t, c.Start(ColumnSubject("A")))
	c.Over(OverColumn("C"))
	assert.Equal(t, []types.ColumnID{"A", "B", "C"}, columnOrder(store.Columns()))

	c.End(OverColumn("C"))
	assert.Equal(t, []types.ColumnID{"B", "C", "A"}, columnOrder(store.Columns()))
	_, ok := c.Active()
	assert.False(t, ok)
}

func TestColumnDrag_DropOnTaskUsesItsColumn(t *testing.T) {
	c, store, _ := setup(t, twoColumns())

	require.NoError(t, c.Start(ColumnSubject("C")))
	c.End(OverTask("t2"))

	assert.Equal(t, []types.ColumnID{"A", "C", "B"}, columnOrder(store.Columns()))
}

func TestColumnDrag_OntoItselfOrNowhere(t *testing.T) {
	c, store, p := setup(t, twoColumns())

	require.NoError(t, c.Start(ColumnSubject("B")))
	c.End(OverColumn("B"))
	require.NoError(t, c.Start(ColumnSubject("B")))
	c.End(nil)

	assert.Equal(t, []types.ColumnID{"A", "B", "C"}, columnOrder(store.Columns()))
	assert.Zero(t, p.saves)
	assert.Equal(t, Idle, c.State())
}

func TestCancel_RollsBackDragOver(t *testing.T) {
	c, store, _ := setup(t, twoColumns())
	before := store.Snapshot()

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.Over(OverTask("t2"))
	c.Over(OverColumn("C"))
	c.Cancel()

	assert.Equal(t, before, store.Snapshot())
	assert.Equal(t, Idle, c.State())
}

func TestDropOutside_RollsBackTaskDrag(t *testing.T) {
	c, store, _ := setup(t, twoColumns())
	before := store.Snapshot()

	require.NoError(t, c.Start(TaskSubject("t3")))
	c.Over(OverTask("t2"))
	c.End(nil)

	assert.Equal(t, before, store.Snapshot())
	_, ok := c.Active()
	assert.False(t, ok)
}

func TestCancelWithoutChanges_DoesNotPersist(t *testing.T) {
	c, _, p := setup(t, twoColumns())

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.Cancel()

	assert.Zero(t, p.saves)
}

func TestEnd_DropTargetWinsOverLastOver(t *testing.T) {
	c, store, _ := setup(t, twoColumns())

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.Over(OverColumn("B"))
	c.End(OverColumn("C"))

	t1, _ := store.Task("t1")
	assert.Equal(t, types.ColumnID("C"), t1.ColumnID)
	assert.Equal(t, Idle, c.State())
}

func TestEnd_DropWithoutOverAppliesTarget(t *testing.T) {
	c, store, p := setup(t, twoColumns())

	require.NoError(t, c.Start(TaskSubject("t1")))
	c.End(OverTask("t2"))

	t1, _ := store.Task("t1")
	assert.Equal(t, types.ColumnID("B"), t1.ColumnID)
	assert.Equal(t, []types.TaskID{"t2", "t1"}, ids(store.TasksInColumn("B")))
	assert.Positive(t, p.saves)
}
