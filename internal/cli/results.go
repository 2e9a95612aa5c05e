package cli

import (
	"fmt"
	"strings"

	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/cli/styles"
	"github.com/unitime/unitime/internal/models"
)

// ColumnResult is a column as reported by the CLI
type ColumnResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	Tasks    int    `json:"tasks"`

	// set by commands that change something
	Message string `json:"-"`
}

// GetID returns the column id for quiet mode
func (c ColumnResult) GetID() string { return c.ID }

func (c ColumnResult) Human() string {
	if c.Message != "" {
		return styles.SuccessStyle.Render("✓ "+c.Message) + " " + styles.IDStyle.Render("("+c.ID+")")
	}
	return fmt.Sprintf("%s %s", styles.TitleStyle.Render(c.Title), styles.IDStyle.Render("("+c.ID+")"))
}

// NewColumnResult describes col as it stands in store
func NewColumnResult(store *board.Store, col models.Column) ColumnResult {
	return ColumnResult{
		ID:       col.ID.String(),
		Title:    col.Title,
		Position: store.ColumnIndex(col.ID),
		Tasks:    len(store.TasksInColumn(col.ID)),
	}
}

// ColumnList is the board's columns in order
type ColumnList []ColumnResult

// GetIDs returns the column ids for quiet mode
func (l ColumnList) GetIDs() []string {
	ids := make([]string, len(l))
	for i, c := range l {
		ids[i] = c.ID
	}
	return ids
}

func (l ColumnList) Human() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No columns on the board")
	}
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Columns:"))
	for _, c := range l {
		fmt.Fprintf(&b, "\n  %d. %s %s %s", c.Position+1, styles.ValueStyle.Render(c.Title),
			styles.SubtitleStyle.Render(fmt.Sprintf("[%d tasks]", c.Tasks)), styles.IDStyle.Render("("+c.ID+")"))
	}
	return b.String()
}

// TaskResult is a task as reported by the CLI
type TaskResult struct {
	ID       string `json:"id"`
	ColumnID string `json:"columnId"`
	Content  string `json:"content"`
	// Index is the position within the task's column
	Index int `json:"index"`

	Message string `json:"-"`
}

// GetID returns the task id for quiet mode
func (t TaskResult) GetID() string { return t.ID }

func (t TaskResult) Human() string {
	if t.Message != "" {
		return styles.SuccessStyle.Render("✓ "+t.Message) + " " + styles.IDStyle.Render("("+t.ID+")")
	}
	return fmt.Sprintf("%s %s", styles.ValueStyle.Render(t.Content), styles.IDStyle.Render("("+t.ID+")"))
}

// NewTaskResult describes task as it stands in store
func NewTaskResult(store *board.Store, task models.Task) TaskResult {
	index := -1
	for i, sibling := range store.TasksInColumn(task.ColumnID) {
		if sibling.ID == task.ID {
			index = i
			break
		}
	}
	return TaskResult{
		ID:       task.ID.String(),
		ColumnID: task.ColumnID.String(),
		Content:  task.Content,
		Index:    index,
	}
}

// TaskGroup is one column with its tasks
type TaskGroup struct {
	Column ColumnResult `json:"column"`
	Tasks  []TaskResult `json:"tasks"`
}

// TaskList groups tasks by column, in board order
type TaskList []TaskGroup

// GetIDs returns the task ids for quiet mode
func (l TaskList) GetIDs() []string {
	var ids []string
	for _, g := range l {
		for _, t := range g.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (l TaskList) Human() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No columns on the board")
	}
	var b strings.Builder
	for i, g := range l {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.TitleStyle.Render(g.Column.Title))
		if len(g.Tasks) == 0 {
			b.WriteString("\n  " + styles.SubtitleStyle.Render("(empty)"))
		}
		for _, t := range g.Tasks {
			fmt.Fprintf(&b, "\n  - %s", t.Human())
		}
	}
	return b.String()
}

// NewTaskList lists the tasks of the given columns, or of every column when
// none is given
func NewTaskList(store *board.Store, columns ...models.Column) TaskList {
	if len(columns) == 0 {
		columns = store.Columns()
	}
	list := make(TaskList, 0, len(columns))
	for _, col := range columns {
		group := TaskGroup{Column: NewColumnResult(store, col), Tasks: []TaskResult{}}
		for i, task := range store.TasksInColumn(col.ID) {
			group.Tasks = append(group.Tasks, TaskResult{
				ID:       task.ID.String(),
				ColumnID: task.ColumnID.String(),
				Content:  task.Content,
				Index:    i,
			})
		}
		list = append(list, group)
	}
	return list
}
