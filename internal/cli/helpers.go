package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/storage"
	"github.com/unitime/unitime/internal/types"
)

// ErrAmbiguousID is returned when an id prefix matches more than one record
var ErrAmbiguousID = errors.New("id prefix matches more than one record")

// Classify maps an error to its machine-readable code, exit code and an
// optional suggestion for the user
func Classify(err error) (code string, exit int, suggestion string) {
	switch {
	case errors.Is(err, board.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound, "run 'unitime column list' to see column ids"
	case errors.Is(err, board.ErrTaskNotFound):
		return "TASK_NOT_FOUND", ExitNotFound, "run 'unitime task list' to see task ids"
	case errors.Is(err, board.ErrIndexOutOfRange):
		return "INDEX_OUT_OF_RANGE", ExitValidation, ""
	case errors.Is(err, ErrAmbiguousID):
		return "AMBIGUOUS_ID", ExitUsage, "type more characters of the id"
	case errors.Is(err, storage.ErrUnknownBackend):
		return "UNKNOWN_BACKEND", ExitUsage, "use one of: sqlite, file, redis, memory"
	default:
		return "ERROR", ExitFailure, ""
	}
}

// ParseIndex parses a zero-based position argument
func ParseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", name, n)
	}
	return n, nil
}

// ResolveColumn finds a column by full id or unique id prefix
func ResolveColumn(store *board.Store, arg string) (models.Column, error) {
	if col, ok := store.Column(types.ColumnID(arg)); ok {
		return col, nil
	}
	match, err := matchPrefix(store.Columns(), arg, func(c models.Column) string { return c.ID.String() })
	if errors.Is(err, ErrAmbiguousID) {
		return models.Column{}, fmt.Errorf("column %q: %w", arg, err)
	}
	if err != nil {
		return models.Column{}, fmt.Errorf("column %q: %w", arg, board.ErrColumnNotFound)
	}
	return match, nil
}

// ResolveTask finds a task by full id or unique id prefix
func ResolveTask(store *board.Store, arg string) (models.Task, error) {
	if task, ok := store.Task(types.TaskID(arg)); ok {
		return task, nil
	}
	match, err := matchPrefix(store.Tasks(), arg, func(t models.Task) string { return t.ID.String() })
	if errors.Is(err, ErrAmbiguousID) {
		return models.Task{}, fmt.Errorf("task %q: %w", arg, err)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("task %q: %w", arg, board.ErrTaskNotFound)
	}
	return match, nil
}

var errNoMatch = errors.New("no match")

func matchPrefix[T any](items []T, prefix string, id func(T) string) (T, error) {
	var (
		found T
		count int
	)
	if prefix != "" {
		for _, item := range items {
			if strings.HasPrefix(id(item), prefix) {
				found = item
				count++
			}
		}
	}
	switch count {
	case 0:
		return found, errNoMatch
	case 1:
		return found, nil
	default:
		return found, ErrAmbiguousID
	}
}
