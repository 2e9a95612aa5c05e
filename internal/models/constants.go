package models

// ============================================================================
// DEFAULTS
// ============================================================================

// DefaultColumnTitle is the title given to newly created columns
const DefaultColumnTitle = "New Column"

// TaskContentFormat formats placeholder content for new tasks; the verb
// receives the total task count after insertion.
const TaskContentFormat = "Task %d"

// DefaultSeedColumns are created on first start when the board is empty
var DefaultSeedColumns = []string{"To Do", "In Progress", "Done"}

// ============================================================================
// STORAGE KEYS
// ============================================================================

// Keys under which the board is persisted. They match the keys the web
// client used in browser local storage, so exported boards stay compatible.
const (
	ColumnsKey = "kanbanColumns"
	TasksKey   = "kanbanTasks"
)
