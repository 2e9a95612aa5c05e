package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id> <column-id> <index>",
		Short: "Move a task to a position within a column",
		Long: `Move a task into a column at a zero-based index among that
column's tasks. An index past the last task appends.

Examples:
  # Move a task to the top of another column
  unitime task move 9c1e 3f2a 0
`,
		Args: cobra.ExactArgs(3),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, cleanup, err := cli.Setup(cmd)
	defer cleanup()
	if err != nil {
		return err
	}
	store := cliInstance.App.Board

	index, err := cli.ParseIndex("index", args[2])
	if err != nil {
		return formatter.FailUsage(err)
	}
	task, err := cli.ResolveTask(store, args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	column, err := cli.ResolveColumn(store, args[1])
	if err != nil {
		return formatter.Fail(err)
	}

	if err := store.ReorderTask(task.ID, column.ID, index); err != nil {
		return formatter.Fail(err)
	}

	moved, _ := store.Task(task.ID)
	result := cli.NewTaskResult(store, moved)
	result.Message = fmt.Sprintf("Task moved to '%s' at index %d", column.Title, result.Index)
	return formatter.Success(result)
}
