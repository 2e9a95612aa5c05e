package task

import (
	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <column-id>",
		Short: "Add a task to the bottom of a column",
		Long: `Add a task to a column. Without --content the task is named
"Task N", N being the number of tasks on the board.

Examples:
  unitime task create 3f2a
  unitime task create 3f2a --content="Write release notes"

  # Quiet mode for bash capture
  TASK_ID=$(unitime task create 3f2a --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().String("content", "", "Task content (default \"Task N\")")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	content, _ := cmd.Flags().GetString("content")

	cliInstance, formatter, cleanup, err := cli.Setup(cmd)
	defer cleanup()
	if err != nil {
		return err
	}
	store := cliInstance.App.Board

	column, err := cli.ResolveColumn(store, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	task, err := store.CreateTask(column.ID)
	if err != nil {
		return formatter.Fail(err)
	}
	if cmd.Flags().Changed("content") {
		if err := store.UpdateTaskContent(task.ID, content); err != nil {
			return formatter.Fail(err)
		}
		task.Content = content
	}

	result := cli.NewTaskResult(store, task)
	result.Message = "Task '" + task.Content + "' added to '" + column.Title + "'"
	return formatter.Success(result)
}
