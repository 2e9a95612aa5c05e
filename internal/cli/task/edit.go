package task

import (
	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task-id> <content>",
		Short: "Replace a task's content",
		Long: `Replace a task's content. Empty content is allowed.

Examples:
  unitime task edit 9c1e "Write **release** notes"
`,
		Args: cobra.ExactArgs(2),
		RunE: runEdit,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, cleanup, err := cli.Setup(cmd)
	defer cleanup()
	if err != nil {
		return err
	}
	store := cliInstance.App.Board

	task, err := cli.ResolveTask(store, args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	if err := store.UpdateTaskContent(task.ID, args[1]); err != nil {
		return formatter.Fail(err)
	}
	task.Content = args[1]

	result := cli.NewTaskResult(store, task)
	result.Message = "Task updated"
	return formatter.Success(result)
}
