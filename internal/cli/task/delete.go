package task

import (
	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	result := cli.NewTaskResult(store, task)

	if err := store.DeleteTask(task.ID); err != nil {
		return formatter.Fail(err)
	}

	result.Message = "Task '" + task.Content + "' deleted"
	return formatter.Success(result)
}
