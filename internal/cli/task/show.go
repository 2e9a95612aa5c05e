package task

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
	"github.com/unitime/unitime/internal/cli/styles"
	"github.com/unitime/unitime/internal/markdown"
)

const showWidth = 72

// ShowResult is a task with its column title
type ShowResult struct {
	cli.TaskResult
	ColumnTitle string `json:"columnTitle"`
}

func (s ShowResult) Human() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(s.ColumnTitle))
	b.WriteString(styles.IDStyle.Render(" / " + s.ID))
	b.WriteString("\n\n")
	b.WriteString(markdown.Render(s.Content, showWidth, markdown.DefaultStyle))
	return b.String()
}

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task, rendering its content as markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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
	column, _ := store.Column(task.ColumnID)

	return formatter.Success(ShowResult{
		TaskResult:  cli.NewTaskResult(store, task),
		ColumnTitle: column.Title,
	})
}
