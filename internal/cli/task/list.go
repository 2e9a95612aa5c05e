package task

import (
	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
	"github.com/unitime/unitime/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by column",
		Long: `List tasks column by column, top to bottom.

Examples:
  unitime task list
  unitime task list --column=3f2a --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list tasks of this column")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	columnArg, _ := cmd.Flags().GetString("column")

	cliInstance, formatter, cleanup, err := cli.Setup(cmd)
	defer cleanup()
	if err != nil {
		return err
	}
	store := cliInstance.App.Board

	var columns []models.Column
	if columnArg != "" {
		column, err := cli.ResolveColumn(store, columnArg)
		if err != nil {
			return formatter.Fail(err)
		}
		columns = append(columns, column)
	}

	return formatter.Success(cli.NewTaskList(store, columns...))
}
