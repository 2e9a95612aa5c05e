package column

import (
	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in board order",
		Long: `List all columns from left to right with their task counts.

Examples:
  unitime column list
  unitime column list --json
  unitime column list --quiet   # one id per line
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, cleanup, err := cli.Setup(cmd)
	defer cleanup()
	if err != nil {
		return err
	}
	store := cliInstance.App.Board

	columns := store.Columns()
	list := make(cli.ColumnList, len(columns))
	for i, col := range columns {
		list[i] = cli.NewColumnResult(store, col)
	}
	return formatter.Success(list)
}
