package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column-id> <title>",
		Short: "Rename a column",
		Long: `Rename a column. The id may be shortened to any unique prefix.

Examples:
  unitime column rename 3f2a "Shipped"
`,
		Args: cobra.ExactArgs(2),
		RunE: runRename,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
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
	oldTitle := column.Title

	if err := store.RenameColumn(column.ID, args[1]); err != nil {
		return formatter.Fail(err)
	}
	column.Title = args[1]

	result := cli.NewColumnResult(store, column)
	result.Message = fmt.Sprintf("Column renamed '%s' → '%s'", oldTitle, column.Title)
	return formatter.Success(result)
}
