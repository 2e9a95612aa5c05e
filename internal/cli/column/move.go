package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column-id> <position>",
		Short: "Move a column to a new position",
		Long: `Move a column so that it ends up at the given zero-based position.
The other columns keep their relative order.

Examples:
  # Make a column the leftmost one
  unitime column move 3f2a 0
`,
		Args: cobra.ExactArgs(2),
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

	to, err := cli.ParseIndex("position", args[1])
	if err != nil {
		return formatter.FailUsage(err)
	}
	column, err := cli.ResolveColumn(store, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if err := store.ReorderColumns(store.ColumnIndex(column.ID), to); err != nil {
		return formatter.Fail(fmt.Errorf("position %d: %w", to, err))
	}

	result := cli.NewColumnResult(store, column)
	result.Message = fmt.Sprintf("Column '%s' moved to position %d", column.Title, result.Position)
	return formatter.Success(result)
}
