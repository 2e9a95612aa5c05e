package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a new column to the board",
		Long: `Append a new column to the right end of the board.

Examples:
  # Create a column with the default title
  unitime column create

  # Create a titled column, JSON output for agents
  unitime column create --title="Review" --json

  # Quiet mode for bash capture
  COLUMN_ID=$(unitime column create --title="Review" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Column title (default \"New Column\")")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")

	cliInstance, formatter, cleanup, err := cli.Setup(cmd)
	defer cleanup()
	if err != nil {
		return err
	}
	store := cliInstance.App.Board

	column := store.CreateColumn()
	if title != "" {
		if err := store.RenameColumn(column.ID, title); err != nil {
			return formatter.Fail(err)
		}
		column.Title = title
	}

	result := cli.NewColumnResult(store, column)
	result.Message = fmt.Sprintf("Column '%s' created", column.Title)
	return formatter.Success(result)
}
