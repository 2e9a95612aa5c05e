package column

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// DeleteResult reports a deleted column
type DeleteResult struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DeletedTasks int    `json:"deletedTasks"`
}

// GetID returns the column id for quiet mode
func (d DeleteResult) GetID() string { return d.ID }

func (d DeleteResult) Human() string {
	return fmt.Sprintf("✓ Column '%s' deleted along with %d task(s)", d.Title, d.DeletedTasks)
}

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column-id>",
		Short: "Delete a column and every task in it",
		Long: `Delete a column by id. All tasks in the column are deleted too
(requires confirmation unless --force, --json or --quiet).

Examples:
  # Delete with confirmation
  unitime column delete 3f2a

  # Skip confirmation
  unitime column delete 3f2a --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

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

	if !force && !formatter.JSON && !formatter.Quiet {
		count := len(store.TasksInColumn(column.ID))
		fmt.Fprintf(cmd.OutOrStdout(), "Delete column '%s' and its %d task(s)? [y/N]: ", column.Title, count)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	removed, err := store.DeleteColumn(column.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(DeleteResult{
		ID:           column.ID.String(),
		Title:        column.Title,
		DeletedTasks: removed,
	})
}
