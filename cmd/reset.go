package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
)

// resetResult reports a cleared board
type resetResult struct {
	DeletedColumns int `json:"deletedColumns"`
	DeletedTasks   int `json:"deletedTasks"`
}

func (r resetResult) Human() string {
	return fmt.Sprintf("Board cleared: %d column(s) and %d task(s) deleted", r.DeletedColumns, r.DeletedTasks)
}

// resetCmd removes every column and task and the stored board data
func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every column and task",
		Long: `Delete every column and task and remove the stored board.

Asks for confirmation unless --force, --json or --quiet is given.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	c, formatter, cleanup, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	snapshot := c.App.Board.Snapshot()
	result := resetResult{DeletedColumns: len(snapshot.Columns), DeletedTasks: len(snapshot.Tasks)}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !formatter.JSON && !formatter.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete %d column(s) and %d task(s)? [y/N]: ", result.DeletedColumns, result.DeletedTasks)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := c.App.Reset(c.Context()); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(result)
}
