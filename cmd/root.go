// Package cmd assembles the unitime command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/cli"
	"github.com/unitime/unitime/internal/cli/column"
	"github.com/unitime/unitime/internal/cli/task"
	"github.com/unitime/unitime/internal/launcher"
)

// NewRootCmd builds the unitime command. Without a subcommand it opens the
// interactive board.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "unitime",
		Short: "UniTime - a kanban board with drag and drop",
		Long: `UniTime is a kanban board of ordered columns and tasks.

Run it without arguments to open the board in your terminal, where tasks and
columns can be dragged with the mouse or the keyboard. The subcommands edit
the same board from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBoard,
	}
	cli.AddGlobalFlags(root)

	root.AddCommand(&cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE:  runBoard,
	})
	root.AddCommand(column.ColumnCmd())
	root.AddCommand(task.TaskCmd())
	root.AddCommand(resetCmd())

	return root
}

// runBoard opens the interactive board
func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	return launcher.Launch(cfg)
}

// Execute runs the command tree and exits with the command's exit code
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		// already-reported failures carry an ExitError
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
