// Package cli holds the shared plumbing of the unitime subcommands: loading
// the app, global flags and output formatting.
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/unitime/unitime/internal/app"
	"github.com/unitime/unitime/internal/cli/styles"
	"github.com/unitime/unitime/internal/config"
	"github.com/unitime/unitime/internal/logging"
)

// Global flag names shared by every subcommand
const (
	FlagBackend = "backend"
	FlagDataDir = "data-dir"
)

// AddGlobalFlags registers the storage flags on a root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagBackend, "", "Storage backend: sqlite, file, redis or memory")
	cmd.PersistentFlags().String(FlagDataDir, "", "Directory for board data (default ~/.unitime)")
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App
	ctx context.Context
}

// LoadConfig reads the config file and applies the global flags of cmd on
// top of it
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString(FlagBackend); v != "" {
		cfg.Storage.Backend = v
	}
	if v, _ := cmd.Flags().GetString(FlagDataDir); v != "" {
		cfg.Storage.DataDir = v
	}
	return cfg, nil
}

// NewCLI loads the board for a one-shot command. Every change is written
// through, so nothing is pending when the process exits.
func NewCLI(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	styles.Init(cfg.ColorScheme)

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger), app.WithWriteThrough())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize board: %w", err)
	}

	return &CLI{App: application, ctx: ctx}, nil
}

// Context returns the command context
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close(c.ctx)
}

// Setup opens the CLI for a subcommand and returns its formatter. cleanup
// closes the CLI and must be deferred by the caller. A non-nil error has
// already been reported.
func Setup(cmd *cobra.Command) (c *CLI, formatter *OutputFormatter, cleanup func(), err error) {
	formatter = NewFormatter(cmd)

	c, err = NewCLI(cmd)
	if err != nil {
		return nil, formatter, func() {}, formatter.Fail(err)
	}
	cleanup = func() {
		if err := c.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}
	return c, formatter, cleanup, nil
}
