// Package cli runs unitime subcommands against a throwaway data directory.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/app"
	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/config"
	unicli "github.com/unitime/unitime/internal/cli"
	"github.com/unitime/unitime/internal/storage"
)

// Env is an isolated config and data directory
type Env struct {
	DataDir string
	Stdin   string
}

// Result is the outcome of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode returns the process exit code the command would produce
func (r Result) ExitCode() int {
	return unicli.ExitCode(r.Err)
}

// SetupCLITest isolates config lookup and returns a fresh environment. It
// uses t.Setenv, so callers cannot run in parallel.
func SetupCLITest(t *testing.T) *Env {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvBackend, "")
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvThemeFile, "")
	return &Env{DataDir: t.TempDir()}
}

// Execute runs cmd under a root carrying the global flags, with the file
// backend pointed at the environment's data directory
func (e *Env) Execute(t *testing.T, cmd *cobra.Command, args ...string) Result {
	t.Helper()

	root := &cobra.Command{Use: "unitime", SilenceUsage: true, SilenceErrors: true}
	unicli.AddGlobalFlags(root)
	root.AddCommand(cmd)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(e.Stdin))
	root.SetArgs(append([]string{"--backend", storage.BackendFile, "--data-dir", e.DataDir}, args...))

	err := root.ExecuteContext(context.Background())
	return Result{Stdout: out.String(), Stderr: errOut.String(), Err: err}
}

// WithBoard opens the environment's board directly, runs fn and saves
func (e *Env) WithBoard(t *testing.T, fn func(store *board.Store)) {
	t.Helper()
	ctx := context.Background()

	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendFile
	cfg.Storage.DataDir = e.DataDir

	a, err := app.New(ctx, cfg, app.WithWriteThrough())
	require.NoError(t, err)
	fn(a.Board)
	require.NoError(t, a.Close(ctx))
}

// Envelope is the JSON success or error wrapper
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion"`
	} `json:"error"`
}

// DecodeJSON parses command output produced with --json
func DecodeJSON[T any](t *testing.T, output string) Envelope[T] {
	t.Helper()
	var env Envelope[T]
	require.NoError(t, json.Unmarshal([]byte(output), &env), "output should be valid JSON: %s", output)
	return env
}

// Lines splits quiet output into its non-empty lines
func Lines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
