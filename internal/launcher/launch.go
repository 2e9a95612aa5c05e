// Package launcher runs the interactive board until the user quits or the
// process is interrupted.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/unitime/unitime/internal/app"
	"github.com/unitime/unitime/internal/config"
	"github.com/unitime/unitime/internal/logging"
	"github.com/unitime/unitime/internal/tui"
)

// LogDir is where the board writes its log, relative to the data directory
const LogDir = "logs"

const (
	// shutdownTimeout bounds the final flush of pending saves
	shutdownTimeout = 5 * time.Second
	// refreshInterval is how often the board looks for changes saved by
	// CLI commands
	refreshInterval = 2 * time.Second
)

// Launch starts the board for cfg
func Launch(cfg *config.Config) error {
	// Initialize logging to file before anything else
	if err := logging.Init(filepath.Join(cfg.Storage.DataDir, LogDir), cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return fmt.Errorf("failed to initialize board: %w", err)
	}
	slog.Info("board loaded",
		"backend", cfg.Storage.Backend,
		"columns", len(application.Board.Columns()),
		"tasks", len(application.Board.Tasks()))

	// flush pending saves even when the program failed
	defer func() {
		drainCtx, drainCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer drainCancel()
		if err := application.Close(drainCtx); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	model := tui.New(application.Board, application.Drag, cfg).
		WithRefresh(func() (bool, error) {
			return application.Refresh(ctx)
		}, refreshInterval)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		<-errChan
	}

	return nil
}
