// Package app wires configuration, storage, the board store and the drag
// controller into one container shared by the CLI and the terminal board.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/config"
	"github.com/unitime/unitime/internal/drag"
	"github.com/unitime/unitime/internal/models"
	"github.com/unitime/unitime/internal/storage"
)

// App holds the board and everything it needs to load and save itself.
type App struct {
	Config *config.Config
	Board  *board.Store
	Drag   *drag.Controller

	kv        storage.KV
	persister *storage.Persister
	saver     *storage.Debounced
	logger    *slog.Logger
}

// New loads the board from the configured backend, seeding starter columns
// into an empty board when the config asks for it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	logger := ac.logger
	if logger == nil {
		logger = slog.Default()
	}

	kv := ac.kv
	if kv == nil {
		var err error
		kv, err = storage.Open(ctx, StorageOptions(cfg), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	delay := cfg.Storage.DebounceDelay()
	if ac.noDebounce {
		delay = 0
	}
	persister := storage.NewPersister(kv, logger)
	saver := storage.NewDebounced(persister, delay, logger)

	boardOpts := []board.Option{board.WithLogger(logger)}
	if cfg.Board.DefaultColumnTitle != "" {
		boardOpts = append(boardOpts, board.WithDefaultColumnTitle(cfg.Board.DefaultColumnTitle))
	}
	boardOpts = append(boardOpts, ac.boardOpts...)
	store := board.Load(ctx, saver, boardOpts...)
	persister.OnMerge(store.Adopt)

	if cfg.Board.ShouldSeed() && store.Snapshot().IsEmpty() {
		titles := cfg.Board.SeedTitles
		if len(titles) == 0 {
			titles = models.DefaultSeedColumns
		}
		store.SeedColumns(titles...)
		// another process opening the same backend must see the seed
		if err := saver.Flush(ctx); err != nil {
			logger.Warn("failed to save seeded columns", "error", err)
		}
	}

	return &App{
		Config:    cfg,
		Board:     store,
		Drag:      drag.NewController(store, logger),
		kv:        kv,
		persister: persister,
		saver:     saver,
		logger:    logger,
	}, nil
}

// StorageOptions maps the storage config onto backend options
func StorageOptions(cfg *config.Config) storage.Options {
	return storage.Options{
		Backend:       cfg.Storage.Backend,
		DataDir:       cfg.Storage.DataDir,
		RedisAddr:     cfg.Storage.Redis.Addr,
		RedisPassword: cfg.Storage.Redis.Password,
		RedisDB:       cfg.Storage.Redis.DB,
		RedisPrefix:   cfg.Storage.Redis.Prefix,
	}
}

// Flush writes any pending board now
func (a *App) Flush(ctx context.Context) error {
	return a.saver.Flush(ctx)
}

// Refresh takes in changes another process saved to the backend since this
// app last read or wrote it. It reports whether the board changed.
func (a *App) Refresh(ctx context.Context) (bool, error) {
	if err := a.saver.Flush(ctx); err != nil {
		return false, err
	}
	before, now, changed, err := a.persister.Poll(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to refresh board: %w", err)
	}
	if !changed {
		return false, nil
	}
	a.Board.Adopt(before, now)
	return true, nil
}

// Reset empties the board and removes it from storage. The next start
// seeds a fresh board.
func (a *App) Reset(ctx context.Context) error {
	a.Drag.Cancel()
	a.Board.Restore(models.Board{})
	if err := a.saver.Flush(ctx); err != nil {
		return err
	}
	return a.persister.Reset(ctx)
}

// Close flushes pending saves and closes the backend
func (a *App) Close(ctx context.Context) error {
	a.Drag.Cancel()
	flushErr := a.saver.Close(ctx)
	closeErr := a.kv.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("failed to close app: %w", err)
	}
	a.logger.Debug("app closed")
	return nil
}
