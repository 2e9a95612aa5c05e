package app

import (
	"log/slog"

	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	kv         storage.KV
	logger     *slog.Logger
	boardOpts  []board.Option
	noDebounce bool
}

// WithKV uses kv instead of opening the configured backend. The App takes
// ownership and closes it.
func WithKV(kv storage.KV) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithBoardOptions passes extra options to the board store
func WithBoardOptions(opts ...board.Option) Option {
	return func(cfg *appConfig) {
		cfg.boardOpts = append(cfg.boardOpts, opts...)
	}
}

// WithWriteThrough saves on every change regardless of the configured
// debounce. One-shot commands use it so nothing is left pending at exit.
func WithWriteThrough() Option {
	return func(cfg *appConfig) {
		cfg.noDebounce = true
	}
}
