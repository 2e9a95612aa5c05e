package board

import (
	"context"
	"log/slog"

	"github.com/unitime/unitime/internal/types"
)

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithIDGenerator replaces the random id generators, mostly for tests
func WithIDGenerator(columnIDs func() types.ColumnID, taskIDs func() types.TaskID) Option {
	return func(s *Store) {
		if columnIDs != nil {
			s.newColumnID = columnIDs
		}
		if taskIDs != nil {
			s.newTaskID = taskIDs
		}
	}
}

// WithDefaultColumnTitle sets the title given to new columns
func WithDefaultColumnTitle(title string) Option {
	return func(s *Store) {
		if title != "" {
			s.defaultTitle = title
		}
	}
}

// WithLogger sets the logger used for persistence warnings
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContext sets the context handed to the persister on every save
func WithContext(ctx context.Context) Option {
	return func(s *Store) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}
