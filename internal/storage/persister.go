package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/models"
)

// Compile-time verification that Persister satisfies board.Persister
var _ board.Persister = (*Persister)(nil)

// MergeFunc receives the board handed to Save and the board actually
// written after outside changes were merged into it
type MergeFunc func(saved, merged models.Board)

// Persister saves the board as two JSON arrays, one under models.ColumnsKey
// and one under models.TasksKey.
//
// Several processes may share one backend (the board and CLI commands).
// The persister remembers the board it last read or wrote; when the backend
// holds something else at save time, another process saved in between and
// its changes are merged with board.Merge instead of being overwritten.
type Persister struct {
	kv     KV
	logger *slog.Logger

	mu      sync.Mutex
	base    *models.Board
	onMerge MergeFunc
}

// NewPersister creates a persister over kv
func NewPersister(kv KV, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{kv: kv, logger: logger}
}

// OnMerge registers fn to be told about merged saves
func (p *Persister) OnMerge(fn MergeFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onMerge = fn
}

// Load reads both keys. A missing key is an empty collection, and so is a
// value that does not decode; only backend failures are returned.
func (p *Persister) Load(ctx context.Context) (models.Board, error) {
	b, _, err := p.decode(ctx)
	if err != nil {
		return models.Board{}, err
	}
	p.remember(b)
	return b, nil
}

// Poll checks whether another process saved since the last load or save.
// When it did, Poll returns the board known before and the one now saved,
// and remembers the new one.
func (p *Persister) Poll(ctx context.Context) (before, now models.Board, changed bool, err error) {
	remote, readable, err := p.decode(ctx)
	if err != nil || !readable {
		return models.Board{}, models.Board{}, false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.base == nil || p.base.Equal(remote) {
		return models.Board{}, models.Board{}, false, nil
	}
	before = *p.base
	p.base = &remote
	return before, remote.Clone(), true, nil
}

func (p *Persister) remember(b models.Board) {
	b = b.Clone()
	p.mu.Lock()
	p.base = &b
	p.mu.Unlock()
}

// decode reads the saved board. readable is false when a value was present
// but could not be decoded.
func (p *Persister) decode(ctx context.Context) (b models.Board, readable bool, err error) {
	readable = true

	columns, err := p.read(ctx, models.ColumnsKey)
	if err != nil {
		return models.Board{}, false, err
	}
	if columns != nil {
		if err := json.Unmarshal(columns, &b.Columns); err != nil {
			p.logger.Warn("ignoring unreadable saved columns", "key", models.ColumnsKey, "error", err)
			b.Columns = nil
			readable = false
		}
	}

	tasks, err := p.read(ctx, models.TasksKey)
	if err != nil {
		return models.Board{}, false, err
	}
	if tasks != nil {
		if err := json.Unmarshal(tasks, &b.Tasks); err != nil {
			p.logger.Warn("ignoring unreadable saved tasks", "key", models.TasksKey, "error", err)
			b.Tasks = nil
			readable = false
		}
	}

	return b, readable, nil
}

func (p *Persister) read(ctx context.Context, key string) ([]byte, error) {
	data, found, err := p.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return nil, nil
	}
	return data, nil
}

// Save writes both keys in one Put. If another process saved since this
// persister last read or wrote, the two boards are merged first and the
// merge handler is told.
func (p *Persister) Save(ctx context.Context, b models.Board) error {
	toWrite := b
	merged := false

	remote, readable, err := p.decode(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	base, onMerge := p.base, p.onMerge
	p.mu.Unlock()
	if base != nil && readable && !base.Equal(remote) {
		toWrite = board.Merge(*base, b, remote)
		merged = true
		p.logger.Info("merging board saved by another process",
			"columns", len(toWrite.Columns),
			"tasks", len(toWrite.Tasks))
	}

	if err := p.write(ctx, toWrite); err != nil {
		return err
	}
	p.remember(toWrite)

	if merged && onMerge != nil {
		onMerge(b, toWrite)
	}
	return nil
}

func (p *Persister) write(ctx context.Context, b models.Board) error {
	columns, err := Encode(b.Columns)
	if err != nil {
		return fmt.Errorf("failed to encode columns: %w", err)
	}
	tasks, err := Encode(b.Tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	if err := p.kv.Put(ctx, map[string][]byte{
		models.ColumnsKey: columns,
		models.TasksKey:   tasks,
	}); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// Reset removes the saved board
func (p *Persister) Reset(ctx context.Context) error {
	if err := p.kv.Delete(ctx, models.ColumnsKey, models.TasksKey); err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}
	p.remember(models.Board{})
	return nil
}

// Encode marshals a collection as a JSON array. A nil slice encodes as []
// so that the saved value is always an array.
func Encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}
