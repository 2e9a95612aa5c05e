package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/models"
)

// DefaultDebounce is the quiet period before a pending board is written
const DefaultDebounce = 250 * time.Millisecond

// Compile-time verification that Debounced satisfies board.Persister
var _ board.Persister = (*Debounced)(nil)

// Debounced coalesces bursts of saves, such as the stream of drag-over
// mutations, into one write of the latest board. A delay of zero or less
// writes through.
type Debounced struct {
	next   board.Persister
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *models.Board
	closed  bool
	// a write is in progress; set and cleared under mu
	writingNow bool

	// serializes writes so an older board never lands after a newer one
	writing sync.Mutex
}

// NewDebounced wraps next
func NewDebounced(next board.Persister, delay time.Duration, logger *slog.Logger) *Debounced {
	if logger == nil {
		logger = slog.Default()
	}
	return &Debounced{next: next, delay: delay, logger: logger}
}

// Load flushes anything pending, then loads from the wrapped persister
func (d *Debounced) Load(ctx context.Context) (models.Board, error) {
	if err := d.Flush(ctx); err != nil {
		d.logger.Warn("failed to flush before load", "error", err)
	}
	return d.next.Load(ctx)
}

// Save records b as the board to write and restarts the quiet period.
// A save arriving while a write is in progress, which is how a merge
// handler re-saves, is queued behind it instead of waiting.
func (d *Debounced) Save(ctx context.Context, b models.Board) error {
	d.mu.Lock()
	if d.writingNow {
		d.pending = &b
		if !d.closed {
			d.scheduleLocked(0)
		}
		d.mu.Unlock()
		return nil
	}
	if d.closed || d.delay <= 0 {
		d.mu.Unlock()
		return d.write(ctx, b)
	}

	d.pending = &b
	d.scheduleLocked(d.delay)
	d.mu.Unlock()
	return nil
}

func (d *Debounced) scheduleLocked(delay time.Duration) {
	if d.timer == nil {
		d.timer = time.AfterFunc(delay, d.onTimer)
		return
	}
	d.timer.Reset(delay)
}

func (d *Debounced) write(ctx context.Context, b models.Board) error {
	d.writing.Lock()
	defer d.writing.Unlock()
	return d.writeLocked(ctx, b)
}

// writeLocked requires d.writing
func (d *Debounced) writeLocked(ctx context.Context, b models.Board) error {
	d.mu.Lock()
	d.writingNow = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.writingNow = false
		d.mu.Unlock()
	}()

	return d.next.Save(ctx, b)
}

func (d *Debounced) onTimer() {
	if err := d.Flush(context.Background()); err != nil {
		d.logger.Warn("failed to save board", "error", err)
	}
}

// Flush writes the pending board now, if there is one
func (d *Debounced) Flush(ctx context.Context) error {
	d.writing.Lock()
	defer d.writing.Unlock()

	d.mu.Lock()
	b := d.pending
	d.pending = nil
	d.mu.Unlock()

	if b == nil {
		return nil
	}
	return d.writeLocked(ctx, *b)
}

// Pending reports whether a board is waiting to be written
func (d *Debounced) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Close stops the timer and flushes, including anything queued while the
// flush was writing. Saves after Close write through.
func (d *Debounced) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	for d.Pending() {
		if err := d.Flush(ctx); err != nil {
			return err
		}
	}
	return nil
}
