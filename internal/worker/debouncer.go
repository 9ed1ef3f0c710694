package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

// FlushFunc handles the latest value submitted for a key once its window elapses
type FlushFunc[K comparable, V any] func(ctx context.Context, key K, value V)

// Debouncer collapses bursts of submissions per key into a single flush.
// Each submission restarts the key's timer; submissions older than the pending one are dropped.
type Debouncer[K comparable, V any] struct {
	window time.Duration
	flush  FlushFunc[K, V]
	logger *logger.Logger

	mu       sync.Mutex
	pending  map[K]*pendingValue[V]
	shutdown bool
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

type pendingValue[V any] struct {
	value     V
	timestamp time.Time
	timer     *time.Timer
}

// NewDebouncer creates a debouncer that calls flush window after the last submission for a key
func NewDebouncer[K comparable, V any](window time.Duration, flush FlushFunc[K, V], log *logger.Logger) *Debouncer[K, V] {
	ctx, cancel := context.WithCancel(context.Background())

	return &Debouncer[K, V]{
		window:  window,
		flush:   flush,
		logger:  log,
		pending: make(map[K]*pendingValue[V]),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Submit schedules value for key. It returns false when the value was dropped
// because it is older than the pending one or the debouncer is shut down.
func (d *Debouncer[K, V]) Submit(key K, timestamp time.Time, value V) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.shutdown {
		d.logger.Info("Debouncer shutting down, ignoring new submission")
		return false
	}

	if existing, found := d.pending[key]; found {
		if timestamp.Before(existing.timestamp) {
			d.logger.WithFields(map[string]any{
				"key":         key,
				"existing_ts": existing.timestamp,
				"event_ts":    timestamp,
			}).Debug("Ignoring stale submission")
			return false
		}

		if existing.timer.Stop() {
			d.wg.Done()
		}
		d.logger.WithFields(map[string]any{
			"key": key,
		}).Debug("Debouncing: resetting timer")
	}

	entry := &pendingValue[V]{
		value:     value,
		timestamp: timestamp,
	}
	d.wg.Add(1)
	entry.timer = time.AfterFunc(d.window, func() {
		d.fire(key, entry)
	})
	d.pending[key] = entry

	return true
}

func (d *Debouncer[K, V]) fire(key K, entry *pendingValue[V]) {
	defer d.wg.Done()

	d.mu.Lock()
	current, ok := d.pending[key]
	if !ok || current != entry {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	d.flush(d.ctx, key, entry.value)
}

// Pending returns the number of keys waiting for their window to elapse
func (d *Debouncer[K, V]) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Shutdown drops pending submissions and waits for in-flight flushes.
// The context passed to flushes is cancelled so retries stop early.
func (d *Debouncer[K, V]) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.shutdown = true
	pendingCount := len(d.pending)
	for _, entry := range d.pending {
		if entry.timer.Stop() {
			d.wg.Done()
		}
	}
	d.pending = make(map[K]*pendingValue[V])
	d.mu.Unlock()

	d.cancel()

	d.logger.WithFields(map[string]any{
		"cancelled": pendingCount,
	}).Info("Cancelled pending flushes")

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("Shutdown timeout reached, forcing exit")
		return ctx.Err()
	}
}
