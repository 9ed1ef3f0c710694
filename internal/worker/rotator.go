package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

// Rotator cycles an index over a fixed number of slides on an interval.
// It backs the announcement bar; Next and Prev wrap around in both directions.
type Rotator struct {
	size     int
	interval time.Duration
	logger   *logger.Logger

	mu      sync.RWMutex
	current int
}

// NewRotator creates a rotator over size slides, starting at slide 0
func NewRotator(size int, interval time.Duration, log *logger.Logger) *Rotator {
	return &Rotator{
		size:     size,
		interval: interval,
		logger:   log,
	}
}

// Current returns the visible slide index
func (r *Rotator) Current() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Next advances one slide, wrapping from the last to the first
func (r *Rotator) Next() int {
	return r.step(1)
}

// Prev goes back one slide, wrapping from the first to the last
func (r *Rotator) Prev() int {
	return r.step(-1)
}

func (r *Rotator) step(delta int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size == 0 {
		return 0
	}
	r.current = ((r.current+delta)%r.size + r.size) % r.size
	return r.current
}

// Run advances the rotator every interval until ctx is done
func (r *Rotator) Run(ctx context.Context) error {
	if r.size <= 1 || r.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.WithFields(map[string]any{
		"slides":   r.size,
		"interval": r.interval.String(),
	}).Info("Announcement rotation started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Announcement rotation stopped")
			return nil
		case <-ticker.C:
			r.Next()
		}
	}
}
