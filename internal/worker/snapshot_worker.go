package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

const (
	// Retry configuration
	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond

	writeTimeout = 5 * time.Second
)

// SnapshotWorker turns cart events into per-session snapshots.
// Events for one session are debounced so a burst of cart edits costs a single write.
type SnapshotWorker struct {
	repo      domain.CartSnapshotRepository
	debouncer *Debouncer[string, domain.CartEvent]
	logger    *logger.Logger
}

// NewSnapshotWorker creates a new cart snapshot worker
func NewSnapshotWorker(repo domain.CartSnapshotRepository, window time.Duration, log *logger.Logger) *SnapshotWorker {
	w := &SnapshotWorker{
		repo:   repo,
		logger: log,
	}
	w.debouncer = NewDebouncer[string, domain.CartEvent](window, w.writeSnapshot, log)
	return w
}

// HandleEvent processes a cart event
func (w *SnapshotWorker) HandleEvent(data []byte) error {
	var event domain.CartEvent
	if err := json.Unmarshal(data, &event); err != nil {
		w.logger.WithFields(map[string]any{
			"error": err.Error(),
		}).Error("Failed to unmarshal cart event", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.SessionID == "" {
		return fmt.Errorf("cart event without session id: %w", domain.ErrInvalidInput)
	}

	w.logger.WithFields(map[string]any{
		"type":       event.EventType,
		"session_id": event.SessionID,
		"timestamp":  event.Timestamp,
	}).Info("Received cart event")

	w.debouncer.Submit(event.SessionID, event.Timestamp, event)

	return nil
}

// writeSnapshot upserts the snapshot with retry and exponential backoff
func (w *SnapshotWorker) writeSnapshot(ctx context.Context, sessionID string, event domain.CartEvent) {
	snapshot := &domain.CartSnapshot{
		SessionID:  sessionID,
		ItemCount:  event.ItemCount,
		Subtotal:   event.Subtotal,
		Lines:      event.Lines,
		CapturedAt: event.Timestamp,
	}

	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			w.logger.WithFields(map[string]any{
				"session_id": sessionID,
				"attempt":    attempt + 1,
				"backoff_ms": backoff.Milliseconds(),
			}).Warn("Retrying snapshot write")

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				w.logger.Info("Worker context cancelled, aborting retry")
				return
			}

			backoff *= 2
		}

		attemptCtx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := w.repo.Upsert(attemptCtx, snapshot)
		cancel()

		if err == nil {
			w.logger.WithFields(map[string]any{
				"session_id": sessionID,
				"items":      snapshot.ItemCount,
			}).Info("Stored cart snapshot")
			return
		}

		lastErr = err
		if errors.Is(err, context.Canceled) {
			break
		}
		w.logger.WithFields(map[string]any{
			"session_id": sessionID,
			"attempt":    attempt + 1,
			"error":      err.Error(),
		}).Error("Failed to store cart snapshot", err)
	}

	w.logger.WithFields(map[string]any{
		"session_id":  sessionID,
		"max_retries": maxRetries,
	}).Error("Cart snapshot failed after all retries", lastErr)
}

// Shutdown cancels pending snapshots and waits for in-flight writes
func (w *SnapshotWorker) Shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down cart snapshot worker...")
	return w.debouncer.Shutdown(ctx)
}

// GetPendingCount returns the number of sessions waiting to be written (used for monitoring/testing)
func (w *SnapshotWorker) GetPendingCount() int {
	return w.debouncer.Pending()
}
