package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/storefront/internal/domain"
)

// CartSnapshotRepository implements domain.CartSnapshotRepository for PostgreSQL
type CartSnapshotRepository struct {
	db *sqlx.DB
}

// NewCartSnapshotRepository creates a new PostgreSQL cart snapshot repository
func NewCartSnapshotRepository(db *sqlx.DB) *CartSnapshotRepository {
	return &CartSnapshotRepository{db: db}
}

// Upsert inserts or replaces the snapshot for a session.
// Rows captured after snapshot.CapturedAt are left untouched.
func (r *CartSnapshotRepository) Upsert(ctx context.Context, snapshot *domain.CartSnapshot) error {
	lines := snapshot.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart lines: %w", err)
	}

	query := `
		INSERT INTO cart_snapshots (session_id, item_count, subtotal, lines, captured_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id) DO UPDATE
		SET item_count = EXCLUDED.item_count,
			subtotal = EXCLUDED.subtotal,
			lines = EXCLUDED.lines,
			captured_at = EXCLUDED.captured_at
		WHERE cart_snapshots.captured_at <= EXCLUDED.captured_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		snapshot.SessionID,
		snapshot.ItemCount,
		snapshot.Subtotal,
		data,
		snapshot.CapturedAt,
	)
	return err
}
