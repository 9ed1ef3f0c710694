package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Pesokrava/storefront/internal/config"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

const pingTimeout = 5 * time.Second

// NewPostgresDB opens a pooled PostgreSQL connection and verifies it
func NewPostgresDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(pingCtx, "postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

// WaitForDB retries NewPostgresDB until it succeeds, maxRetries is reached or ctx is done
func WaitForDB(ctx context.Context, cfg *config.Config, log *logger.Logger, maxRetries int, retryDelay time.Duration) (*sqlx.DB, error) {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		var db *sqlx.DB
		if db, err = NewPostgresDB(ctx, cfg); err == nil {
			return db, nil
		}

		log.Warnf("PostgreSQL not ready (attempt %d/%d): %v", attempt, maxRetries, err)
		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d retries: %w", maxRetries, err)
}
