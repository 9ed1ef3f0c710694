package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

// Migrations lists the schema files applied at startup, in order
var Migrations = []string{
	"000001_create_products_table.up.sql",
	"000002_seed_products.up.sql",
	"000003_create_cart_snapshots_table.up.sql",
}

// RunMigrations applies every file in Migrations from dir, each in its own transaction.
// The files are idempotent so startup can rerun them.
func RunMigrations(ctx context.Context, db *sqlx.DB, dir string) error {
	for _, name := range Migrations {
		path := filepath.Join(dir, name)
		sql, err := os.ReadFile(path)
		if err != nil {
			absPath, _ := filepath.Abs(path)
			return fmt.Errorf("failed to read migration %s (absolute: %s): %w", path, absPath, err)
		}

		if err := executeMigration(ctx, db, string(sql)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
	}

	return nil
}

func executeMigration(ctx context.Context, db *sqlx.DB, sql string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sql); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
