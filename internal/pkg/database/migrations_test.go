package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigrations(t *testing.T) string {
	dir := t.TempDir()
	for _, name := range Migrations {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1"), 0o600))
	}
	return dir
}

func TestRunMigrations_AppliesEachFile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	for range Migrations {
		mock.ExpectBegin()
		mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
	}

	err = RunMigrations(context.Background(), sqlx.NewDb(db, "sqlmock"), writeMigrations(t))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_StopsOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT 1").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = RunMigrations(context.Background(), sqlx.NewDb(db, "sqlmock"), writeMigrations(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), Migrations[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_MissingFile(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	err = RunMigrations(context.Background(), sqlx.NewDb(db, "sqlmock"), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read migration")
}
