package testutils

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/platform/migrate"
	"github.com/dm-mensavi/task-management/internal/platform/postgres"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

// GetTestDB opens the configured test database, applies all migrations
// and closes the connection when the test ends.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", GetTestDatabaseURL(t))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	_, log := logger.NewTestLogger(t)
	runner, err := migrate.NewRunner(db, postgres.Dialect, postgres.Migrations(), log)
	if err != nil {
		t.Fatalf("Failed to create migration runner: %v", err)
	}
	if err := runner.Up(ctx); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return db
}

// WithTx runs fn inside a transaction that is always rolled back, so each
// test sees a clean database.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	defer AssertRollbackNoError(t, tx)

	fn(t, tx)
}

// AssertRollbackNoError rolls back tx and fails the test if that fails for
// any reason other than the transaction already being finished.
func AssertRollbackNoError(t *testing.T, tx *sql.Tx) {
	t.Helper()

	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		t.Errorf("Failed to roll back transaction: %v", err)
	}
}
