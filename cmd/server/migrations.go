package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dm-mensavi/task-management/internal/config"
	"github.com/dm-mensavi/task-management/internal/platform/migrate"
	"github.com/dm-mensavi/task-management/internal/platform/postgres"
	"github.com/dm-mensavi/task-management/internal/platform/sqlite"
)

// newMigrationRunner returns a runner over the embedded migrations that
// match driver.
func newMigrationRunner(db *sql.DB, driver string, logger *slog.Logger) (*migrate.Runner, error) {
	switch driver {
	case config.DriverPostgres:
		return migrate.NewRunner(db, postgres.Dialect, postgres.Migrations(), logger)
	case config.DriverSQLite:
		return migrate.NewRunner(db, sqlite.Dialect, sqlite.Migrations(), logger)
	default:
		return nil, fmt.Errorf("no migrations for database driver %q", driver)
	}
}

// runMigrations executes a single migration command.
func runMigrations(ctx context.Context, db *sql.DB, driver, command string, logger *slog.Logger) error {
	runner, err := newMigrationRunner(db, driver, logger)
	if err != nil {
		return err
	}
	if err := runner.Run(ctx, command); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
