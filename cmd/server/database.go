package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dm-mensavi/task-management/internal/config"
	"github.com/dm-mensavi/task-management/internal/platform/sqlite"
	"github.com/dm-mensavi/task-management/internal/redact"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// pingTimeout bounds the connectivity check at startup.
const pingTimeout = 5 * time.Second

// openDatabase establishes a connection for the configured driver and
// configures the connection pool.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %s", redact.Error(err))
		}
		logger.Info("database connection established", "driver", cfg.Driver)
		return db, nil

	case config.DriverPostgres:
		db, err := sql.Open(config.DriverPostgres, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
		}

		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
		}

		logger.Info("database connection established",
			"driver", cfg.Driver,
			"max_open_conns", cfg.MaxOpenConns)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
