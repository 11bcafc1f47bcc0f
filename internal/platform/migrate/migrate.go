// Package migrate applies the embedded goose schema migrations of a storage
// backend to a database.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// Commands accepted by Runner.Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// ErrUnknownCommand is returned by Run for commands it does not support.
var ErrUnknownCommand = errors.New("unknown migration command")

// Runner executes migrations for one database and dialect.
type Runner struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewRunner creates a Runner for the migrations in fsys.
func NewRunner(db *sql.DB, dialect goose.Dialect, fsys fs.FS, logger *slog.Logger) (*Runner, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return &Runner{
		provider: provider,
		logger:   logger.With(slog.String("component", "migrate")),
	}, nil
}

// Run executes one of the Command* operations.
func (r *Runner) Run(ctx context.Context, command string) error {
	switch command {
	case CommandUp:
		return r.Up(ctx)
	case CommandDown:
		return r.Down(ctx)
	case CommandStatus:
		return r.Status(ctx)
	case CommandVersion:
		_, err := r.Version(ctx)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// Up applies all pending migrations.
func (r *Runner) Up(ctx context.Context) error {
	results, err := r.provider.Up(ctx)
	for _, res := range results {
		r.logResult(res)
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	r.logger.Info("migrations applied", slog.Int("count", len(results)))
	return nil
}

// Down rolls back the most recently applied migration.
func (r *Runner) Down(ctx context.Context) error {
	res, err := r.provider.Down(ctx)
	if res != nil {
		r.logResult(res)
	}
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Status logs the state of every known migration.
func (r *Runner) Status(ctx context.Context) error {
	statuses, err := r.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	for _, st := range statuses {
		attrs := []any{
			slog.Int64("version", st.Source.Version),
			slog.String("path", st.Source.Path),
			slog.String("state", string(st.State)),
		}
		if !st.AppliedAt.IsZero() {
			attrs = append(attrs, slog.Time("applied_at", st.AppliedAt))
		}
		r.logger.Info("migration status", attrs...)
	}
	return nil
}

// Version returns and logs the current schema version.
func (r *Runner) Version(ctx context.Context) (int64, error) {
	version, err := r.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}

	r.logger.Info("current schema version", slog.Int64("version", version))
	return version, nil
}

func (r *Runner) logResult(res *goose.MigrationResult) {
	attrs := []any{
		slog.String("direction", res.Direction),
		slog.Duration("duration", res.Duration),
	}
	if res.Source != nil {
		attrs = append(attrs,
			slog.Int64("version", res.Source.Version),
			slog.String("path", res.Source.Path))
	}
	if res.Error != nil {
		attrs = append(attrs, slog.String("error", res.Error.Error()))
		r.logger.Error("migration failed", attrs...)
		return
	}
	r.logger.Info("migration applied", attrs...)
}
