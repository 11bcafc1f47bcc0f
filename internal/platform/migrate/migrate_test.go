package migrate_test

import (
	"context"
	"testing"

	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/platform/migrate"
	"github.com/dm-mensavi/task-management/internal/platform/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T) (*migrate.Runner, *logger.TestLogBuffer) {
	t.Helper()

	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	buf, log := logger.NewTestLogger(t)
	runner, err := migrate.NewRunner(db, sqlite.Dialect, sqlite.Migrations(), log)
	require.NoError(t, err)
	return runner, buf
}

func TestRunnerLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	runner, buf := newRunner(t)

	require.NoError(t, runner.Run(ctx, migrate.CommandUp))
	version, err := runner.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	logger.AssertLogContains(t, buf, "00002_create_tasks.sql")

	// Applying again is a no-op.
	require.NoError(t, runner.Up(ctx))

	require.NoError(t, runner.Run(ctx, migrate.CommandStatus))
	logger.AssertLogContains(t, buf, "migration status")

	require.NoError(t, runner.Run(ctx, migrate.CommandDown))
	version, err = runner.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, runner.Run(ctx, migrate.CommandVersion))
}

func TestRunnerUnknownCommand(t *testing.T) {
	t.Parallel()

	runner, _ := newRunner(t)
	assert.ErrorIs(t, runner.Run(context.Background(), "reset"), migrate.ErrUnknownCommand)
}

func TestNewRunnerRequiresDB(t *testing.T) {
	t.Parallel()

	_, err := migrate.NewRunner(nil, sqlite.Dialect, sqlite.Migrations(), nil)
	assert.Error(t, err)
}
