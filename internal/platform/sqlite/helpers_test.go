package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/platform/migrate"
	"github.com/dm-mensavi/task-management/internal/platform/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated in-memory database that is closed when the test ends.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, log := logger.NewTestLogger(t)
	runner, err := migrate.NewRunner(db, sqlite.Dialect, sqlite.Migrations(), log)
	require.NoError(t, err)
	require.NoError(t, runner.Up(ctx))

	return db
}

func createUser(t *testing.T, users *sqlite.UserStore, username string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(username, "$2a$04$placeholderhashplaceholderhashplacehold")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func createTask(t *testing.T, tasks *sqlite.TaskStore, ownerID uuid.UUID, title, description string) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(ownerID, title, description, "")
	require.NoError(t, err)
	require.NoError(t, tasks.Create(context.Background(), task))
	return task
}
