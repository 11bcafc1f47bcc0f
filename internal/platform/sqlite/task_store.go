package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/store"
	"github.com/google/uuid"
)

const taskColumns = "id, owner_id, title, description, status, created_at, updated_at"

// TaskStore implements store.TaskStore on SQLite.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a SQLite-backed TaskStore.
func NewTaskStore(db store.DBTX, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO tasks (id, owner_id, title, description, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID.String(),
		task.OwnerID.String(),
		task.Title,
		task.Description,
		string(task.Status),
		formatTime(task.CreatedAt),
		formatTime(task.UpdatedAt),
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrTaskExists, err)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", task.OwnerID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND owner_id = ?`,
		id.String(), ownerID.String())

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, store.NewStoreError("task", "get", "failed to query task", err)
	}
	return task, nil
}

// ExistsForOwner implements store.TaskStore.ExistsForOwner
func (s *TaskStore) ExistsForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
SELECT EXISTS (
	SELECT 1 FROM tasks WHERE owner_id = ? AND title = ? AND description = ?
)`, ownerID.String(), title, description).Scan(&exists)
	if err != nil {
		return false, store.NewStoreError("task", "exists", "failed to query task", err)
	}
	return exists, nil
}

// ListByOwner implements store.TaskStore.ListByOwner
func (s *TaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ?`)
	args := []any{ownerID.String()}

	if filter.Status != nil {
		sb.WriteString(` AND status = ?`)
		args = append(args, string(*filter.Status))
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := store.ContainsPattern(*filter.Search)
		sb.WriteString(` AND (` + foldFunc + `(title) LIKE ? ESCAPE '\' OR ` + foldFunc + `(description) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	sb.WriteString(` ORDER BY created_at ASC, rowid ASC`)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, store.NewStoreError("task", "list", "failed to query tasks", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "list", "failed to scan task", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "failed to iterate tasks", err)
	}

	return tasks, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus
func (s *TaskStore) UpdateStatus(ctx context.Context, task *domain.Task) error {
	if !task.Status.IsValid() {
		return domain.ErrInvalidTaskStatus
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		string(task.Status), formatTime(task.UpdatedAt), task.ID.String(), task.OwnerID.String())
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update task status",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return store.NewStoreError("task", "update", "failed to update task status", MapError(err))
	}

	return checkRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND owner_id = ?`,
		id.String(), ownerID.String())
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return store.NewStoreError("task", "delete", "failed to delete task", err)
	}

	return checkRowsAffected(result, store.ErrTaskNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task               domain.Task
		status             string
		createdAt, updated string
	)

	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&status,
		&createdAt,
		&updated,
	); err != nil {
		return nil, err
	}

	var err error
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	task.Status = domain.TaskStatus(status)

	return &task, nil
}
