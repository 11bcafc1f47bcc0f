package postgres

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

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, owner_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate task for owner",
				slog.String("owner_id", task.OwnerID.String()))
			return MapUniqueViolation(err, store.ErrTaskExists)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("owner_id", task.OwnerID.String()))
		return store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", task.OwnerID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.String("task_id", id.String()),
				slog.String("owner_id", ownerID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, store.NewStoreError("task", "get", "failed to query task", err)
	}

	return task, nil
}

// ExistsForOwner implements store.TaskStore.ExistsForOwner
func (s *PostgresTaskStore) ExistsForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tasks
			WHERE owner_id = $1 AND title = $2 AND description = $3
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, ownerID, title, description).Scan(&exists); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check task existence",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return false, store.NewStoreError("task", "exists", "failed to query task", err)
	}

	return exists, nil
}

// ListByOwner implements store.TaskStore.ListByOwner
func (s *PostgresTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1`)
	args := []any{ownerID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, store.ContainsPattern(*filter.Search))
		n := len(args)
		fmt.Fprintf(&sb,
			` AND (LOWER(title) LIKE $%d ESCAPE '\' OR LOWER(description) LIKE $%d ESCAPE '\')`,
			n, n)
	}
	sb.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		log.Error("failed to list tasks",
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

	log.Debug("tasks listed",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus
func (s *PostgresTaskStore) UpdateStatus(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !task.Status.IsValid() {
		return domain.ErrInvalidTaskStatus
	}

	query := `
		UPDATE tasks
		SET status = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
	`
	result, err := s.db.ExecContext(ctx, query, string(task.Status), task.UpdatedAt, task.ID, task.OwnerID)
	if err != nil {
		log.Error("failed to update task status",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return store.NewStoreError("task", "update", "failed to update task status", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	log.Info("task status updated",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return store.NewStoreError("task", "delete", "failed to delete task", err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var status string

	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	return &task, nil
}
