package tasks

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/store"
	"github.com/google/uuid"
)

type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService backed by the given store.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) TaskService {
	if tasks == nil {
		panic("tasks cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	input CreateTaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("owner_id", ownerID.String()))

	task, err := domain.NewTask(ownerID, input.Title, input.Description, domain.TaskStatus(input.Status))
	if err != nil {
		return nil, err
	}

	exists, err := s.tasks.ExistsForOwner(ctx, ownerID, task.Title, task.Description)
	if err != nil {
		log.Error("failed to check for duplicate task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to check for duplicate", err)
	}
	if exists {
		log.Debug("task creation rejected: duplicate")
		return nil, ErrDuplicateTask
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskExists) {
			log.Debug("task creation rejected by storage: duplicate")
			return nil, ErrDuplicateTask
		}
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", slog.String("task_id", task.ID.String()))
	return task, nil
}

// GetTaskByID implements TaskService.GetTaskByID.
func (s *taskServiceImpl) GetTaskByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, s.mapStoreError(ctx, "get_task", id, err)
	}
	return task, nil
}

// ListTasks implements TaskService.ListTasks.
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	ownerID uuid.UUID,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	list, err := s.tasks.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	if len(list) == 0 {
		return nil, ErrTaskNotFound
	}
	return list, nil
}

// UpdateTaskStatus implements TaskService.UpdateTaskStatus.
func (s *taskServiceImpl) UpdateTaskStatus(
	ctx context.Context,
	ownerID, id uuid.UUID,
	status string,
) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, s.mapStoreError(ctx, "update_task_status", id, err)
	}

	if err := task.UpdateStatus(domain.TaskStatus(status)); err != nil {
		return nil, ErrInvalidStatus
	}

	if err := s.tasks.UpdateStatus(ctx, task); err != nil {
		return nil, s.mapStoreError(ctx, "update_task_status", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task status updated",
		slog.String("task_id", id.String()),
		slog.String("status", string(task.Status)))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) (*DeleteResult, error) {
	if _, err := s.tasks.GetByID(ctx, ownerID, id); err != nil {
		return nil, s.mapStoreError(ctx, "delete_task", id, err)
	}

	// the delete is owner-scoped too, so a concurrent delete still ends in not-found
	if err := s.tasks.Delete(ctx, ownerID, id); err != nil {
		return nil, s.mapStoreError(ctx, "delete_task", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task deleted", slog.String("task_id", id.String()))
	return &DeleteResult{ID: id, Message: DeletedMessage}, nil
}

// mapStoreError turns store not-found into ErrTaskNotFound and wraps the rest.
func (s *taskServiceImpl) mapStoreError(ctx context.Context, operation string, id uuid.UUID, err error) error {
	if errors.Is(err, store.ErrTaskNotFound) || errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("task store operation failed",
		slog.String("operation", operation),
		slog.String("task_id", id.String()),
		slog.String("error", err.Error()))
	return NewTaskServiceError(operation, "store operation failed", err)
}
