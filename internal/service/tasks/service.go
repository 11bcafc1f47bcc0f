package tasks

import (
	"context"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/google/uuid"
)

// CreateTaskInput carries the caller-supplied fields of a new task.
// An empty Status means OPEN.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// DeleteResult confirms a deletion.
type DeleteResult struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// DeletedMessage is the confirmation returned by DeleteTask.
const DeletedMessage = "Task deleted successfully"

// TaskService provides owner-scoped task operations.
type TaskService interface {
	// CreateTask validates input and stores a new task for ownerID.
	// Returns ErrDuplicateTask if the owner already has a task with the same
	// title and description.
	CreateTask(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*domain.Task, error)

	// GetTaskByID returns one of ownerID's tasks or ErrTaskNotFound.
	GetTaskByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)

	// ListTasks returns ownerID's tasks matching filter, oldest first.
	// An empty result is reported as ErrTaskNotFound.
	ListTasks(ctx context.Context, ownerID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)

	// UpdateTaskStatus changes a task's status and returns the updated task.
	// The task is resolved before the status is validated, so an unknown id
	// wins over a bad status.
	UpdateTaskStatus(ctx context.Context, ownerID, id uuid.UUID, status string) (*domain.Task, error)

	// DeleteTask removes one of ownerID's tasks.
	DeleteTask(ctx context.Context, ownerID, id uuid.UUID) (*DeleteResult, error)
}
