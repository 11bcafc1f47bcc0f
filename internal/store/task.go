package store

import (
	"context"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/google/uuid"
)

// TaskStore defines the interface for task data persistence.
// Every lookup is scoped to an owner: a task that exists but belongs to
// another user is reported as ErrTaskNotFound.
type TaskStore interface {
	// Create saves a new task.
	// Returns ErrTaskExists if the owner already has a task with the same
	// title and description.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves one of ownerID's tasks.
	// Returns ErrTaskNotFound if it does not exist or is owned by another user.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)

	// ExistsForOwner reports whether ownerID already has a task with exactly
	// this title and description.
	ExistsForOwner(ctx context.Context, ownerID uuid.UUID, title, description string) (bool, error)

	// ListByOwner returns ownerID's tasks matching filter, oldest first.
	// The search term matches title or description case-insensitively.
	// An empty slice is not an error.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)

	// UpdateStatus persists task.Status and task.UpdatedAt for the task
	// identified by task.ID and task.OwnerID.
	// Returns ErrTaskNotFound if no row was affected.
	UpdateStatus(ctx context.Context, task *domain.Task) error

	// Delete removes one of ownerID's tasks.
	// Returns ErrTaskNotFound if no row was affected.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
