package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the progress of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskOwnerID = errors.New("task owner ID cannot be empty")
)

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task for the given owner.
// An empty status defaults to TaskStatusOpen.
func NewTask(ownerID uuid.UUID, title, description string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusOpen
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.OwnerID == uuid.Nil {
		return ErrEmptyTaskOwnerID
	}

	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty")
	}

	if strings.TrimSpace(t.Description) == "" {
		return NewValidationError("description", "cannot be empty")
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	return nil
}

// UpdateStatus sets the task's status and refreshes UpdatedAt.
func (t *Task) UpdateStatus(status TaskStatus) error {
	if !status.IsValid() {
		return ErrInvalidTaskStatus
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsValid reports whether s is one of the defined statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts s to a TaskStatus. Matching is exact.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}

// TaskFilter narrows a listing of an owner's tasks.
// Nil fields are not applied.
type TaskFilter struct {
	Status *TaskStatus
	Search *string
}
