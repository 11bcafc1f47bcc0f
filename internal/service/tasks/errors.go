package tasks

import (
	"errors"
	"fmt"

	"github.com/dm-mensavi/task-management/internal/domain"
)

// Sentinel errors returned by TaskService. The API layer maps these to
// HTTP status codes.
var (
	// ErrDuplicateTask indicates the owner already has a task with the same
	// title and description.
	ErrDuplicateTask = errors.New("task already exists for this user")

	// ErrTaskNotFound indicates no task matched for this owner. Listing
	// returns it when the filtered result is empty.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidStatus indicates a status outside OPEN, IN_PROGRESS and DONE.
	ErrInvalidStatus = domain.ErrInvalidTaskStatus
)

// TaskServiceError is a custom error type for unexpected task service failures.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
