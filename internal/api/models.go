package api

import (
	"time"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/google/uuid"
)

// Common request/response structures

// CredentialsRequest defines the payload for the signup and signin endpoints.
// Length and strength rules are applied by the auth service.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse defines the successful response for the signin endpoint.
type SignInResponse struct {
	Message string `json:"message"`

	// Token is the bearer token for subsequent requests
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// CreateTaskRequest defines the payload for creating a task.
// Status is optional and defaults to OPEN.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"`
}

// UpdateTaskStatusRequest defines the payload for changing a task's status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TaskResponse defines the response structure for a task.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeleteTaskResponse confirms a deletion.
type DeleteTaskResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func tasksToResponse(list []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, task := range list {
		out = append(out, taskToResponse(task))
	}
	return out
}
