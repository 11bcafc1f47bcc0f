package api

import (
	"errors"
	"net/http"

	"github.com/dm-mensavi/task-management/internal/api/shared"
	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/service/auth"
	"github.com/dm-mensavi/task-management/internal/service/tasks"
	"github.com/dm-mensavi/task-management/internal/store"
)

// Client-facing messages for known error conditions.
const (
	MsgUsernameExists     = "Username already exists"
	MsgUserNotFound       = "User does not exist."
	MsgInvalidCredentials = "Please check your login credentials and try again"
	MsgTaskExists         = "Task already exist for this user"
	MsgNoTaskFound        = "No task found"
	MsgTaskNotFound       = "Task not found"
	MsgInvalidStatus      = "Invalid status value"
	MsgInvalidToken       = "Invalid token"
	MsgExpiredToken       = "Token expired"
	MsgInvalidRequest     = "Invalid request format"
	MsgInvalidEntity      = "Invalid entity data"
	MsgInternal           = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, tasks.ErrTaskNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, auth.ErrDuplicateUsername),
		errors.Is(err, tasks.ErrDuplicateTask):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, tasks.ErrInvalidStatus),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternal
	}

	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, auth.ErrExpiredToken):
		return MsgExpiredToken
	case errors.Is(err, auth.ErrUnauthenticated):
		return MsgInvalidToken

	case errors.Is(err, auth.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, tasks.ErrTaskNotFound):
		return MsgNoTaskFound

	case errors.Is(err, auth.ErrDuplicateUsername):
		return MsgUsernameExists
	case errors.Is(err, tasks.ErrDuplicateTask):
		return MsgTaskExists

	case errors.As(err, &validationErr):
		// built from fixed field names and rule descriptions only
		return validationErr.Error()
	case errors.Is(err, tasks.ErrInvalidStatus):
		return MsgInvalidStatus
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidEntity

	default:
		return MsgInternal
	}
}

// HandleAPIError maps err onto a status code and safe message, logs the
// detailed error and writes the response. A non-empty message overrides
// the mapped client message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" || status == http.StatusInternalServerError {
		message = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
