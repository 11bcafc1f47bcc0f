package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dm-mensavi/task-management/internal/api/shared"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/service/auth"
	"github.com/dm-mensavi/task-management/internal/service/tasks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// taskIDParam is the chi path parameter holding a task id.
const taskIDParam = "id"

// taskNotFoundMessage is the client message for a task id that does not
// resolve for the caller.
func taskNotFoundMessage(id string) string {
	return fmt.Sprintf("Task with ID %s not found", id)
}

// requireUserID extracts the authenticated user's ID placed in the context
// by the auth middleware. It writes a 401 and returns false if absent.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return uuid.Nil, false
	}
	return userID, true
}

// handleUserIDAndTaskID extracts the user ID from context and the task id
// from the path. A malformed id cannot name any task, so it is answered
// with a 404 that does not echo the path value.
func handleUserIDAndTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	raw := chi.URLParam(r, taskIDParam)
	taskID, err := uuid.Parse(raw)
	if err != nil {
		logger.FromContext(r.Context()).Debug("malformed task id",
			slog.Int("length", len(raw)))
		HandleAPIError(w, r, tasks.ErrTaskNotFound, MsgTaskNotFound)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, taskID, true
}
