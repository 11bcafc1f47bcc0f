package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dm-mensavi/task-management/internal/api"
	"github.com/dm-mensavi/task-management/internal/api/shared"
	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/mocks"
	"github.com/dm-mensavi/task-management/internal/service/tasks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// asUser injects user into every request as the auth middleware would.
func asUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = r.WithContext(shared.WithUserID(r.Context(), user.ID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// newTaskRouter mounts the task routes for user over svc.
func newTaskRouter(svc tasks.TaskService, user *domain.User) http.Handler {
	h := api.NewTaskHandler(svc, nil)
	r := chi.NewRouter()
	r.Use(asUser(user))
	r.Post("/tasks", h.CreateTask)
	r.Get("/tasks", h.ListTasks)
	r.Get("/tasks/{id}", h.GetTask)
	r.Patch("/tasks/{id}", h.UpdateTaskStatus)
	r.Delete("/tasks/{id}", h.DeleteTask)
	return r
}

// newInMemoryTaskService returns a real task service over an in-memory store.
func newInMemoryTaskService() tasks.TaskService {
	return tasks.NewTaskService(mocks.NewMockTaskStore(), nil)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
