package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dm-mensavi/task-management/internal/api/shared"
	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/service/tasks"
	"github.com/google/uuid"
)

// TaskHandler handles the owner-scoped task endpoints.
type TaskHandler struct {
	taskService tasks.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService tasks.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		panic("taskService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			shared.ValidationMessage(err, "Validation error"), err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), userID, tasks.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks with optional status and search query parameters.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var filter domain.TaskFilter
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		filter.Status = &status
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}

	list, err := h.taskService.ListTasks(r.Context(), userID, filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(list))
}

// GetTask handles GET /tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(r.Context(), userID, taskID)
	if err != nil {
		h.handleTaskError(w, r, taskID, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTaskStatus handles PATCH /tasks/{id}.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskStatusRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			shared.ValidationMessage(err, "Validation error"), err)
		return
	}

	task, err := h.taskService.UpdateTaskStatus(r.Context(), userID, taskID, req.Status)
	if err != nil {
		h.handleTaskError(w, r, taskID, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	result, err := h.taskService.DeleteTask(r.Context(), userID, taskID)
	if err != nil {
		h.handleTaskError(w, r, taskID, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		ID:      result.ID,
		Message: result.Message,
	})
}

// handleTaskError names the task id in not-found responses.
func (h *TaskHandler) handleTaskError(w http.ResponseWriter, r *http.Request, taskID uuid.UUID, err error) {
	if errors.Is(err, tasks.ErrTaskNotFound) {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("task not found for owner",
			slog.String("task_id", taskID.String()))
		HandleAPIError(w, r, err, taskNotFoundMessage(taskID.String()))
		return
	}
	HandleAPIError(w, r, err, "")
}
