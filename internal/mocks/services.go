package mocks

import (
	"context"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/service/auth"
	"github.com/dm-mensavi/task-management/internal/service/tasks"
	"github.com/google/uuid"
)

// MockAuthService implements auth.AuthService for testing
type MockAuthService struct {
	RegisterFn     func(ctx context.Context, username, password string) (string, error)
	AuthenticateFn func(ctx context.Context, username, password string) (*auth.SignInResult, error)
}

var _ auth.AuthService = (*MockAuthService)(nil)

// Register implements auth.AuthService
func (m *MockAuthService) Register(ctx context.Context, username, password string) (string, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, password)
	}
	return "", nil
}

// Authenticate implements auth.AuthService
func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*auth.SignInResult, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, username, password)
	}
	return nil, nil
}

// MockSessionVerifier implements auth.SessionVerifier for testing.
// Without VerifyFn it returns User, or ErrMissingToken for an empty token.
type MockSessionVerifier struct {
	VerifyFn func(ctx context.Context, rawToken string) (*domain.User, error)
	User     *domain.User
}

var _ auth.SessionVerifier = (*MockSessionVerifier)(nil)

// Verify implements auth.SessionVerifier
func (m *MockSessionVerifier) Verify(ctx context.Context, rawToken string) (*domain.User, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, rawToken)
	}
	if rawToken == "" {
		return nil, auth.ErrMissingToken
	}
	if m.User == nil {
		return nil, auth.ErrInvalidToken
	}
	return m.User, nil
}

// MockTaskService implements tasks.TaskService for testing
type MockTaskService struct {
	CreateTaskFn       func(ctx context.Context, ownerID uuid.UUID, input tasks.CreateTaskInput) (*domain.Task, error)
	GetTaskByIDFn      func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
	ListTasksFn        func(ctx context.Context, ownerID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)
	UpdateTaskStatusFn func(ctx context.Context, ownerID, id uuid.UUID, status string) (*domain.Task, error)
	DeleteTaskFn       func(ctx context.Context, ownerID, id uuid.UUID) (*tasks.DeleteResult, error)
}

var _ tasks.TaskService = (*MockTaskService)(nil)

// CreateTask implements tasks.TaskService
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	input tasks.CreateTaskInput,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, ownerID, input)
	}
	return nil, nil
}

// GetTaskByID implements tasks.TaskService
func (m *MockTaskService) GetTaskByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	if m.GetTaskByIDFn != nil {
		return m.GetTaskByIDFn(ctx, ownerID, id)
	}
	return nil, tasks.ErrTaskNotFound
}

// ListTasks implements tasks.TaskService
func (m *MockTaskService) ListTasks(
	ctx context.Context,
	ownerID uuid.UUID,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, ownerID, filter)
	}
	return nil, tasks.ErrTaskNotFound
}

// UpdateTaskStatus implements tasks.TaskService
func (m *MockTaskService) UpdateTaskStatus(
	ctx context.Context,
	ownerID, id uuid.UUID,
	status string,
) (*domain.Task, error) {
	if m.UpdateTaskStatusFn != nil {
		return m.UpdateTaskStatusFn(ctx, ownerID, id, status)
	}
	return nil, tasks.ErrTaskNotFound
}

// DeleteTask implements tasks.TaskService
func (m *MockTaskService) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) (*tasks.DeleteResult, error) {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, ownerID, id)
	}
	return nil, tasks.ErrTaskNotFound
}
