package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/store"
	"github.com/google/uuid"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	CreateFn         func(ctx context.Context, task *domain.Task) error
	GetByIDFn        func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
	ExistsForOwnerFn func(ctx context.Context, ownerID uuid.UUID, title, description string) (bool, error)
	ListByOwnerFn    func(ctx context.Context, ownerID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)
	UpdateStatusFn   func(ctx context.Context, task *domain.Task) error
	DeleteFn         func(ctx context.Context, ownerID, id uuid.UUID) error

	mu    sync.Mutex
	tasks []*domain.Task // insertion order
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with an empty in-memory backend
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.tasks {
		if existing.OwnerID == task.OwnerID &&
			existing.Title == task.Title &&
			existing.Description == task.Description {
			return store.ErrTaskExists
		}
	}
	stored := *task
	m.tasks = append(m.tasks, &stored)
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(ownerID, id); i >= 0 {
		found := *m.tasks[i]
		return &found, nil
	}
	return nil, store.ErrTaskNotFound
}

// ExistsForOwner implements the TaskStore interface
func (m *MockTaskStore) ExistsForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
) (bool, error) {
	if m.ExistsForOwnerFn != nil {
		return m.ExistsForOwnerFn(ctx, ownerID, title, description)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, task := range m.tasks {
		if task.OwnerID == ownerID && task.Title == title && task.Description == description {
			return true, nil
		}
	}
	return false, nil
}

// ListByOwner implements the TaskStore interface
func (m *MockTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var term string
	if filter.Search != nil {
		term = strings.ToLower(*filter.Search)
	}

	result := make([]*domain.Task, 0)
	for _, task := range m.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(task.Title), term) &&
			!strings.Contains(strings.ToLower(task.Description), term) {
			continue
		}
		found := *task
		result = append(result, &found)
	}
	return result, nil
}

// UpdateStatus implements the TaskStore interface
func (m *MockTaskStore) UpdateStatus(ctx context.Context, task *domain.Task) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, task)
	}

	if !task.Status.IsValid() {
		return domain.ErrInvalidTaskStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(task.OwnerID, task.ID)
	if i < 0 {
		return store.ErrTaskNotFound
	}
	m.tasks[i].Status = task.Status
	m.tasks[i].UpdatedAt = task.UpdatedAt
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(ownerID, id)
	if i < 0 {
		return store.ErrTaskNotFound
	}
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return nil
}

// Count returns the number of tasks held by the in-memory backend.
func (m *MockTaskStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// indexOf must be called with mu held.
func (m *MockTaskStore) indexOf(ownerID, id uuid.UUID) int {
	for i, task := range m.tasks {
		if task.ID == id && task.OwnerID == ownerID {
			return i
		}
	}
	return -1
}
