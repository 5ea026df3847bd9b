package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/store"
)

// MockTodoStore implements store.TodoStore for testing. The default
// implementation keeps todos in a map and honors the same ownership
// rules as the real store: lookups for another owner's todo report
// not-found, never the record.
type MockTodoStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, todo *domain.Todo) error
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Todo, error)
	GetForOwnerFn func(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error)
	UpdateFn      func(ctx context.Context, ownerID uuid.UUID, todo *domain.Todo) error
	DeleteFn      func(ctx context.Context, ownerID, todoID uuid.UUID) error
	CompleteFn    func(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error)

	mu sync.Mutex
	// Todos is the default implementation's backing map, keyed by todo ID.
	Todos map[uuid.UUID]*domain.Todo
}

// Ensure MockTodoStore implements store.TodoStore
var _ store.TodoStore = (*MockTodoStore)(nil)

// NewMockTodoStore creates a new mock store with initialized defaults.
func NewMockTodoStore() *MockTodoStore {
	return &MockTodoStore{
		Todos: make(map[uuid.UUID]*domain.Todo),
	}
}

// Create implements the TodoStore interface.
func (m *MockTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, todo)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *todo
	m.Todos[todo.ID] = &copied
	return nil
}

// ListByOwner implements the TodoStore interface, returning the owner's
// todos in creation order.
func (m *MockTodoStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Todo, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	todos := make([]*domain.Todo, 0)
	for _, todo := range m.Todos {
		if todo.UserID == ownerID {
			copied := *todo
			todos = append(todos, &copied)
		}
	}

	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.Before(todos[j].CreatedAt)
	})
	return todos, nil
}

// GetForOwner implements the TodoStore interface.
func (m *MockTodoStore) GetForOwner(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error) {
	if m.GetForOwnerFn != nil {
		return m.GetForOwnerFn(ctx, ownerID, todoID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	todo, err := m.getForOwnerLocked(ownerID, todoID)
	if err != nil {
		return nil, err
	}

	copied := *todo
	return &copied, nil
}

// Update implements the TodoStore interface.
func (m *MockTodoStore) Update(ctx context.Context, ownerID uuid.UUID, todo *domain.Todo) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, todo)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := m.getForOwnerLocked(ownerID, todo.ID)
	if err != nil {
		return err
	}

	existing.Task = todo.Task
	existing.Completed = todo.Completed
	existing.UpdatedAt = todo.UpdatedAt
	m.Todos[existing.ID] = existing
	return nil
}

// Delete implements the TodoStore interface.
func (m *MockTodoStore) Delete(ctx context.Context, ownerID, todoID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, todoID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getForOwnerLocked(ownerID, todoID); err != nil {
		return err
	}

	delete(m.Todos, todoID)
	return nil
}

// Complete implements the TodoStore interface.
func (m *MockTodoStore) Complete(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error) {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, ownerID, todoID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	todo, err := m.getForOwnerLocked(ownerID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Completed = true
	todo.UpdatedAt = time.Now().UTC()
	m.Todos[todo.ID] = todo

	copied := *todo
	return &copied, nil
}

// getForOwnerLocked looks up a todo scoped to its owner. Callers must
// hold m.mu. Returns the stored pointer, so mutations stick.
func (m *MockTodoStore) getForOwnerLocked(ownerID, todoID uuid.UUID) (*domain.Todo, error) {
	todo, exists := m.Todos[todoID]
	if !exists || todo.UserID != ownerID {
		return nil, store.ErrTodoNotFound
	}
	return todo, nil
}
