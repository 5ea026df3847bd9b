package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/todoapi/todoapi/internal/domain"
)

// TodoStore defines the interface for todo data persistence.
//
// Every read and write is scoped by the owner's user ID, which callers
// obtain from a resolved identity, never from client input. Operations
// against an ID that does not exist and operations against an ID owned
// by a different user both return ErrTodoNotFound; the store never
// reveals which of the two occurred.
type TodoStore interface {
	// Create saves a new todo to the store.
	// Returns ErrInvalidEntity if the owner does not exist.
	// Returns validation errors from the domain Todo if data is invalid.
	Create(ctx context.Context, todo *domain.Todo) error

	// ListByOwner retrieves all todos owned by the given user, in
	// creation order. An owner with no todos yields an empty slice.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Todo, error)

	// GetForOwner retrieves a single todo by ID, scoped to the owner.
	// Returns ErrTodoNotFound if no such todo exists for that owner.
	GetForOwner(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error)

	// Update writes the todo's mutable fields (task, completed,
	// updated_at), scoped to the owner. The write is a single atomic
	// statement; concurrent updates resolve last-writer-wins.
	// Returns ErrTodoNotFound if no such todo exists for that owner.
	Update(ctx context.Context, ownerID uuid.UUID, todo *domain.Todo) error

	// Delete removes a todo permanently, scoped to the owner.
	// Returns ErrTodoNotFound if no such todo exists for that owner;
	// repeating a delete therefore also yields ErrTodoNotFound.
	Delete(ctx context.Context, ownerID, todoID uuid.UUID) error

	// Complete marks a todo as completed, leaving the task text
	// untouched, and returns the updated record. Completing an
	// already-completed todo is a no-op that still returns the record.
	// Returns ErrTodoNotFound if no such todo exists for that owner.
	Complete(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error)
}
