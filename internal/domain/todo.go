package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common todo validation errors.
var (
	ErrEmptyTodoID    = errors.New("todo ID cannot be empty")
	ErrEmptyTodoOwner = errors.New("todo owner ID cannot be empty")
	ErrEmptyTask      = errors.New("task cannot be empty")
)

// Todo represents a single task item owned by exactly one user. The owner
// is fixed at creation; only the task text and completed flag are mutable.
type Todo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Task      string    `json:"task"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTodo creates a new Todo for the given owner. It generates a new UUID
// for the todo ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTodo(userID uuid.UUID, task string, completed bool) (*Todo, error) {
	now := time.Now().UTC()
	todo := &Todo{
		ID:        uuid.New(),
		UserID:    userID,
		Task:      task,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	return todo, nil
}

// Validate checks if the Todo has valid data.
func (t *Todo) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTodoID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTodoOwner
	}

	if t.Task == "" {
		return ErrEmptyTask
	}

	return nil
}

// Apply merges a partial update into the todo. Nil fields leave the
// existing values untouched; a non-nil completed=false explicitly
// un-completes the todo. The update timestamp is refreshed only when
// something is set.
func (t *Todo) Apply(task *string, completed *bool) {
	if task == nil && completed == nil {
		return
	}

	if task != nil {
		t.Task = *task
	}
	if completed != nil {
		t.Completed = *completed
	}
	t.UpdatedAt = time.Now().UTC()
}
