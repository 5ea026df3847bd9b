package api

import (
	"github.com/google/uuid"

	"github.com/todoapi/todoapi/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for authentication
// endpoints: a bearer access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateTodoRequest defines the payload for creating a todo.
type CreateTodoRequest struct {
	Task      string `json:"task" validate:"required"`
	Completed bool   `json:"completed"`
}

// UpdateTodoRequest defines the payload for partially updating a todo.
// Nil fields leave the stored values untouched; completed=false is an
// explicit un-completion.
type UpdateTodoRequest struct {
	Task      *string `json:"task"      validate:"omitempty,min=1"`
	Completed *bool   `json:"completed"`
}

// TodoResponse defines the representation of a todo returned to clients.
// Owner and timestamps stay internal.
type TodoResponse struct {
	ID        uuid.UUID `json:"id"`
	Task      string    `json:"task"`
	Completed bool      `json:"completed"`
}

// NewTodoResponse converts a domain Todo to its API representation.
func NewTodoResponse(todo *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        todo.ID,
		Task:      todo.Task,
		Completed: todo.Completed,
	}
}

// NewTodoListResponse converts a slice of domain Todos, preserving order.
func NewTodoListResponse(todos []*domain.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, NewTodoResponse(todo))
	}
	return out
}
