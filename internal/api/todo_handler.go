package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/todoapi/todoapi/internal/api/shared"
	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/platform/logger"
	"github.com/todoapi/todoapi/internal/store"
)

// TodoHandler handles todo CRUD API requests. Every operation is scoped
// to the identity resolved by the auth middleware; the owner ID never
// comes from client input.
type TodoHandler struct {
	todoStore store.TodoStore
	validator *validator.Validate
}

// NewTodoHandler creates a new TodoHandler with the given dependencies.
func NewTodoHandler(todoStore store.TodoStore) *TodoHandler {
	return &TodoHandler{
		todoStore: todoStore,
		validator: validator.New(),
	}
}

// List handles GET /todos, returning the caller's todos in creation order.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	todos, err := h.todoStore.ListByOwner(r.Context(), userID)
	if err != nil {
		log.Error("failed to list todos", "error", err, "user_id", userID)
		HandleAPIError(w, r, err, "Failed to list todos")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTodoListResponse(todos))
}

// Get handles GET /todos/{id}. A todo that does not exist and a todo
// owned by someone else produce the same 404.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	todo, err := h.todoStore.GetForOwner(r.Context(), userID, todoID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTodoResponse(todo))
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	todo, err := domain.NewTodo(userID, req.Task, req.Completed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid todo data: "+err.Error())
		return
	}

	if err := h.todoStore.Create(r.Context(), todo); err != nil {
		log.Error("failed to create todo", "error", err, "user_id", userID)
		HandleAPIError(w, r, err, "Failed to create todo")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTodoResponse(todo))
}

// Update handles PUT /todos/{id} with partial semantics: absent fields
// keep their stored values, and completed=false explicitly un-completes.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, todoID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	todo, err := h.todoStore.GetForOwner(r.Context(), userID, todoID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	todo.Apply(req.Task, req.Completed)

	// Concurrent updates to the same record resolve last-writer-wins at
	// the store.
	if err := h.todoStore.Update(r.Context(), userID, todo); err != nil {
		log.Error("failed to update todo", "error", err, "todo_id", todoID)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTodoResponse(todo))
}

// Delete handles DELETE /todos/{id}. Deletion is permanent; success is a
// 204 with an empty body.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.todoStore.Delete(r.Context(), userID, todoID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Complete handles PATCH /todos/{id}/complete. It sets completed=true
// unconditionally (no toggle) and leaves the task text untouched.
func (h *TodoHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	todo, err := h.todoStore.Complete(r.Context(), userID, todoID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTodoResponse(todo))
}
