package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/platform/logger"
	"github.com/todoapi/todoapi/internal/store"
)

// PostgresTodoStore implements the store.TodoStore interface
// using a PostgreSQL database as the storage backend.
//
// Every query filters by both the todo ID and the owner's user ID, so a
// todo that exists under another owner is indistinguishable from one
// that does not exist at all. Each write is a single statement, which
// gives the atomic per-record commit the callers rely on.
type PostgresTodoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTodoStore creates a new PostgreSQL implementation of the
// TodoStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTodoStore(db store.DBTX, logger *slog.Logger) *PostgresTodoStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_store")),
	}
}

// Ensure PostgresTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*PostgresTodoStore)(nil)

// Create implements store.TodoStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist (foreign
// key violation).
func (s *PostgresTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Warn("todo validation failed during create",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()))
		return err
	}

	query := `
		INSERT INTO todos (id, user_id, task, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		todo.ID,
		todo.UserID,
		todo.Task,
		todo.Completed,
		todo.CreatedAt,
		todo.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during todo creation",
				slog.String("todo_id", todo.ID.String()),
				slog.String("user_id", todo.UserID.String()))
			return fmt.Errorf("%w: owner with ID %s not found",
				store.ErrInvalidEntity, todo.UserID)
		}

		log.Error("failed to create todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()))
		return MapError(err)
	}

	log.Info("todo created successfully",
		slog.String("todo_id", todo.ID.String()),
		slog.String("user_id", todo.UserID.String()))
	return nil
}

// ListByOwner implements store.TodoStore.ListByOwner
// Results come back in creation order for deterministic listings.
func (s *PostgresTodoStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, task, completed, created_at, updated_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list todos",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.Task,
			&todo.Completed,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			log.Error("failed to scan todo row",
				slog.String("error", err.Error()),
				slog.String("user_id", ownerID.String()))
			return nil, MapError(err)
		}
		todos = append(todos, &todo)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return todos, nil
}

// GetForOwner implements store.TodoStore.GetForOwner
// Returns store.ErrTodoNotFound if no such todo exists for that owner.
func (s *PostgresTodoStore) GetForOwner(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, task, completed, created_at, updated_at
		FROM todos
		WHERE id = $1 AND user_id = $2
	`

	var todo domain.Todo
	err := s.db.QueryRowContext(ctx, query, todoID, ownerID).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Task,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("todo not found for owner",
				slog.String("todo_id", todoID.String()),
				slog.String("user_id", ownerID.String()))
			return nil, store.ErrTodoNotFound
		}
		log.Error("failed to get todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", todoID.String()))
		return nil, MapError(err)
	}

	return &todo, nil
}

// Update implements store.TodoStore.Update
// The write is a single statement scoped by owner; zero affected rows
// collapse to store.ErrTodoNotFound.
func (s *PostgresTodoStore) Update(ctx context.Context, ownerID uuid.UUID, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Warn("todo validation failed during update",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()))
		return err
	}

	query := `
		UPDATE todos
		SET task = $1, completed = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		todo.Task,
		todo.Completed,
		todo.UpdatedAt,
		todo.ID,
		ownerID,
	)
	if err != nil {
		log.Error("failed to update todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTodoNotFound)
}

// Delete implements store.TodoStore.Delete
// Deletion is immediate and permanent; repeating it yields
// store.ErrTodoNotFound.
func (s *PostgresTodoStore) Delete(ctx context.Context, ownerID, todoID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, todoID, ownerID)
	if err != nil {
		log.Error("failed to delete todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", todoID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTodoNotFound); err != nil {
		return err
	}

	log.Info("todo deleted",
		slog.String("todo_id", todoID.String()),
		slog.String("user_id", ownerID.String()))
	return nil
}

// Complete implements store.TodoStore.Complete
// Sets completed unconditionally and returns the updated record in the
// same statement.
func (s *PostgresTodoStore) Complete(ctx context.Context, ownerID, todoID uuid.UUID) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE todos
		SET completed = TRUE, updated_at = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, task, completed, created_at, updated_at
	`

	var todo domain.Todo
	err := s.db.QueryRowContext(ctx, query, time.Now().UTC(), todoID, ownerID).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Task,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("todo not found for owner",
				slog.String("todo_id", todoID.String()),
				slog.String("user_id", ownerID.String()))
			return nil, store.ErrTodoNotFound
		}
		log.Error("failed to complete todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", todoID.String()))
		return nil, MapError(err)
	}

	return &todo, nil
}
