package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/todoapi/todoapi/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{
			name:    "nil_error",
			err:     nil,
			wantNil: true,
		},
		{
			name:   "no_rows_maps_to_not_found",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique_violation_maps_to_duplicate",
			err:    &pgconn.PgError{Code: uniqueViolationCode},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "fk_violation_maps_to_invalid_entity",
			err:    &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "todos_user_id_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not_null_violation_maps_to_invalid_entity",
			err:    &pgconn.PgError{Code: notNullViolationCode, ColumnName: "task"},
			wantIs: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	unknown := errors.New("connection reset")
	assert.Same(t, unknown, MapError(unknown))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsForeignKeyViolation(nil))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrTodoNotFound))
	assert.ErrorIs(t,
		CheckRowsAffected(fakeResult{rows: 0}, store.ErrTodoNotFound),
		store.ErrTodoNotFound)

	err := CheckRowsAffected(fakeResult{err: errors.New("driver broke")}, store.ErrTodoNotFound)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrTodoNotFound)
}
