package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/todoapi/todoapi/internal/store"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic_not_found", store.ErrNotFound, true},
		{"user_not_found", store.ErrUserNotFound, true},
		{"todo_not_found", store.ErrTodoNotFound, true},
		{"wrapped_todo_not_found", fmt.Errorf("fetch: %w", store.ErrTodoNotFound), true},
		{"duplicate", store.ErrDuplicate, false},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, store.IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsDuplicateError(store.ErrDuplicate))
	assert.True(t, store.IsDuplicateError(store.ErrUsernameExists))
	assert.True(t, store.IsDuplicateError(fmt.Errorf("create: %w", store.ErrUsernameExists)))
	assert.False(t, store.IsDuplicateError(store.ErrNotFound))
	assert.False(t, store.IsDuplicateError(nil))
}
