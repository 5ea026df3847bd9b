package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoapi/todoapi/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid_user",
			username: "alice",
			password: "correct horse battery staple",
			wantErr:  nil,
		},
		{
			name:     "empty_username",
			username: "",
			password: "correct horse battery staple",
			wantErr:  domain.ErrEmptyUsername,
		},
		{
			name:     "username_too_long",
			username: strings.Repeat("a", domain.MaxUsernameLength+1),
			password: "correct horse battery staple",
			wantErr:  domain.ErrUsernameTooLong,
		},
		{
			name:     "short_password_allowed",
			username: "alice",
			password: "pw",
			wantErr:  nil,
		},
		{
			name:     "password_too_long",
			username: "alice",
			password: strings.Repeat("p", domain.MaxPasswordLength+1),
			wantErr:  domain.ErrPasswordTooLong,
		},
		{
			name:     "empty_password",
			username: "alice",
			password: "",
			wantErr:  domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := domain.NewUser(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.password, user.Password)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidate_LoadedFromStore(t *testing.T) {
	t.Parallel()

	// A record loaded from the database has no plaintext password but
	// must carry a hash.
	user := &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}
