package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/todoapi/todoapi/internal/api"
	"github.com/todoapi/todoapi/internal/config"
	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/mocks"
	"github.com/todoapi/todoapi/internal/service/auth"
)

const testSecret = "test-jwt-secret-thats-32-chars!!"

func newAuthTestDeps(t *testing.T) (*mocks.MockUserStore, auth.JWTService, auth.PasswordHasher) {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:       testSecret,
		TokenTTLMinutes: 30,
	})
	require.NoError(t, err)

	// MinCost keeps the hashing fast; the handler behavior under test does
	// not depend on the work factor.
	return mocks.NewMockUserStore(), jwtService, auth.NewBcryptHasher(bcrypt.MinCost)
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	userStore, jwtService, hasher := newAuthTestDeps(t)
	handler := api.NewAuthHandler(userStore, jwtService, hasher)

	rr := postJSON(t, handler.Register, "/register", api.RegisterRequest{
		Username: "alice",
		Password: "correct horse battery staple",
	})

	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)

	// The issued token must resolve back to the new user.
	claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	stored, err := userStore.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, stored.ID)
	assert.Empty(t, stored.Password, "plaintext must not reach the store")
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NoError(t, hasher.Compare(stored.HashedPassword, "correct horse battery staple"))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	userStore, jwtService, hasher := newAuthTestDeps(t)
	handler := api.NewAuthHandler(userStore, jwtService, hasher)

	first := postJSON(t, handler.Register, "/register", api.RegisterRequest{
		Username: "alice",
		Password: "password-one",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, handler.Register, "/register", api.RegisterRequest{
		Username: "alice",
		Password: "password-two",
	})
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "Username already exists")
}

func TestRegister_InvalidInput(t *testing.T) {
	t.Parallel()

	userStore, jwtService, hasher := newAuthTestDeps(t)
	handler := api.NewAuthHandler(userStore, jwtService, hasher)

	tests := []struct {
		name string
		req  api.RegisterRequest
	}{
		{
			name: "missing_username",
			req:  api.RegisterRequest{Password: "long-enough-password"},
		},
		{
			name: "missing_password",
			req:  api.RegisterRequest{Username: "alice"},
		},
		{
			name: "password_too_long",
			req: api.RegisterRequest{
				Username: "alice",
				Password: strings.Repeat("p", domain.MaxPasswordLength+1),
			},
		},
		{
			name: "username_too_long",
			req: api.RegisterRequest{
				Username: strings.Repeat("a", domain.MaxUsernameLength+1),
				Password: "long-enough-password",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := postJSON(t, handler.Register, "/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestRegister_MalformedBody(t *testing.T) {
	t.Parallel()

	userStore, jwtService, hasher := newAuthTestDeps(t)
	handler := api.NewAuthHandler(userStore, jwtService, hasher)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.Register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid request format")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	userStore, jwtService, hasher := newAuthTestDeps(t)
	handler := api.NewAuthHandler(userStore, jwtService, hasher)

	hashed, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	userStore.Users["alice"] = &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: hashed,
		CreatedAt:      time.Now().UTC(),
	}

	rr := postJSON(t, handler.Login, "/login", api.LoginRequest{
		Username: "alice",
		Password: "correct horse battery staple",
	})

	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	userStore, jwtService, hasher := newAuthTestDeps(t)
	handler := api.NewAuthHandler(userStore, jwtService, hasher)

	hashed, err := hasher.Hash("the-right-password")
	require.NoError(t, err)
	userStore.Users["alice"] = &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: hashed,
		CreatedAt:      time.Now().UTC(),
	}

	wrongPassword := postJSON(t, handler.Login, "/login", api.LoginRequest{
		Username: "alice",
		Password: "the-wrong-password",
	})
	unknownUser := postJSON(t, handler.Login, "/login", api.LoginRequest{
		Username: "nobody",
		Password: "the-right-password",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

	// Same status and same message either way; the response must not leak
	// whether the username exists.
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid username or password")
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	userStore, jwtService, hasher := newAuthTestDeps(t)
	handler := api.NewAuthHandler(userStore, jwtService, hasher)

	rr := postJSON(t, handler.Login, "/login", api.LoginRequest{Username: "alice"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
