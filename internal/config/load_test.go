package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoapi/todoapi/internal/config"
)

// validSecret is a 32+ character JWT secret for test configuration.
const validSecret = "0123456789abcdef0123456789abcdef"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TODOAPI_DATABASE_URL", "postgres://localhost:5432/todoapi_test")
	t.Setenv("TODOAPI_AUTH_JWT_SECRET", validSecret)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, 0, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres://localhost:5432/todoapi_test", cfg.Database.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TODOAPI_SERVER_PORT", "9090")
	t.Setenv("TODOAPI_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TODOAPI_AUTH_TOKEN_TTL_MINUTES", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.Auth.TokenTTLMinutes)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing_database_url",
			env: map[string]string{
				"TODOAPI_AUTH_JWT_SECRET": validSecret,
			},
		},
		{
			name: "missing_jwt_secret",
			env: map[string]string{
				"TODOAPI_DATABASE_URL": "postgres://localhost:5432/todoapi_test",
			},
		},
		{
			name: "jwt_secret_too_short",
			env: map[string]string{
				"TODOAPI_DATABASE_URL":    "postgres://localhost:5432/todoapi_test",
				"TODOAPI_AUTH_JWT_SECRET": "short-secret",
			},
		},
		{
			name: "invalid_log_level",
			env: map[string]string{
				"TODOAPI_DATABASE_URL":     "postgres://localhost:5432/todoapi_test",
				"TODOAPI_AUTH_JWT_SECRET":  validSecret,
				"TODOAPI_SERVER_LOG_LEVEL": "loud",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, strings.Contains(err.Error(), "invalid configuration"))
		})
	}
}
