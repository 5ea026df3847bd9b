package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/todoapi/todoapi/internal/config"
	"github.com/todoapi/todoapi/internal/platform/postgres"
	"github.com/todoapi/todoapi/internal/service/auth"
	"github.com/todoapi/todoapi/internal/store"
)

// application holds the server's wired dependencies. Everything the
// router and handlers need is constructed once here and injected down.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	todoStore store.TodoStore

	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
}

// newApplication connects to the database and constructs the stores and
// services from the loaded configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	tokenLifetime := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	logger.Info("Authentication configured",
		"token_ttl", tokenLifetime,
		"bcrypt_cost", cfg.Auth.BcryptCost)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		userStore:      postgres.NewPostgresUserStore(db, logger),
		todoStore:      postgres.NewPostgresTodoStore(db, logger),
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
