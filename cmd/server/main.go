// Package main implements the entry point for the todo API server,
// which handles user registration and login and exposes per-user todo
// management over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/todoapi/todoapi/internal/config"
	"github.com/todoapi/todoapi/internal/platform/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false,
		"apply pending database migrations and exit without serving")
	flag.Parse()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.runMigrations(); err != nil {
		app.logger.Error("Failed to apply database migrations", "error", err)
		log.Fatalf("Failed to apply database migrations: %v", err)
	}
	if *migrateOnly {
		app.logger.Info("Migrations applied, exiting (migrate-only)")
		return
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, and wires the application's services and stores together.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger)
}
