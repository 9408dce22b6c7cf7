// Package main implements the entry point for the HelixGate server,
// which registers applicants, issues sequence challenges, and verifies
// submitted k-mer frequency solutions.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/helixlabs/helixgate/internal/config"
	"github.com/helixlabs/helixgate/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run initializes configuration, logging, the database, and all services,
// then starts the HTTP server. It blocks until shutdown completes.
func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Establish database connection
	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	// Bring the schema up to date before serving
	if err := runMigrations(ctx, db, appLogger); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("failed to close database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Wire stores, services, and handlers
	app := newApplication(cfg, appLogger, db)

	return app.startHTTPServer(ctx, app.setupRouter())
}
