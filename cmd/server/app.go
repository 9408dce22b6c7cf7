package main

import (
	"database/sql"
	"log/slog"

	"github.com/helixlabs/helixgate/internal/config"
	"github.com/helixlabs/helixgate/internal/generation"
	"github.com/helixlabs/helixgate/internal/platform/postgres"
	"github.com/helixlabs/helixgate/internal/service"
	"github.com/helixlabs/helixgate/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	applicantStore  store.ApplicantStore
	challengeStore  store.ChallengeStore
	submissionStore store.SubmissionStore

	// Service interfaces
	registrationService service.RegistrationService
	verificationService service.VerificationService
	statusService       service.StatusService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.applicantStore = postgres.NewPostgresApplicantStore(db, logger)
	app.challengeStore = postgres.NewPostgresChallengeStore(db, logger)
	app.submissionStore = postgres.NewPostgresSubmissionStore(db, logger)

	// Initialize services
	app.registrationService = service.NewRegistrationService(
		app.applicantStore,
		app.challengeStore,
		generation.NewChallengeGenerator(),
		store.NewSQLTransactor(db),
		logger,
	)
	app.verificationService = service.NewVerificationService(
		app.challengeStore,
		app.submissionStore,
		logger,
	)
	app.statusService = service.NewStatusService(
		app.applicantStore,
		app.challengeStore,
		app.submissionStore,
		logger,
	)

	logger.Info("application services initialized")
	return app
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
