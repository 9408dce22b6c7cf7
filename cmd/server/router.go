package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/helixlabs/helixgate/internal/api"
	apiMiddleware "github.com/helixlabs/helixgate/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	applicantHandler := api.NewApplicantHandler(
		app.registrationService,
		app.verificationService,
		app.statusService,
		app.logger,
	)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", applicantHandler.Register)
		r.Get("/token/{nuid}", applicantHandler.ForgotToken)
		r.Get("/challenge/{token}", applicantHandler.GetChallenge)
		r.Post("/submit/{token}", applicantHandler.Submit)
		r.Get("/status/{nuid}", applicantHandler.GetStatus)
		r.Post("/status/batch", applicantHandler.GetStatusBatch)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
