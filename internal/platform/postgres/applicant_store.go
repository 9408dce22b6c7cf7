package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/platform/logger"
	"github.com/helixlabs/helixgate/internal/store"
)

// PostgresApplicantStore implements the store.ApplicantStore interface
// using a PostgreSQL database as the storage backend.
type PostgresApplicantStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresApplicantStore creates a new PostgreSQL implementation of the
// ApplicantStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresApplicantStore(db store.DBTX, logger *slog.Logger) *PostgresApplicantStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresApplicantStore{
		db:     db,
		logger: logger.With(slog.String("component", "applicant_store")),
	}
}

// Ensure PostgresApplicantStore implements store.ApplicantStore interface
var _ store.ApplicantStore = (*PostgresApplicantStore)(nil)

// Create implements store.ApplicantStore.Create.
// Uniqueness of the NUID rides on the applicants primary key, so two
// concurrent inserts of the same NUID resolve to exactly one success
// without any application-level locking.
func (s *PostgresApplicantStore) Create(ctx context.Context, applicant *domain.Applicant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := applicant.Validate(); err != nil {
		log.Warn("applicant validation failed during create",
			slog.String("error", err.Error()),
			slog.String("nuid", applicant.NUID))
		return err
	}

	query := `
		INSERT INTO applicants (nuid, applicant_name, registration_time, token)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		applicant.NUID,
		applicant.Name,
		applicant.RegistrationTime,
		applicant.Token,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate NUID during applicant creation",
				slog.String("nuid", applicant.NUID))
			return fmt.Errorf("%w: %v", store.ErrNUIDExists, err)
		}

		log.Error("failed to create applicant",
			slog.String("error", err.Error()),
			slog.String("nuid", applicant.NUID))
		return store.NewStoreError("applicant", "create", "insert failed", MapError(err))
	}

	log.Info("applicant created successfully",
		slog.String("nuid", applicant.NUID),
		slog.String("token", applicant.Token.String()))
	return nil
}

// GetByNUID implements store.ApplicantStore.GetByNUID.
// Returns store.ErrApplicantNotFound if the applicant does not exist.
func (s *PostgresApplicantStore) GetByNUID(
	ctx context.Context,
	nuid string,
) (*domain.Applicant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT nuid, applicant_name, registration_time, token
		FROM applicants
		WHERE nuid = $1
	`

	var applicant domain.Applicant
	err := s.db.QueryRowContext(ctx, query, nuid).Scan(
		&applicant.NUID,
		&applicant.Name,
		&applicant.RegistrationTime,
		&applicant.Token,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("applicant not found", slog.String("nuid", nuid))
			return nil, store.ErrApplicantNotFound
		}
		log.Error("failed to get applicant by NUID",
			slog.String("error", err.Error()),
			slog.String("nuid", nuid))
		return nil, store.NewStoreError("applicant", "get", "query failed", MapError(err))
	}

	return &applicant, nil
}

// WithTx implements store.ApplicantStore.WithTx.
// It returns a new store instance bound to the given transaction.
func (s *PostgresApplicantStore) WithTx(tx *sql.Tx) store.ApplicantStore {
	return &PostgresApplicantStore{
		db:     tx,
		logger: s.logger,
	}
}
