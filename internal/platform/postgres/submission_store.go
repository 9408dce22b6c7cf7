package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/platform/logger"
	"github.com/helixlabs/helixgate/internal/store"
)

// PostgresSubmissionStore implements the store.SubmissionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSubmissionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubmissionStore creates a new PostgreSQL implementation of the
// SubmissionStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSubmissionStore(db store.DBTX, logger *slog.Logger) *PostgresSubmissionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSubmissionStore{
		db:     db,
		logger: logger.With(slog.String("component", "submission_store")),
	}
}

// Ensure PostgresSubmissionStore implements store.SubmissionStore interface
var _ store.SubmissionStore = (*PostgresSubmissionStore)(nil)

// Append implements store.SubmissionStore.Append.
// Every attempt is inserted; there is no upsert and no deduplication.
func (s *PostgresSubmissionStore) Append(ctx context.Context, submission *domain.Submission) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := submission.Validate(); err != nil {
		log.Warn("submission validation failed during append",
			slog.String("error", err.Error()),
			slog.String("token", submission.Token.String()))
		return err
	}

	query := `
		INSERT INTO submissions (token, ok, submission_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		submission.Token,
		submission.OK,
		submission.SubmissionTime,
	).Scan(&submission.ID)

	if err != nil {
		log.Error("failed to append submission",
			slog.String("error", err.Error()),
			slog.String("token", submission.Token.String()))
		return store.NewStoreError("submission", "append", "insert failed", MapError(err))
	}

	log.Info("submission recorded",
		slog.String("token", submission.Token.String()),
		slog.Bool("ok", submission.OK))
	return nil
}

// statusQuery picks each applicant's most recent submission and joins it
// with the registration record. DISTINCT ON keeps exactly one row per
// NUID; the ORDER BY makes it the latest by submission_time.
const statusQuery = `
	SELECT DISTINCT ON (a.nuid)
		a.nuid, a.applicant_name, a.registration_time, s.ok, s.submission_time
	FROM submissions s
	JOIN applicants a ON a.token = s.token
	WHERE a.nuid = ANY($1)
	ORDER BY a.nuid, s.submission_time DESC
`

// GetLatestStatus implements store.SubmissionStore.GetLatestStatus.
// Returns store.ErrApplicantNotFound for an unknown NUID and for one
// that has never submitted; callers that need to tell the two apart
// can consult ApplicantStore.GetByNUID first.
func (s *PostgresSubmissionStore) GetLatestStatus(
	ctx context.Context,
	nuid string,
) (*domain.ApplicantStatus, error) {
	statuses, err := s.GetLatestStatusBatch(ctx, []string{nuid})
	if err != nil {
		return nil, err
	}

	if len(statuses) == 0 {
		return nil, store.ErrApplicantNotFound
	}

	return &statuses[0], nil
}

// GetLatestStatusBatch implements store.SubmissionStore.GetLatestStatusBatch.
// NUIDs without any submission are absent from the result; the caller
// partitions found from not-found.
func (s *PostgresSubmissionStore) GetLatestStatusBatch(
	ctx context.Context,
	nuids []string,
) ([]domain.ApplicantStatus, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, statusQuery, nuids)
	if err != nil {
		log.Error("failed to query applicant statuses",
			slog.String("error", err.Error()),
			slog.Int("requested", len(nuids)))
		return nil, store.NewStoreError("submission", "status", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var statuses []domain.ApplicantStatus
	for rows.Next() {
		var (
			nuid             string
			name             string
			registrationTime time.Time
			ok               bool
			submissionTime   time.Time
		)

		if err := rows.Scan(&nuid, &name, &registrationTime, &ok, &submissionTime); err != nil {
			log.Error("failed to scan status row",
				slog.String("error", err.Error()))
			return nil, store.NewStoreError("submission", "status", "scan failed", MapError(err))
		}

		statuses = append(statuses, domain.NewApplicantStatus(
			nuid, name, ok, registrationTime, submissionTime,
		))
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning status rows",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("submission", "status", "row iteration failed", MapError(err))
	}

	if statuses == nil {
		statuses = []domain.ApplicantStatus{}
	}

	log.Debug("applicant statuses retrieved",
		slog.Int("requested", len(nuids)),
		slog.Int("found", len(statuses)))
	return statuses, nil
}

// WithTx implements store.SubmissionStore.WithTx.
// It returns a new store instance bound to the given transaction.
func (s *PostgresSubmissionStore) WithTx(tx *sql.Tx) store.SubmissionStore {
	return &PostgresSubmissionStore{
		db:     tx,
		logger: s.logger,
	}
}
