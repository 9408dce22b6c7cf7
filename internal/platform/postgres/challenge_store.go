package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/platform/logger"
	"github.com/helixlabs/helixgate/internal/store"
)

// PostgresChallengeStore implements the store.ChallengeStore interface
// using a PostgreSQL database as the storage backend. The solution
// mapping is stored as JSONB.
type PostgresChallengeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresChallengeStore creates a new PostgreSQL implementation of the
// ChallengeStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresChallengeStore(db store.DBTX, logger *slog.Logger) *PostgresChallengeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresChallengeStore{
		db:     db,
		logger: logger.With(slog.String("component", "challenge_store")),
	}
}

// Ensure PostgresChallengeStore implements store.ChallengeStore interface
var _ store.ChallengeStore = (*PostgresChallengeStore)(nil)

// Create implements store.ChallengeStore.Create.
// A failure to serialize the solution mapping is a storage failure,
// not a panic: the caller gets a classified error and the enclosing
// transaction rolls back.
func (s *PostgresChallengeStore) Create(ctx context.Context, challenge *domain.Challenge) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := challenge.Validate(); err != nil {
		log.Warn("challenge validation failed during create",
			slog.String("error", err.Error()),
			slog.String("token", challenge.Token.String()))
		return err
	}

	solution, err := json.Marshal(challenge.Solution)
	if err != nil {
		log.Error("failed to serialize solution",
			slog.String("error", err.Error()),
			slog.String("token", challenge.Token.String()))
		return store.NewStoreError("challenge", "create", "solution serialization failed", err)
	}

	query := `
		INSERT INTO challenges (token, challenge_string, solution)
		VALUES ($1, $2, $3)
	`
	_, err = s.db.ExecContext(ctx, query, challenge.Token, challenge.ChallengeString, solution)

	if err != nil {
		log.Error("failed to create challenge",
			slog.String("error", err.Error()),
			slog.String("token", challenge.Token.String()))
		return store.NewStoreError("challenge", "create", "insert failed", MapError(err))
	}

	log.Debug("challenge created successfully",
		slog.String("token", challenge.Token.String()))
	return nil
}

// GetByToken implements store.ChallengeStore.GetByToken.
// Returns store.ErrChallengeNotFound if no challenge exists for the token.
// A solution that fails to deserialize is returned as a storage failure
// rather than aborting the process.
func (s *PostgresChallengeStore) GetByToken(
	ctx context.Context,
	token uuid.UUID,
) (*domain.Challenge, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT token, challenge_string, solution
		FROM challenges
		WHERE token = $1
	`

	var challenge domain.Challenge
	var solution []byte

	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&challenge.Token,
		&challenge.ChallengeString,
		&solution,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("challenge not found", slog.String("token", token.String()))
			return nil, store.ErrChallengeNotFound
		}
		log.Error("failed to get challenge by token",
			slog.String("error", err.Error()),
			slog.String("token", token.String()))
		return nil, store.NewStoreError("challenge", "get", "query failed", MapError(err))
	}

	if err := json.Unmarshal(solution, &challenge.Solution); err != nil {
		log.Error("failed to deserialize solution",
			slog.String("error", err.Error()),
			slog.String("token", token.String()))
		return nil, store.NewStoreError("challenge", "get", "solution deserialization failed", err)
	}

	return &challenge, nil
}

// WithTx implements store.ChallengeStore.WithTx.
// It returns a new store instance bound to the given transaction.
func (s *PostgresChallengeStore) WithTx(tx *sql.Tx) store.ChallengeStore {
	return &PostgresChallengeStore{
		db:     tx,
		logger: s.logger,
	}
}
