package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/domain"
)

// ChallengeStore defines the interface for challenge/solution persistence.
type ChallengeStore interface {
	// Create saves a new challenge and its canonical solution.
	// Registration runs this in the same transaction as
	// ApplicantStore.Create so a reader never observes an applicant
	// without its challenge.
	// Returns validation errors from the domain Challenge if data is invalid.
	Create(ctx context.Context, challenge *domain.Challenge) error

	// GetByToken retrieves the challenge issued to the given token,
	// including the stored solution.
	// Returns ErrChallengeNotFound if no challenge exists for the token.
	GetByToken(ctx context.Context, token uuid.UUID) (*domain.Challenge, error)

	// WithTx returns a new ChallengeStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ChallengeStore
}
