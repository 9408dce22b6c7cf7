package store

import (
	"context"
	"database/sql"

	"github.com/helixlabs/helixgate/internal/domain"
)

// ApplicantStore defines the interface for applicant persistence.
type ApplicantStore interface {
	// Create saves a new applicant to the store.
	// Uniqueness of the NUID is enforced by the store itself, atomically
	// with the insert, so concurrent registrations of the same NUID
	// cannot both succeed.
	// Returns ErrNUIDExists if the NUID is already registered.
	// Returns validation errors from the domain Applicant if data is invalid.
	Create(ctx context.Context, applicant *domain.Applicant) error

	// GetByNUID retrieves an applicant by their NUID.
	// Returns ErrApplicantNotFound if the applicant does not exist.
	GetByNUID(ctx context.Context, nuid string) (*domain.Applicant, error)

	// WithTx returns a new ApplicantStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) ApplicantStore
}
