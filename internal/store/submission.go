package store

import (
	"context"
	"database/sql"

	"github.com/helixlabs/helixgate/internal/domain"
)

// SubmissionStore defines the interface for the append-only submission log
// and the status views derived from it.
type SubmissionStore interface {
	// Append records one verification attempt. Rows are never updated
	// or deleted; repeated identical submissions each produce a new row.
	// Returns validation errors from the domain Submission if data is invalid.
	Append(ctx context.Context, submission *domain.Submission) error

	// GetLatestStatus returns the status derived from the applicant's
	// most recent submission.
	// Returns ErrApplicantNotFound if the NUID is unknown or the
	// applicant has never submitted.
	GetLatestStatus(ctx context.Context, nuid string) (*domain.ApplicantStatus, error)

	// GetLatestStatusBatch returns statuses for every requested NUID
	// that has at least one submission. NUIDs without a status are
	// simply absent from the result; partial success is not an error.
	// The result never contains duplicate NUIDs.
	GetLatestStatusBatch(ctx context.Context, nuids []string) ([]domain.ApplicantStatus, error)

	// WithTx returns a new SubmissionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SubmissionStore
}
