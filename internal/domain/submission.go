package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptySubmissionToken is returned when a submission has no token.
var ErrEmptySubmissionToken = errors.New("submission token cannot be empty")

// Submission is one recorded verification attempt. Every attempt is
// appended, correct or not; rows are never updated or deleted, so the
// full attempt history of an applicant is preserved and ordering by
// SubmissionTime is meaningful.
type Submission struct {
	ID             int64     `json:"id"`
	Token          uuid.UUID `json:"token"`
	OK             bool      `json:"ok"`
	SubmissionTime time.Time `json:"submission_time"`
}

// NewSubmission creates a Submission for the given token and outcome,
// stamped with the current time.
// Returns an error if validation fails.
func NewSubmission(token uuid.UUID, ok bool) (*Submission, error) {
	submission := &Submission{
		Token:          token,
		OK:             ok,
		SubmissionTime: time.Now().UTC(),
	}

	if err := submission.Validate(); err != nil {
		return nil, err
	}

	return submission, nil
}

// Validate checks if the Submission has valid data.
func (s *Submission) Validate() error {
	if s.Token == uuid.Nil {
		return ErrEmptySubmissionToken
	}

	return nil
}
