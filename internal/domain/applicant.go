package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Applicant
var (
	ErrEmptyNUID          = errors.New("applicant NUID cannot be empty")
	ErrEmptyApplicantName = errors.New("applicant name cannot be empty")
	ErrEmptyToken         = errors.New("applicant token cannot be empty")
)

// Applicant represents one registered applicant. The NUID is the
// externally-supplied business key; the token is the opaque credential
// issued at registration and used for all subsequent challenge and
// submission calls. Applicants are created once and never mutated.
type Applicant struct {
	NUID             string    `json:"nuid"`
	Name             string    `json:"name"`
	Token            uuid.UUID `json:"token"`
	RegistrationTime time.Time `json:"registration_time"`
}

// NewApplicant creates a new Applicant with the given name and NUID.
// It generates a fresh random token and sets the registration timestamp.
// Returns an error if validation fails.
func NewApplicant(name, nuid string) (*Applicant, error) {
	applicant := &Applicant{
		NUID:             nuid,
		Name:             name,
		Token:            uuid.New(),
		RegistrationTime: time.Now().UTC(),
	}

	if err := applicant.Validate(); err != nil {
		return nil, err
	}

	return applicant, nil
}

// Validate checks if the Applicant has valid data.
// Returns an error if any field fails validation.
func (a *Applicant) Validate() error {
	if a.NUID == "" {
		return ErrEmptyNUID
	}

	if a.Name == "" {
		return ErrEmptyApplicantName
	}

	if a.Token == uuid.Nil {
		return ErrEmptyToken
	}

	return nil
}
