package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/generation"
	"github.com/helixlabs/helixgate/internal/store"
)

// RegistrationResult is what a successful registration returns to the
// caller: the opaque token and the challenge to solve. The canonical
// solution stays inside the store and is never part of this result.
type RegistrationResult struct {
	Token           uuid.UUID
	ChallengeString string
}

// RegistrationService creates new applicant records together with their
// challenge and canonical solution.
type RegistrationService interface {
	// Register creates an applicant for the given name and NUID, issues
	// a challenge, and persists both atomically.
	// Returns store.ErrNUIDExists if the NUID is already registered.
	Register(ctx context.Context, name, nuid string) (*RegistrationResult, error)
}

// RegistrationServiceImpl implements the RegistrationService interface.
type RegistrationServiceImpl struct {
	applicantStore store.ApplicantStore
	challengeStore store.ChallengeStore
	generator      generation.ChallengeGenerator
	tx             store.Transactor
	logger         *slog.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	applicantStore store.ApplicantStore,
	challengeStore store.ChallengeStore,
	generator generation.ChallengeGenerator,
	tx store.Transactor,
	logger *slog.Logger,
) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		applicantStore: applicantStore,
		challengeStore: challengeStore,
		generator:      generator,
		tx:             tx,
		logger:         logger.With("component", "registration_service"),
	}
}

// Register implements RegistrationService.Register.
// The applicant and challenge rows are written in one transaction:
// either both exist afterwards or neither does. Duplicate detection is
// left entirely to the store's uniqueness constraint, so there is no
// read-then-write race between concurrent registrations.
func (s *RegistrationServiceImpl) Register(
	ctx context.Context,
	name, nuid string,
) (*RegistrationResult, error) {
	applicant, err := domain.NewApplicant(name, nuid)
	if err != nil {
		s.logger.Warn("invalid registration data",
			"error", err,
			"nuid", nuid)
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}

	challenge, err := domain.NewChallenge(applicant.Token, s.generator.Generate())
	if err != nil {
		s.logger.Error("failed to build challenge",
			"error", err,
			"nuid", nuid)
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.applicantStore.WithTx(tx).Create(ctx, applicant); err != nil {
			return err
		}
		return s.challengeStore.WithTx(tx).Create(ctx, challenge)
	})

	if err != nil {
		if errors.Is(err, store.ErrNUIDExists) {
			s.logger.Debug("attempted to register an existing NUID",
				"nuid", nuid)
		} else {
			s.logger.Error("failed to save applicant registration",
				"error", err,
				"nuid", nuid)
		}
		return nil, fmt.Errorf("failed to register applicant: %w", err)
	}

	s.logger.Info("applicant registered",
		"nuid", nuid,
		"token", applicant.Token)

	return &RegistrationResult{
		Token:           applicant.Token,
		ChallengeString: challenge.ChallengeString,
	}, nil
}
