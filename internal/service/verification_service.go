package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/domain/kmer"
	"github.com/helixlabs/helixgate/internal/store"
)

// VerificationResult is the outcome of one submission. Expected carries
// the stored canonical solution so the boundary can report the diff to
// the applicant on a miss.
type VerificationResult struct {
	OK       bool
	Expected map[string]uint64
}

// VerificationService checks submitted solutions against the stored
// canonical solution and records every attempt.
type VerificationService interface {
	// Verify compares the submitted mapping against the solution stored
	// for the token and appends a submission row regardless of outcome.
	// Returns store.ErrApplicantNotFound if the token is unknown.
	Verify(
		ctx context.Context,
		token uuid.UUID,
		submitted map[string]uint64,
	) (*VerificationResult, error)
}

// VerificationServiceImpl implements the VerificationService interface.
type VerificationServiceImpl struct {
	challengeStore  store.ChallengeStore
	submissionStore store.SubmissionStore
	logger          *slog.Logger
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(
	challengeStore store.ChallengeStore,
	submissionStore store.SubmissionStore,
	logger *slog.Logger,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		challengeStore:  challengeStore,
		submissionStore: submissionStore,
		logger:          logger.With("component", "verification_service"),
	}
}

// Verify implements VerificationService.Verify.
// The append step is not optional: if recording the attempt fails after
// a successful comparison, the failure is returned to the caller rather
// than swallowed, so no outcome exists that the log does not show.
func (s *VerificationServiceImpl) Verify(
	ctx context.Context,
	token uuid.UUID,
	submitted map[string]uint64,
) (*VerificationResult, error) {
	challenge, err := s.challengeStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrChallengeNotFound) {
			s.logger.Debug("submission for unknown token",
				"token", token)
			// No challenge means no applicant: the two are created atomically.
			return nil, fmt.Errorf("failed to verify submission: %w", store.ErrApplicantNotFound)
		}
		s.logger.Error("failed to load stored solution",
			"error", err,
			"token", token)
		return nil, fmt.Errorf("failed to verify submission: %w", err)
	}

	ok := kmer.Equal(submitted, challenge.Solution)

	submission, err := domain.NewSubmission(token, ok)
	if err != nil {
		s.logger.Error("failed to build submission record",
			"error", err,
			"token", token)
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	if err := s.submissionStore.Append(ctx, submission); err != nil {
		s.logger.Error("failed to record submission",
			"error", err,
			"token", token,
			"ok", ok)
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	s.logger.Info("submission verified",
		"token", token,
		"ok", ok)

	return &VerificationResult{
		OK:       ok,
		Expected: challenge.Solution,
	}, nil
}
