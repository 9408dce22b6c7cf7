package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/store"
)

// StatusService answers applicant lookups: token recovery, challenge
// retrieval, and single or batch status views.
type StatusService interface {
	// TokenForNUID returns the token issued to the given NUID.
	// Returns store.ErrApplicantNotFound if the NUID is unknown.
	TokenForNUID(ctx context.Context, nuid string) (uuid.UUID, error)

	// ChallengeForToken returns the challenge string issued to the token.
	// Returns store.ErrApplicantNotFound if the token is unknown.
	ChallengeForToken(ctx context.Context, token uuid.UUID) (string, error)

	// GetStatus returns the status of the applicant's latest submission.
	// Returns store.ErrApplicantNotFound if the NUID is unknown or the
	// applicant has never submitted.
	GetStatus(ctx context.Context, nuid string) (*domain.ApplicantStatus, error)

	// GetStatusBatch partitions the requested NUIDs into found statuses
	// and not-found NUIDs. Partial misses are the normal contract, not
	// an error.
	GetStatusBatch(
		ctx context.Context,
		nuids []string,
	) (found []domain.ApplicantStatus, notFound []string, err error)
}

// StatusServiceImpl implements the StatusService interface.
type StatusServiceImpl struct {
	applicantStore  store.ApplicantStore
	challengeStore  store.ChallengeStore
	submissionStore store.SubmissionStore
	logger          *slog.Logger
}

// NewStatusService creates a new StatusService.
func NewStatusService(
	applicantStore store.ApplicantStore,
	challengeStore store.ChallengeStore,
	submissionStore store.SubmissionStore,
	logger *slog.Logger,
) *StatusServiceImpl {
	return &StatusServiceImpl{
		applicantStore:  applicantStore,
		challengeStore:  challengeStore,
		submissionStore: submissionStore,
		logger:          logger.With("component", "status_service"),
	}
}

// TokenForNUID implements StatusService.TokenForNUID.
func (s *StatusServiceImpl) TokenForNUID(ctx context.Context, nuid string) (uuid.UUID, error) {
	applicant, err := s.applicantStore.GetByNUID(ctx, nuid)
	if err != nil {
		if errors.Is(err, store.ErrApplicantNotFound) {
			s.logger.Debug("token lookup for unknown NUID",
				"nuid", nuid)
		} else {
			s.logger.Error("failed to look up token",
				"error", err,
				"nuid", nuid)
		}
		return uuid.Nil, fmt.Errorf("failed to retrieve token: %w", err)
	}

	return applicant.Token, nil
}

// ChallengeForToken implements StatusService.ChallengeForToken.
func (s *StatusServiceImpl) ChallengeForToken(
	ctx context.Context,
	token uuid.UUID,
) (string, error) {
	challenge, err := s.challengeStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrChallengeNotFound) {
			s.logger.Debug("challenge lookup for unknown token",
				"token", token)
			return "", fmt.Errorf("failed to retrieve challenge: %w", store.ErrApplicantNotFound)
		}
		s.logger.Error("failed to retrieve challenge",
			"error", err,
			"token", token)
		return "", fmt.Errorf("failed to retrieve challenge: %w", err)
	}

	return challenge.ChallengeString, nil
}

// GetStatus implements StatusService.GetStatus.
// An applicant that exists but has never submitted reports as not
// found, the same as an unknown NUID.
func (s *StatusServiceImpl) GetStatus(
	ctx context.Context,
	nuid string,
) (*domain.ApplicantStatus, error) {
	status, err := s.submissionStore.GetLatestStatus(ctx, nuid)
	if err != nil {
		if errors.Is(err, store.ErrApplicantNotFound) {
			s.logger.Debug("status lookup with no result",
				"nuid", nuid)
		} else {
			s.logger.Error("failed to retrieve status",
				"error", err,
				"nuid", nuid)
		}
		return nil, fmt.Errorf("failed to retrieve status: %w", err)
	}

	return status, nil
}

// GetStatusBatch implements StatusService.GetStatusBatch.
// The found list never contains duplicate NUIDs and is always a subset
// of the request; everything else lands in notFound, each NUID once.
func (s *StatusServiceImpl) GetStatusBatch(
	ctx context.Context,
	nuids []string,
) ([]domain.ApplicantStatus, []string, error) {
	found, err := s.submissionStore.GetLatestStatusBatch(ctx, nuids)
	if err != nil {
		s.logger.Error("failed to retrieve status batch",
			"error", err,
			"requested", len(nuids))
		return nil, nil, fmt.Errorf("failed to retrieve status batch: %w", err)
	}

	foundSet := make(map[string]struct{}, len(found))
	for _, status := range found {
		foundSet[status.NUID] = struct{}{}
	}

	notFound := make([]string, 0)
	seen := make(map[string]struct{}, len(nuids))
	for _, nuid := range nuids {
		if _, dup := seen[nuid]; dup {
			continue
		}
		seen[nuid] = struct{}{}

		if _, ok := foundSet[nuid]; !ok {
			notFound = append(notFound, nuid)
		}
	}

	s.logger.Debug("status batch resolved",
		"requested", len(nuids),
		"found", len(found),
		"not_found", len(notFound))

	return found, notFound, nil
}
