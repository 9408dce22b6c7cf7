package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/mocks"
	"github.com/helixlabs/helixgate/internal/service"
	"github.com/helixlabs/helixgate/internal/store"
)

func newStatusService(
	applicantStore *mocks.MockApplicantStore,
	challengeStore *mocks.MockChallengeStore,
	submissionStore *mocks.MockSubmissionStore,
) *service.StatusServiceImpl {
	return service.NewStatusService(
		applicantStore, challengeStore, submissionStore, newTestLogger())
}

func TestTokenForNUID(t *testing.T) {
	t.Parallel()

	t.Run("known NUID", func(t *testing.T) {
		t.Parallel()

		applicantStore := mocks.NewMockApplicantStore()
		applicant, err := domain.NewApplicant("Ada Lovelace", "001234567")
		require.NoError(t, err)
		require.NoError(t, applicantStore.Create(context.Background(), applicant))

		svc := newStatusService(
			applicantStore,
			mocks.NewMockChallengeStore(),
			mocks.NewMockSubmissionStore())

		token, err := svc.TokenForNUID(context.Background(), "001234567")
		require.NoError(t, err)
		assert.Equal(t, applicant.Token, token)
	})

	t.Run("unknown NUID", func(t *testing.T) {
		t.Parallel()

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			mocks.NewMockSubmissionStore())

		token, err := svc.TokenForNUID(context.Background(), "999999999")
		require.Error(t, err)
		assert.Equal(t, uuid.Nil, token)
		assert.ErrorIs(t, err, store.ErrApplicantNotFound)
	})
}

func TestChallengeForToken(t *testing.T) {
	t.Parallel()

	t.Run("known token", func(t *testing.T) {
		t.Parallel()

		challengeStore := mocks.NewMockChallengeStore()
		token := uuid.New()
		challenge, err := domain.NewChallenge(token, "ACTGACT")
		require.NoError(t, err)
		require.NoError(t, challengeStore.Create(context.Background(), challenge))

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			challengeStore,
			mocks.NewMockSubmissionStore())

		got, err := svc.ChallengeForToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "ACTGACT", got)
	})

	t.Run("unknown token reports as applicant not found", func(t *testing.T) {
		t.Parallel()

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			mocks.NewMockSubmissionStore())

		got, err := svc.ChallengeForToken(context.Background(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, "", got)
		assert.ErrorIs(t, err, store.ErrApplicantNotFound)
	})
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	t.Run("known NUID with submissions", func(t *testing.T) {
		t.Parallel()

		submissionStore := mocks.NewMockSubmissionStore()
		submissionStore.Statuses["001234567"] = domain.ApplicantStatus{
			NUID:             "001234567",
			Name:             "Ada Lovelace",
			OK:               true,
			TimeToCompletion: 42 * time.Minute,
		}

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			submissionStore)

		status, err := svc.GetStatus(context.Background(), "001234567")
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, "Ada Lovelace", status.Name)
		assert.True(t, status.OK)
		assert.Equal(t, 42*time.Minute, status.TimeToCompletion)
	})

	t.Run("NUID without submissions", func(t *testing.T) {
		t.Parallel()

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			mocks.NewMockSubmissionStore())

		status, err := svc.GetStatus(context.Background(), "001234567")
		require.Error(t, err)
		assert.Nil(t, status)
		assert.ErrorIs(t, err, store.ErrApplicantNotFound)
	})
}

func TestGetStatusBatch(t *testing.T) {
	t.Parallel()

	t.Run("partitions found and not found", func(t *testing.T) {
		t.Parallel()

		submissionStore := mocks.NewMockSubmissionStore()
		submissionStore.Statuses["001"] = domain.ApplicantStatus{
			NUID: "001", Name: "Ada", OK: true, TimeToCompletion: time.Hour,
		}
		submissionStore.Statuses["003"] = domain.ApplicantStatus{
			NUID: "003", Name: "Grace", OK: false, TimeToCompletion: time.Minute,
		}

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			submissionStore)

		found, notFound, err := svc.GetStatusBatch(
			context.Background(), []string{"001", "002", "003", "004"})
		require.NoError(t, err)

		require.Len(t, found, 2)
		assert.Equal(t, "001", found[0].NUID)
		assert.Equal(t, "003", found[1].NUID)
		assert.Equal(t, []string{"002", "004"}, notFound)
	})

	t.Run("duplicate NUIDs are reported once", func(t *testing.T) {
		t.Parallel()

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			mocks.NewMockSubmissionStore())

		found, notFound, err := svc.GetStatusBatch(
			context.Background(), []string{"001", "001", "001"})
		require.NoError(t, err)
		assert.Empty(t, found)
		assert.Equal(t, []string{"001"}, notFound)
	})

	t.Run("all unknown", func(t *testing.T) {
		t.Parallel()

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			mocks.NewMockSubmissionStore())

		found, notFound, err := svc.GetStatusBatch(
			context.Background(), []string{"001", "002"})
		require.NoError(t, err)
		assert.Empty(t, found)
		assert.Equal(t, []string{"001", "002"}, notFound)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		submissionStore := mocks.NewMockSubmissionStore()
		submissionStore.StatusError = errors.New("connection refused")

		svc := newStatusService(
			mocks.NewMockApplicantStore(),
			mocks.NewMockChallengeStore(),
			submissionStore)

		found, notFound, err := svc.GetStatusBatch(
			context.Background(), []string{"001"})
		require.Error(t, err)
		assert.Nil(t, found)
		assert.Nil(t, notFound)
	})
}
