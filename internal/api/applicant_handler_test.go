package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/service"
	"github.com/helixlabs/helixgate/internal/store"
)

// mockRegistrationService implements service.RegistrationService with a
// configurable function field.
type mockRegistrationService struct {
	RegisterFn func(ctx context.Context, name, nuid string) (*service.RegistrationResult, error)
}

func (m *mockRegistrationService) Register(
	ctx context.Context,
	name, nuid string,
) (*service.RegistrationResult, error) {
	return m.RegisterFn(ctx, name, nuid)
}

// mockVerificationService implements service.VerificationService.
type mockVerificationService struct {
	VerifyFn func(ctx context.Context, token uuid.UUID, submitted map[string]uint64) (*service.VerificationResult, error)
}

func (m *mockVerificationService) Verify(
	ctx context.Context,
	token uuid.UUID,
	submitted map[string]uint64,
) (*service.VerificationResult, error) {
	return m.VerifyFn(ctx, token, submitted)
}

// mockStatusService implements service.StatusService.
type mockStatusService struct {
	TokenForNUIDFn      func(ctx context.Context, nuid string) (uuid.UUID, error)
	ChallengeForTokenFn func(ctx context.Context, token uuid.UUID) (string, error)
	GetStatusFn         func(ctx context.Context, nuid string) (*domain.ApplicantStatus, error)
	GetStatusBatchFn    func(ctx context.Context, nuids []string) ([]domain.ApplicantStatus, []string, error)
}

func (m *mockStatusService) TokenForNUID(ctx context.Context, nuid string) (uuid.UUID, error) {
	return m.TokenForNUIDFn(ctx, nuid)
}

func (m *mockStatusService) ChallengeForToken(
	ctx context.Context,
	token uuid.UUID,
) (string, error) {
	return m.ChallengeForTokenFn(ctx, token)
}

func (m *mockStatusService) GetStatus(
	ctx context.Context,
	nuid string,
) (*domain.ApplicantStatus, error) {
	return m.GetStatusFn(ctx, nuid)
}

func (m *mockStatusService) GetStatusBatch(
	ctx context.Context,
	nuids []string,
) ([]domain.ApplicantStatus, []string, error) {
	return m.GetStatusBatchFn(ctx, nuids)
}

// newTestRouter mounts the handler on the routes it serves in production.
func newTestRouter(h *ApplicantHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/register", h.Register)
	r.Get("/api/token/{nuid}", h.ForgotToken)
	r.Get("/api/challenge/{token}", h.GetChallenge)
	r.Post("/api/submit/{token}", h.Submit)
	r.Get("/api/status/{nuid}", h.GetStatus)
	r.Post("/api/status/batch", h.GetStatusBatch)
	return r
}

func newTestHandler(
	reg service.RegistrationService,
	ver service.VerificationService,
	status service.StatusService,
) *ApplicantHandler {
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	return NewApplicantHandler(reg, ver, status, logger)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	token := uuid.New()

	tests := []struct {
		name           string
		body           string
		registerFn     func(ctx context.Context, name, nuid string) (*service.RegistrationResult, error)
		expectedStatus int
	}{
		{
			name: "successful registration",
			body: `{"name":"Ada Lovelace","nuid":"001234567"}`,
			registerFn: func(ctx context.Context, name, nuid string) (*service.RegistrationResult, error) {
				return &service.RegistrationResult{
					Token:           token,
					ChallengeString: "ACTGACTG",
				}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate NUID",
			body: `{"name":"Ada Lovelace","nuid":"001234567"}`,
			registerFn: func(ctx context.Context, name, nuid string) (*service.RegistrationResult, error) {
				return nil, store.ErrNUIDExists
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing nuid",
			body:           `{"name":"Ada Lovelace"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"nuid":"001234567"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"name":"Ada Lovelace","nuid":"001234567"}`,
			registerFn: func(ctx context.Context, name, nuid string) (*service.RegistrationResult, error) {
				return nil, errors.New("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := newTestHandler(
				&mockRegistrationService{RegisterFn: tc.registerFn},
				nil, nil,
			)
			router := newTestRouter(handler)

			req := httptest.NewRequest(
				http.MethodPost, "/api/register", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp RegisterResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, token.String(), resp.Token)
				assert.Equal(t, "ACTGACTG", resp.ChallengeString)
			}
		})
	}
}

func TestForgotToken(t *testing.T) {
	t.Parallel()

	token := uuid.New()

	t.Run("known NUID", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, nil, &mockStatusService{
			TokenForNUIDFn: func(ctx context.Context, nuid string) (uuid.UUID, error) {
				assert.Equal(t, "001234567", nuid)
				return token, nil
			},
		})
		router := newTestRouter(handler)

		req := httptest.NewRequest(http.MethodGet, "/api/token/001234567", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, token.String(), resp.Token)
	})

	t.Run("unknown NUID", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, nil, &mockStatusService{
			TokenForNUIDFn: func(ctx context.Context, nuid string) (uuid.UUID, error) {
				return uuid.Nil, store.ErrApplicantNotFound
			},
		})
		router := newTestRouter(handler)

		req := httptest.NewRequest(http.MethodGet, "/api/token/999999999", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetChallenge(t *testing.T) {
	t.Parallel()

	token := uuid.New()

	tests := []struct {
		name           string
		path           string
		challengeFn    func(ctx context.Context, token uuid.UUID) (string, error)
		expectedStatus int
	}{
		{
			name: "known token",
			path: "/api/challenge/" + token.String(),
			challengeFn: func(ctx context.Context, got uuid.UUID) (string, error) {
				assert.Equal(t, token, got)
				return "ACTGACTG", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown token",
			path: "/api/challenge/" + uuid.New().String(),
			challengeFn: func(ctx context.Context, got uuid.UUID) (string, error) {
				return "", store.ErrApplicantNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid token format",
			path:           "/api/challenge/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := newTestHandler(nil, nil, &mockStatusService{
				ChallengeForTokenFn: tc.challengeFn,
			})
			router := newTestRouter(handler)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp ChallengeResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "ACTGACTG", resp.ChallengeString)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	token := uuid.New()
	expected := map[string]uint64{"ACT": 2, "CTG": 1}

	t.Run("correct solution", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, &mockVerificationService{
			VerifyFn: func(ctx context.Context, got uuid.UUID, submitted map[string]uint64) (*service.VerificationResult, error) {
				assert.Equal(t, token, got)
				assert.Equal(t, expected, submitted)
				return &service.VerificationResult{OK: true, Expected: expected}, nil
			},
		}, nil)
		router := newTestRouter(handler)

		body, err := json.Marshal(expected)
		require.NoError(t, err)

		req := httptest.NewRequest(
			http.MethodPost, "/api/submit/"+token.String(), bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp SubmitResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.OK)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("incorrect solution returns the diff", func(t *testing.T) {
		t.Parallel()

		given := map[string]uint64{"ACT": 1}

		handler := newTestHandler(nil, &mockVerificationService{
			VerifyFn: func(ctx context.Context, got uuid.UUID, submitted map[string]uint64) (*service.VerificationResult, error) {
				return &service.VerificationResult{OK: false, Expected: expected}, nil
			},
		}, nil)
		router := newTestRouter(handler)

		body, err := json.Marshal(given)
		require.NoError(t, err)

		req := httptest.NewRequest(
			http.MethodPost, "/api/submit/"+token.String(), bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp IncorrectSolutionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, expected, resp.ExpectedSolution)
		assert.Equal(t, given, resp.GivenSolution)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, &mockVerificationService{
			VerifyFn: func(ctx context.Context, got uuid.UUID, submitted map[string]uint64) (*service.VerificationResult, error) {
				return nil, store.ErrApplicantNotFound
			},
		}, nil)
		router := newTestRouter(handler)

		req := httptest.NewRequest(
			http.MethodPost, "/api/submit/"+uuid.New().String(),
			bytes.NewBufferString(`{"ACT":1}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid token format", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, &mockVerificationService{}, nil)
		router := newTestRouter(handler)

		req := httptest.NewRequest(
			http.MethodPost, "/api/submit/not-a-uuid",
			bytes.NewBufferString(`{"ACT":1}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, &mockVerificationService{}, nil)
		router := newTestRouter(handler)

		req := httptest.NewRequest(
			http.MethodPost, "/api/submit/"+token.String(),
			bytes.NewBufferString(`{"ACT":`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	t.Run("known NUID", func(t *testing.T) {
		t.Parallel()

		status := domain.ApplicantStatus{
			NUID:             "001234567",
			Name:             "Ada Lovelace",
			OK:               true,
			TimeToCompletion: 90 * time.Minute,
		}

		handler := newTestHandler(nil, nil, &mockStatusService{
			GetStatusFn: func(ctx context.Context, nuid string) (*domain.ApplicantStatus, error) {
				assert.Equal(t, "001234567", nuid)
				return &status, nil
			},
		})
		router := newTestRouter(handler)

		req := httptest.NewRequest(http.MethodGet, "/api/status/001234567", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp domain.ApplicantStatus
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, status, resp)
	})

	t.Run("unknown NUID", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, nil, &mockStatusService{
			GetStatusFn: func(ctx context.Context, nuid string) (*domain.ApplicantStatus, error) {
				return nil, store.ErrApplicantNotFound
			},
		})
		router := newTestRouter(handler)

		req := httptest.NewRequest(http.MethodGet, "/api/status/999999999", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetStatusBatch(t *testing.T) {
	t.Parallel()

	t.Run("partitions found and not found", func(t *testing.T) {
		t.Parallel()

		found := []domain.ApplicantStatus{
			{NUID: "001", Name: "Ada", OK: true, TimeToCompletion: time.Hour},
		}

		handler := newTestHandler(nil, nil, &mockStatusService{
			GetStatusBatchFn: func(ctx context.Context, nuids []string) ([]domain.ApplicantStatus, []string, error) {
				assert.Equal(t, []string{"001", "002"}, nuids)
				return found, []string{"002"}, nil
			},
		})
		router := newTestRouter(handler)

		req := httptest.NewRequest(
			http.MethodPost, "/api/status/batch",
			bytes.NewBufferString(`{"nuids":["001","002"]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp BatchStatusResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, found, resp.Found)
		assert.Equal(t, []string{"002"}, resp.NotFound)
	})

	t.Run("empty NUID list", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, nil, &mockStatusService{})
		router := newTestRouter(handler)

		req := httptest.NewRequest(
			http.MethodPost, "/api/status/batch",
			bytes.NewBufferString(`{"nuids":[]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		handler := newTestHandler(nil, nil, &mockStatusService{})
		router := newTestRouter(handler)

		req := httptest.NewRequest(
			http.MethodPost, "/api/status/batch",
			bytes.NewBufferString(`{"nuids":`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
