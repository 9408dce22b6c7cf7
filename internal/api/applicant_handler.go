package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/api/shared"
	"github.com/helixlabs/helixgate/internal/service"
)

// ApplicantHandler handles all applicant-facing API requests:
// registration, token recovery, challenge retrieval, submission, and
// status queries.
type ApplicantHandler struct {
	registrationService service.RegistrationService
	verificationService service.VerificationService
	statusService       service.StatusService
	logger              *slog.Logger
}

// NewApplicantHandler creates a new ApplicantHandler with the given dependencies.
func NewApplicantHandler(
	registrationService service.RegistrationService,
	verificationService service.VerificationService,
	statusService service.StatusService,
	logger *slog.Logger,
) *ApplicantHandler {
	return &ApplicantHandler{
		registrationService: registrationService,
		verificationService: verificationService,
		statusService:       statusService,
		logger:              logger.With("component", "applicant_handler"),
	}
}

// getPathToken extracts and parses the token path parameter.
func getPathToken(r *http.Request) (uuid.UUID, bool) {
	token, err := uuid.Parse(chi.URLParam(r, "token"))
	if err != nil {
		return uuid.Nil, false
	}
	return token, true
}

// Register handles POST /api/register.
func (h *ApplicantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.registrationService.Register(r.Context(), req.Name, req.NUID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Token:           result.Token.String(),
		ChallengeString: result.ChallengeString,
	})
}

// ForgotToken handles GET /api/token/{nuid}.
func (h *ApplicantHandler) ForgotToken(w http.ResponseWriter, r *http.Request) {
	nuid := chi.URLParam(r, "nuid")
	if nuid == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "NUID is required")
		return
	}

	token, err := h.statusService.TokenForNUID(r.Context(), nuid)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token.String()})
}

// GetChallenge handles GET /api/challenge/{token}.
func (h *ApplicantHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	token, ok := getPathToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid token format")
		return
	}

	challenge, err := h.statusService.ChallengeForToken(r.Context(), token)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChallengeResponse{ChallengeString: challenge})
}

// Submit handles POST /api/submit/{token}. The request body is the
// submitted solution mapping itself.
func (h *ApplicantHandler) Submit(w http.ResponseWriter, r *http.Request) {
	token, ok := getPathToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid token format")
		return
	}

	var submitted map[string]uint64
	if err := shared.DecodeJSON(r, &submitted); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.verificationService.Verify(r.Context(), token, submitted)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !result.OK {
		// Incorrect answers are a client error; the attempt is already
		// recorded, and the applicant gets the diff material.
		shared.RespondWithJSON(w, r, http.StatusBadRequest, IncorrectSolutionResponse{
			Error:            "Incorrect solution",
			ExpectedSolution: result.Expected,
			GivenSolution:    submitted,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SubmitResponse{
		OK:      true,
		Message: "Correct! Nice work",
	})
}

// GetStatus handles GET /api/status/{nuid}.
func (h *ApplicantHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	nuid := chi.URLParam(r, "nuid")
	if nuid == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "NUID is required")
		return
	}

	status, err := h.statusService.GetStatus(r.Context(), nuid)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, status)
}

// GetStatusBatch handles POST /api/status/batch.
func (h *ApplicantHandler) GetStatusBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchStatusRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	found, notFound, err := h.statusService.GetStatusBatch(r.Context(), req.NUIDs)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BatchStatusResponse{
		Found:    found,
		NotFound: notFound,
	})
}
