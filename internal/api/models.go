package api

import "github.com/helixlabs/helixgate/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Name string `json:"name" validate:"required"`
	NUID string `json:"nuid" validate:"required"`
}

// RegisterResponse defines the successful response for the registration
// endpoint. The canonical solution is never part of this payload.
type RegisterResponse struct {
	Token           string `json:"token"`
	ChallengeString string `json:"challenge_string"`
}

// TokenResponse defines the successful response for the token recovery endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// ChallengeResponse defines the successful response for the challenge
// retrieval endpoint.
type ChallengeResponse struct {
	ChallengeString string `json:"challenge_string"`
}

// SubmitResponse defines the successful response for a correct submission.
type SubmitResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// IncorrectSolutionResponse is returned when a submission does not match
// the stored solution. It carries both mappings so the applicant can
// diff their answer against the expected one.
type IncorrectSolutionResponse struct {
	Error            string            `json:"error"`
	ExpectedSolution map[string]uint64 `json:"expected_solution"`
	GivenSolution    map[string]uint64 `json:"given_solution"`
}

// BatchStatusRequest defines the payload for the batch status endpoint.
type BatchStatusRequest struct {
	NUIDs []string `json:"nuids" validate:"required,min=1"`
}

// BatchStatusResponse defines the response for the batch status endpoint.
// Partial misses are reported in NotFound rather than failing the request.
type BatchStatusResponse struct {
	Found    []domain.ApplicantStatus `json:"found"`
	NotFound []string                 `json:"not_found"`
}
