package domain

import (
	"errors"

	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/domain/kmer"
)

// SolutionKmerLength is the substring length used when deriving the
// canonical solution from a challenge string.
const SolutionKmerLength = 3

// Common validation errors for Challenge
var (
	ErrEmptyChallengeToken  = errors.New("challenge token cannot be empty")
	ErrEmptyChallengeString = errors.New("challenge string cannot be empty")
	ErrSolutionMismatch     = errors.New("solution does not match challenge string")
)

// Challenge is the puzzle issued to an applicant at registration,
// paired with its canonical solution. The solution is always derived
// from the challenge string and never independently mutated; the pair
// is written atomically with the Applicant row.
type Challenge struct {
	Token           uuid.UUID         `json:"token"`
	ChallengeString string            `json:"challenge_string"`
	Solution        map[string]uint64 `json:"solution"`
}

// NewChallenge creates a Challenge for the given token, deriving the
// canonical solution from the challenge string.
// Returns an error if validation fails.
func NewChallenge(token uuid.UUID, challengeString string) (*Challenge, error) {
	challenge := &Challenge{
		Token:           token,
		ChallengeString: challengeString,
		Solution:        kmer.Count(challengeString, SolutionKmerLength),
	}

	if err := challenge.Validate(); err != nil {
		return nil, err
	}

	return challenge, nil
}

// Validate checks if the Challenge has valid data, including that the
// stored solution is exactly the one derived from the challenge string.
func (c *Challenge) Validate() error {
	if c.Token == uuid.Nil {
		return ErrEmptyChallengeToken
	}

	if c.ChallengeString == "" {
		return ErrEmptyChallengeString
	}

	if !kmer.Equal(c.Solution, kmer.Count(c.ChallengeString, SolutionKmerLength)) {
		return ErrSolutionMismatch
	}

	return nil
}
