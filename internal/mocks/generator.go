package mocks

import "github.com/helixlabs/helixgate/internal/generation"

// MockChallengeGenerator implements generation.ChallengeGenerator for
// testing. It returns Challenge verbatim, or GenerateFn's result when set.
type MockChallengeGenerator struct {
	GenerateFn func() string
	Challenge  string
}

// Ensure MockChallengeGenerator implements the interface
var _ generation.ChallengeGenerator = (*MockChallengeGenerator)(nil)

// Generate implements the ChallengeGenerator interface.
func (m *MockChallengeGenerator) Generate() string {
	if m.GenerateFn != nil {
		return m.GenerateFn()
	}
	return m.Challenge
}
