package generation

import (
	"math/rand/v2"
	"sync"
)

// Challenge string parameters. The alphabet matches what the solution
// computation expects: four DNA bases, case-sensitive.
const (
	ChallengeLength   = 100
	ChallengeAlphabet = "ACTG"
)

// ChallengeGenerator defines the interface for producing challenge
// strings. Generation always succeeds; the randomness is an
// anti-guessing measure, not a secrecy boundary, so it does not need to
// be cryptographically secure.
type ChallengeGenerator interface {
	// Generate returns a new challenge string of length ChallengeLength
	// drawn uniformly from ChallengeAlphabet.
	Generate() string
}

// randomGenerator implements ChallengeGenerator over an injected
// math/rand/v2 source.
type randomGenerator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewChallengeGenerator creates a ChallengeGenerator seeded from the
// process-wide random source.
func NewChallengeGenerator() ChallengeGenerator {
	return NewSeededChallengeGenerator(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededChallengeGenerator creates a ChallengeGenerator over the
// given source. Tests use this with a fixed seed to make generation
// deterministic.
func NewSeededChallengeGenerator(src rand.Source) ChallengeGenerator {
	return &randomGenerator{rng: rand.New(src)}
}

// Generate implements ChallengeGenerator.Generate.
func (g *randomGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, ChallengeLength)
	for i := range b {
		b[i] = ChallengeAlphabet[g.rng.IntN(len(ChallengeAlphabet))]
	}

	return string(b)
}
