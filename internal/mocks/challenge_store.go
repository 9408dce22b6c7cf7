package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/store"
)

// MockChallengeStore implements store.ChallengeStore for testing.
type MockChallengeStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, challenge *domain.Challenge) error
	GetByTokenFn func(ctx context.Context, token uuid.UUID) (*domain.Challenge, error)

	// Data for the default in-memory implementation
	mu         sync.Mutex
	Challenges map[uuid.UUID]*domain.Challenge

	CreateError error
	GetError    error
}

// NewMockChallengeStore creates a new mock store with initialized defaults.
func NewMockChallengeStore() *MockChallengeStore {
	return &MockChallengeStore{
		Challenges: make(map[uuid.UUID]*domain.Challenge),
	}
}

// Create implements the ChallengeStore interface.
func (m *MockChallengeStore) Create(ctx context.Context, challenge *domain.Challenge) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, challenge)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Challenges[challenge.Token] = challenge
	return nil
}

// GetByToken implements the ChallengeStore interface.
func (m *MockChallengeStore) GetByToken(
	ctx context.Context,
	token uuid.UUID,
) (*domain.Challenge, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	challenge, exists := m.Challenges[token]
	if !exists {
		return nil, store.ErrChallengeNotFound
	}
	return challenge, nil
}

// WithTx implements the ChallengeStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockChallengeStore) WithTx(tx *sql.Tx) store.ChallengeStore {
	return m
}
