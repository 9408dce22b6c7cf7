package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/store"
)

// MockApplicantStore implements store.ApplicantStore for testing.
type MockApplicantStore struct {
	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, applicant *domain.Applicant) error
	GetByNUIDFn func(ctx context.Context, nuid string) (*domain.Applicant, error)

	// Data for the default in-memory implementation. The mutex makes
	// Create an atomic insert-if-absent, mirroring the database's
	// uniqueness constraint under concurrent callers.
	mu         sync.Mutex
	Applicants map[string]*domain.Applicant

	CreateError error
	GetError    error
}

// NewMockApplicantStore creates a new mock store with initialized defaults.
func NewMockApplicantStore() *MockApplicantStore {
	return &MockApplicantStore{
		Applicants: make(map[string]*domain.Applicant),
	}
}

// Create implements the ApplicantStore interface.
func (m *MockApplicantStore) Create(ctx context.Context, applicant *domain.Applicant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, applicant)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Applicants[applicant.NUID]; exists {
		return store.ErrNUIDExists
	}

	m.Applicants[applicant.NUID] = applicant
	return nil
}

// GetByNUID implements the ApplicantStore interface.
func (m *MockApplicantStore) GetByNUID(
	ctx context.Context,
	nuid string,
) (*domain.Applicant, error) {
	if m.GetByNUIDFn != nil {
		return m.GetByNUIDFn(ctx, nuid)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	applicant, exists := m.Applicants[nuid]
	if !exists {
		return nil, store.ErrApplicantNotFound
	}
	return applicant, nil
}

// WithTx implements the ApplicantStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockApplicantStore) WithTx(tx *sql.Tx) store.ApplicantStore {
	return m
}
