package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/helixlabs/helixgate/internal/domain"
	"github.com/helixlabs/helixgate/internal/store"
)

// MockSubmissionStore implements store.SubmissionStore for testing.
type MockSubmissionStore struct {
	// Function fields for customizable behavior
	AppendFn               func(ctx context.Context, submission *domain.Submission) error
	GetLatestStatusFn      func(ctx context.Context, nuid string) (*domain.ApplicantStatus, error)
	GetLatestStatusBatchFn func(ctx context.Context, nuids []string) ([]domain.ApplicantStatus, error)

	// Data for the default in-memory implementation. Submissions records
	// every appended row in order; Statuses is preloaded by tests that
	// exercise the status queries.
	mu          sync.Mutex
	Submissions []*domain.Submission
	Statuses    map[string]domain.ApplicantStatus

	AppendError error
	StatusError error
}

// NewMockSubmissionStore creates a new mock store with initialized defaults.
func NewMockSubmissionStore() *MockSubmissionStore {
	return &MockSubmissionStore{
		Statuses: make(map[string]domain.ApplicantStatus),
	}
}

// Append implements the SubmissionStore interface.
func (m *MockSubmissionStore) Append(ctx context.Context, submission *domain.Submission) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, submission)
	}

	if m.AppendError != nil {
		return m.AppendError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	submission.ID = int64(len(m.Submissions) + 1)
	m.Submissions = append(m.Submissions, submission)
	return nil
}

// GetLatestStatus implements the SubmissionStore interface.
func (m *MockSubmissionStore) GetLatestStatus(
	ctx context.Context,
	nuid string,
) (*domain.ApplicantStatus, error) {
	if m.GetLatestStatusFn != nil {
		return m.GetLatestStatusFn(ctx, nuid)
	}

	statuses, err := m.GetLatestStatusBatch(ctx, []string{nuid})
	if err != nil {
		return nil, err
	}

	if len(statuses) == 0 {
		return nil, store.ErrApplicantNotFound
	}
	return &statuses[0], nil
}

// GetLatestStatusBatch implements the SubmissionStore interface.
func (m *MockSubmissionStore) GetLatestStatusBatch(
	ctx context.Context,
	nuids []string,
) ([]domain.ApplicantStatus, error) {
	if m.GetLatestStatusBatchFn != nil {
		return m.GetLatestStatusBatchFn(ctx, nuids)
	}

	if m.StatusError != nil {
		return nil, m.StatusError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	found := make([]domain.ApplicantStatus, 0)
	seen := make(map[string]struct{}, len(nuids))
	for _, nuid := range nuids {
		if _, dup := seen[nuid]; dup {
			continue
		}
		seen[nuid] = struct{}{}

		if status, ok := m.Statuses[nuid]; ok {
			found = append(found, status)
		}
	}
	return found, nil
}

// AppendedTokens returns the tokens of every recorded submission, in
// append order. Helper for asserting the attempt log in tests.
func (m *MockSubmissionStore) AppendedTokens() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	tokens := make([]string, len(m.Submissions))
	for i, submission := range m.Submissions {
		tokens[i] = submission.Token.String()
	}
	return tokens
}

// WithTx implements the SubmissionStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockSubmissionStore) WithTx(tx *sql.Tx) store.SubmissionStore {
	return m
}
