package mocks

import (
	"context"

	"github.com/helixlabs/helixgate/internal/store"
)

// MockTransactor implements store.Transactor for testing. It invokes the
// function directly with a nil transaction; the mock stores ignore the
// transaction handle anyway.
type MockTransactor struct {
	RunFn func(ctx context.Context, fn store.TxFn) error

	// RunError, when set, is returned without invoking the function.
	RunError error
}

// Ensure MockTransactor implements the interface
var _ store.Transactor = (*MockTransactor)(nil)

// RunInTransaction implements the Transactor interface.
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.RunFn != nil {
		return m.RunFn(ctx, fn)
	}

	if m.RunError != nil {
		return m.RunError
	}

	return fn(ctx, nil)
}
