package mocks

import (
	"context"

	"github.com/jstrand/kanban-api/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. It invokes the
// function with a nil transaction, which the mock stores ignore, so
// transactional handler paths can run without a database.
type MockTxRunner struct {
	// BeginErr, when set, is returned without invoking the function.
	BeginErr error

	// Calls counts how many transactions were started.
	Calls int
}

// RunInTransaction implements the store.TxRunner interface.
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}
	m.Calls++
	return fn(ctx, nil)
}
