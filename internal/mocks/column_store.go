package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/store"
)

// MockColumnStore implements store.ColumnStore for testing.
type MockColumnStore struct {
	mu sync.Mutex

	CreateFn      func(ctx context.Context, column *domain.Column) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	ListByBoardFn func(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	UpdateFn      func(ctx context.Context, column *domain.Column) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	Columns map[uuid.UUID]*domain.Column
	Err     error
}

// NewMockColumnStore creates a new mock store with initialized defaults.
func NewMockColumnStore() *MockColumnStore {
	return &MockColumnStore{
		Columns: make(map[uuid.UUID]*domain.Column),
	}
}

// Add seeds the store with a column, bypassing error injection.
func (m *MockColumnStore) Add(column *domain.Column) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Columns[column.ID] = column
}

// Create implements the store.ColumnStore interface.
func (m *MockColumnStore) Create(ctx context.Context, column *domain.Column) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, column)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Add(column)
	return nil
}

// GetByID implements the store.ColumnStore interface.
func (m *MockColumnStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	column, exists := m.Columns[id]
	if !exists {
		return nil, store.ErrColumnNotFound
	}
	return column, nil
}

// ListByBoard implements the store.ColumnStore interface.
func (m *MockColumnStore) ListByBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.Column, error) {
	if m.ListByBoardFn != nil {
		return m.ListByBoardFn(ctx, boardID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var columns []*domain.Column
	for _, column := range m.Columns {
		if column.BoardID == boardID {
			columns = append(columns, column)
		}
	}
	sort.Slice(columns, func(i, j int) bool {
		return columns[i].Position < columns[j].Position
	})
	return columns, nil
}

// Update implements the store.ColumnStore interface.
func (m *MockColumnStore) Update(ctx context.Context, column *domain.Column) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, column)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Columns[column.ID]; !exists {
		return store.ErrColumnNotFound
	}
	m.Columns[column.ID] = column
	return nil
}

// Delete implements the store.ColumnStore interface.
func (m *MockColumnStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Columns[id]; !exists {
		return store.ErrColumnNotFound
	}
	delete(m.Columns, id)
	return nil
}

// DeleteByBoard implements the store.ColumnStore interface.
func (m *MockColumnStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, column := range m.Columns {
		if column.BoardID == boardID {
			delete(m.Columns, id)
		}
	}
	return nil
}

// WithTx implements the store.ColumnStore interface.
func (m *MockColumnStore) WithTx(tx *sql.Tx) store.ColumnStore {
	return m
}
