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

// MockBoardStore implements store.BoardStore for testing.
type MockBoardStore struct {
	mu sync.Mutex

	CreateFn      func(ctx context.Context, board *domain.Board) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)
	UpdateFn      func(ctx context.Context, board *domain.Board) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	Boards map[uuid.UUID]*domain.Board
	Err    error
}

// NewMockBoardStore creates a new mock store with initialized defaults.
func NewMockBoardStore() *MockBoardStore {
	return &MockBoardStore{
		Boards: make(map[uuid.UUID]*domain.Board),
	}
}

// Add seeds the store with a board, bypassing error injection.
func (m *MockBoardStore) Add(board *domain.Board) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Boards[board.ID] = board
}

// Create implements the store.BoardStore interface.
func (m *MockBoardStore) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, board)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Add(board)
	return nil
}

// GetByID implements the store.BoardStore interface.
func (m *MockBoardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	board, exists := m.Boards[id]
	if !exists {
		return nil, store.ErrBoardNotFound
	}
	return board, nil
}

// ListByOwner implements the store.BoardStore interface.
func (m *MockBoardStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Board, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var boards []*domain.Board
	for _, board := range m.Boards {
		if board.OwnerID == ownerID {
			boards = append(boards, board)
		}
	}
	sort.Slice(boards, func(i, j int) bool {
		return boards[i].UpdatedAt.After(boards[j].UpdatedAt)
	})
	return boards, nil
}

// Update implements the store.BoardStore interface.
func (m *MockBoardStore) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, board)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Boards[board.ID]; !exists {
		return store.ErrBoardNotFound
	}
	m.Boards[board.ID] = board
	return nil
}

// Delete implements the store.BoardStore interface.
func (m *MockBoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Boards[id]; !exists {
		return store.ErrBoardNotFound
	}
	delete(m.Boards, id)
	return nil
}

// WithTx implements the store.BoardStore interface.
func (m *MockBoardStore) WithTx(tx *sql.Tx) store.BoardStore {
	return m
}
