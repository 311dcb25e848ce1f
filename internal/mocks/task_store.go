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

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	mu sync.Mutex

	CreateFn       func(ctx context.Context, task *domain.Task) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByColumnFn func(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error)
	ListByBoardFn  func(ctx context.Context, boardID uuid.UUID) ([]*domain.Task, error)
	UpdateFn       func(ctx context.Context, task *domain.Task) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error

	Tasks map[uuid.UUID]*domain.Task
	Err   error
}

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Add seeds the store with a task, bypassing error injection.
func (m *MockTaskStore) Add(task *domain.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tasks[task.ID] = task
}

// Create implements the store.TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Add(task)
	return nil
}

// GetByID implements the store.TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// ListByColumn implements the store.TaskStore interface.
func (m *MockTaskStore) ListByColumn(
	ctx context.Context,
	columnID uuid.UUID,
) ([]*domain.Task, error) {
	if m.ListByColumnFn != nil {
		return m.ListByColumnFn(ctx, columnID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.ColumnID == columnID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Position < tasks[j].Position
	})
	return tasks, nil
}

// ListByBoard implements the store.TaskStore interface.
func (m *MockTaskStore) ListByBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.Task, error) {
	if m.ListByBoardFn != nil {
		return m.ListByBoardFn(ctx, boardID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.BoardID == boardID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].ColumnID != tasks[j].ColumnID {
			return tasks[i].ColumnID.String() < tasks[j].ColumnID.String()
		}
		return tasks[i].Position < tasks[j].Position
	})
	return tasks, nil
}

// Update implements the store.TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the store.TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// DeleteByBoard implements the store.TaskStore interface.
func (m *MockTaskStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, task := range m.Tasks {
		if task.BoardID == boardID {
			delete(m.Tasks, id)
		}
	}
	return nil
}

// WithTx implements the store.TaskStore interface.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
