package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the board or column does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByColumn retrieves all tasks of the given column ordered by
	// position.
	ListByColumn(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error)

	// ListByBoard retrieves all tasks of the given board ordered by
	// column and position.
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Task, error)

	// Update modifies an existing task, including moves between columns
	// (a changed ColumnID) and reordering (a changed Position).
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByBoard removes all tasks of the given board. Deleting zero
	// tasks is not an error.
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}
