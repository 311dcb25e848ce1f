package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/domain"
)

// ColumnStore defines the interface for column data persistence.
type ColumnStore interface {
	// Create saves a new column to the store.
	// Returns ErrInvalidEntity if the board does not exist.
	Create(ctx context.Context, column *domain.Column) error

	// GetByID retrieves a column by its unique ID.
	// Returns ErrColumnNotFound if the column does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error)

	// ListByBoard retrieves all columns of the given board ordered by
	// position.
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)

	// Update modifies an existing column's title and position.
	// Returns ErrColumnNotFound if the column does not exist.
	Update(ctx context.Context, column *domain.Column) error

	// Delete removes a column and, via cascading constraints, its tasks.
	// Returns ErrColumnNotFound if the column does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByBoard removes all columns of the given board. Deleting
	// zero columns is not an error.
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error

	// WithTx returns a new ColumnStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ColumnStore
}
