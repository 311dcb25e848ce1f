package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/domain"
)

// BoardStore defines the interface for board data persistence.
type BoardStore interface {
	// Create saves a new board to the store.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, board *domain.Board) error

	// GetByID retrieves a board by its unique ID.
	// Returns ErrBoardNotFound if the board does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)

	// ListByOwner retrieves all boards owned by the given user, most
	// recently updated first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)

	// Update modifies an existing board's name, description, and
	// archived flag. Returns ErrBoardNotFound if the board does not exist.
	Update(ctx context.Context, board *domain.Board) error

	// Delete removes a board and, via cascading constraints, its columns
	// and tasks. Returns ErrBoardNotFound if the board does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new BoardStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) BoardStore
}
