package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/platform/logger"
	"github.com/jstrand/kanban-api/internal/store"
)

// BoardStore implements the store.BoardStore interface using a PostgreSQL
// database as the storage backend.
type BoardStore struct {
	db store.DBTX
}

// NewBoardStore creates a new PostgreSQL implementation of the BoardStore
// interface.
func NewBoardStore(db store.DBTX) *BoardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &BoardStore{db: db}
}

// Ensure BoardStore implements store.BoardStore
var _ store.BoardStore = (*BoardStore)(nil)

// Create implements store.BoardStore.Create
func (s *BoardStore) Create(ctx context.Context, board *domain.Board) error {
	if err := board.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO boards (id, owner_id, name, description, archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		board.ID,
		board.OwnerID,
		board.Name,
		board.Description,
		board.Archived,
		board.CreatedAt,
		board.UpdatedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Error("failed to insert board",
			"error", err, "board_id", board.ID)
		return MapError(err)
	}
	return nil
}

// GetByID implements store.BoardStore.GetByID
func (s *BoardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	query := `
		SELECT id, owner_id, name, description, archived, created_at, updated_at
		FROM boards
		WHERE id = $1
	`
	var board domain.Board
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&board.ID,
		&board.OwnerID,
		&board.Name,
		&board.Description,
		&board.Archived,
		&board.CreatedAt,
		&board.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrBoardNotFound
		}
		return nil, MapError(err)
	}
	return &board, nil
}

// ListByOwner implements store.BoardStore.ListByOwner
func (s *BoardStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Board, error) {
	query := `
		SELECT id, owner_id, name, description, archived, created_at, updated_at
		FROM boards
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var boards []*domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(
			&board.ID,
			&board.OwnerID,
			&board.Name,
			&board.Description,
			&board.Archived,
			&board.CreatedAt,
			&board.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		boards = append(boards, &board)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return boards, nil
}

// Update implements store.BoardStore.Update
func (s *BoardStore) Update(ctx context.Context, board *domain.Board) error {
	if err := board.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE boards
		SET name = $1, description = $2, archived = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		board.Name,
		board.Description,
		board.Archived,
		board.UpdatedAt,
		board.ID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrBoardNotFound)
}

// Delete implements store.BoardStore.Delete. Columns and tasks of the
// board are removed by ON DELETE CASCADE.
func (s *BoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrBoardNotFound)
}

// WithTx implements store.BoardStore.WithTx
func (s *BoardStore) WithTx(tx *sql.Tx) store.BoardStore {
	return &BoardStore{db: tx}
}
