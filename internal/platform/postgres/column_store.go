package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/platform/logger"
	"github.com/jstrand/kanban-api/internal/store"
)

// ColumnStore implements the store.ColumnStore interface using a
// PostgreSQL database as the storage backend.
type ColumnStore struct {
	db store.DBTX
}

// NewColumnStore creates a new PostgreSQL implementation of the
// ColumnStore interface.
func NewColumnStore(db store.DBTX) *ColumnStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &ColumnStore{db: db}
}

// Ensure ColumnStore implements store.ColumnStore
var _ store.ColumnStore = (*ColumnStore)(nil)

// Create implements store.ColumnStore.Create
func (s *ColumnStore) Create(ctx context.Context, column *domain.Column) error {
	if err := column.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO columns (id, board_id, title, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		column.ID,
		column.BoardID,
		column.Title,
		column.Position,
		column.CreatedAt,
		column.UpdatedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Error("failed to insert column",
			"error", err, "column_id", column.ID)
		return MapError(err)
	}
	return nil
}

// GetByID implements store.ColumnStore.GetByID
func (s *ColumnStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	query := `
		SELECT id, board_id, title, position, created_at, updated_at
		FROM columns
		WHERE id = $1
	`
	var column domain.Column
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&column.ID,
		&column.BoardID,
		&column.Title,
		&column.Position,
		&column.CreatedAt,
		&column.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrColumnNotFound
		}
		return nil, MapError(err)
	}
	return &column, nil
}

// ListByBoard implements store.ColumnStore.ListByBoard
func (s *ColumnStore) ListByBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.Column, error) {
	query := `
		SELECT id, board_id, title, position, created_at, updated_at
		FROM columns
		WHERE board_id = $1
		ORDER BY position ASC, created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var columns []*domain.Column
	for rows.Next() {
		var column domain.Column
		if err := rows.Scan(
			&column.ID,
			&column.BoardID,
			&column.Title,
			&column.Position,
			&column.CreatedAt,
			&column.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		columns = append(columns, &column)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return columns, nil
}

// Update implements store.ColumnStore.Update
func (s *ColumnStore) Update(ctx context.Context, column *domain.Column) error {
	if err := column.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE columns
		SET title = $1, position = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query,
		column.Title,
		column.Position,
		column.UpdatedAt,
		column.ID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrColumnNotFound)
}

// Delete implements store.ColumnStore.Delete. Tasks in the column are
// removed by ON DELETE CASCADE.
func (s *ColumnStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM columns WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrColumnNotFound)
}

// DeleteByBoard implements store.ColumnStore.DeleteByBoard
func (s *ColumnStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM columns WHERE board_id = $1`, boardID)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.ColumnStore.WithTx
func (s *ColumnStore) WithTx(tx *sql.Tx) store.ColumnStore {
	return &ColumnStore{db: tx}
}
