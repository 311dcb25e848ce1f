package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common column validation errors
var (
	ErrEmptyColumnID      = errors.New("column ID cannot be empty")
	ErrEmptyColumnBoard   = errors.New("column board cannot be empty")
	ErrEmptyColumnTitle   = errors.New("column title cannot be empty")
	ErrColumnTitleTooLong = errors.New("column title must be at most 120 characters long")
	ErrNegativePosition   = errors.New("position cannot be negative")
)

const maxColumnTitleLength = 120

// Column represents a vertical section of a board (e.g. "To Do",
// "In Progress", "Done"). Columns are ordered by Position within a board.
type Column struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"board_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewColumn creates a new Column on the given board.
// Returns an error if validation fails.
func NewColumn(boardID uuid.UUID, title string, position int) (*Column, error) {
	now := time.Now().UTC()
	column := &Column{
		ID:        uuid.New(),
		BoardID:   boardID,
		Title:     title,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := column.Validate(); err != nil {
		return nil, err
	}

	return column, nil
}

// Validate checks if the Column has valid data.
func (c *Column) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyColumnID
	}
	if c.BoardID == uuid.Nil {
		return ErrEmptyColumnBoard
	}
	if c.Title == "" {
		return ErrEmptyColumnTitle
	}
	if len(c.Title) > maxColumnTitleLength {
		return ErrColumnTitleTooLong
	}
	if c.Position < 0 {
		return ErrNegativePosition
	}
	return nil
}
