package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common board validation errors
var (
	ErrEmptyBoardID     = errors.New("board ID cannot be empty")
	ErrEmptyBoardOwner  = errors.New("board owner cannot be empty")
	ErrEmptyBoardName   = errors.New("board name cannot be empty")
	ErrBoardNameTooLong = errors.New("board name must be at most 120 characters long")
)

const maxBoardNameLength = 120

// Board represents a kanban board owned by a single user.
type Board struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBoard creates a new Board for the given owner.
// Returns an error if validation fails.
func NewBoard(ownerID uuid.UUID, name, description string) (*Board, error) {
	now := time.Now().UTC()
	board := &Board{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}

	return board, nil
}

// Validate checks if the Board has valid data.
func (b *Board) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBoardID
	}
	if b.OwnerID == uuid.Nil {
		return ErrEmptyBoardOwner
	}
	if b.Name == "" {
		return ErrEmptyBoardName
	}
	if len(b.Name) > maxBoardNameLength {
		return ErrBoardNameTooLong
	}
	return nil
}
