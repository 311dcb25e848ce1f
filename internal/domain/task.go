package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common task validation errors
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskColumn  = errors.New("task column cannot be empty")
	ErrEmptyTaskBoard   = errors.New("task board cannot be empty")
	ErrEmptyTaskTitle   = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong = errors.New("task title must be at most 250 characters long")
)

const maxTaskTitleLength = 250

// Task represents a single card on a board. A task always belongs to a
// column and carries the board ID redundantly so board-wide queries do not
// need a join through columns.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	BoardID     uuid.UUID  `json:"board_id"`
	ColumnID    uuid.UUID  `json:"column_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task in the given column.
// Returns an error if validation fails.
func NewTask(boardID, columnID uuid.UUID, title, description string, position int) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		BoardID:     boardID,
		ColumnID:    columnID,
		Title:       title,
		Description: description,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.BoardID == uuid.Nil {
		return ErrEmptyTaskBoard
	}
	if t.ColumnID == uuid.Nil {
		return ErrEmptyTaskColumn
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if len(t.Title) > maxTaskTitleLength {
		return ErrTaskTitleTooLong
	}
	if t.Position < 0 {
		return ErrNegativePosition
	}
	return nil
}
