package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorHierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		parent error
	}{
		{"user not found", ErrUserNotFound, ErrNotFound},
		{"board not found", ErrBoardNotFound, ErrNotFound},
		{"column not found", ErrColumnNotFound, ErrNotFound},
		{"task not found", ErrTaskNotFound, ErrNotFound},
		{"email exists", ErrEmailExists, ErrDuplicate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.err, tt.parent)
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrBoardNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrTaskNotFound)))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("other")))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.False(t, IsDuplicateError(ErrNotFound))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("board", "create", "insert failed", cause)

	assert.Contains(t, err.Error(), "create operation on board failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("task", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on task failed: no rows", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}
