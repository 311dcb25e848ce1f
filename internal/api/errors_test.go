package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstrand/kanban-api/internal/service/auth"
	"github.com/jstrand/kanban-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{store.ErrUserNotFound, http.StatusNotFound},
		{store.ErrBoardNotFound, http.StatusNotFound},
		{store.ErrColumnNotFound, http.StatusNotFound},
		{store.ErrTaskNotFound, http.StatusNotFound},
		{store.ErrEmailExists, http.StatusConflict},
		{store.ErrDuplicate, http.StatusConflict},
		{store.ErrInvalidEntity, http.StatusBadRequest},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrExpiredToken, http.StatusUnauthorized},
		{auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{errors.New("something internal"), http.StatusInternalServerError},
		// Wrapped errors map the same as their cause.
		{fmt.Errorf("loading board: %w", store.ErrBoardNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err), "error: %v", tt.err)
	}
}

func TestGetSafeErrorMessageNeverLeaksInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New("pq: connection to server at 10.0.0.5 failed")
	msg := GetSafeErrorMessage(internal)

	assert.Equal(t, "An internal error occurred", msg)
	assert.NotContains(t, msg, "10.0.0.5")
}

func TestGetSafeErrorMessageKnownErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Board not found", GetSafeErrorMessage(store.ErrBoardNotFound))
	assert.Equal(t, "Email address is already registered", GetSafeErrorMessage(store.ErrEmailExists))
	assert.Equal(t, "Invalid email or password", GetSafeErrorMessage(auth.ErrInvalidCredentials))
	assert.Equal(t, "Token has expired", GetSafeErrorMessage(auth.ErrExpiredToken))
}
