package api

import (
	"errors"
	"net/http"

	"github.com/jstrand/kanban-api/internal/service/auth"
	"github.com/jstrand/kanban-api/internal/store"
)

// MapErrorToStatusCode translates service and store errors into HTTP status
// codes. Unrecognized errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrBoardNotFound),
		errors.Is(err, store.ErrColumnNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for an error. Internal
// details never leak to the response body; handlers log the original error.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrBoardNotFound):
		return "Board not found"
	case errors.Is(err, store.ErrColumnNotFound):
		return "Column not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrEmailExists):
		return "Email address is already registered"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrExpiredRefreshToken):
		return "Token has expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"
	default:
		return "An internal error occurred"
	}
}
