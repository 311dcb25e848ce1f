package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/api/shared"
	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/store"
)

// loadOwnedBoard loads the board identified by rawID and verifies that
// the authenticated user owns it. On failure the error response has
// already been written and ok is false. A foreign board reports 404
// rather than 403 so the endpoint does not confirm the board exists.
func loadOwnedBoard(
	w http.ResponseWriter,
	r *http.Request,
	boards store.BoardStore,
	rawID string,
) (*domain.Board, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	boardID, err := uuid.Parse(rawID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid board ID")
		return nil, false
	}

	board, err := boards.GetByID(r.Context(), boardID)
	if err != nil {
		if errors.Is(err, store.ErrBoardNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return nil, false
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to load board", err)
		return nil, false
	}

	if board.OwnerID != userID {
		shared.RespondWithError(w, r, http.StatusNotFound,
			GetSafeErrorMessage(store.ErrBoardNotFound))
		return nil, false
	}

	return board, true
}

// loadOwnedBoardByID is loadOwnedBoard for callers that already hold a
// parsed board ID.
func loadOwnedBoardByID(
	w http.ResponseWriter,
	r *http.Request,
	boards store.BoardStore,
	boardID uuid.UUID,
) (*domain.Board, bool) {
	return loadOwnedBoard(w, r, boards, boardID.String())
}

// parseIDParam parses a URL parameter as a UUID, writing a 400 response
// on failure.
func parseIDParam(w http.ResponseWriter, r *http.Request, raw, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+label)
		return uuid.Nil, false
	}
	return id, true
}
