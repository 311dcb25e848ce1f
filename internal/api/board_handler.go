package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jstrand/kanban-api/internal/api/shared"
	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/store"
)

// BoardHandler handles board CRUD API requests.
type BoardHandler struct {
	boardStore  store.BoardStore
	columnStore store.ColumnStore
	taskStore   store.TaskStore
	txRunner    store.TxRunner
}

// NewBoardHandler creates a new BoardHandler with the given dependencies.
func NewBoardHandler(
	boardStore store.BoardStore,
	columnStore store.ColumnStore,
	taskStore store.TaskStore,
	txRunner store.TxRunner,
) *BoardHandler {
	return &BoardHandler{
		boardStore:  boardStore,
		columnStore: columnStore,
		taskStore:   taskStore,
		txRunner:    txRunner,
	}
}

// Create handles POST /api/boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateBoardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	board, err := domain.NewBoard(userID, req.Name, req.Description)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid board data: "+err.Error())
		return
	}

	if err := h.boardStore.Create(r.Context(), board); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, board)
}

// List handles GET /api/boards. Only the authenticated user's boards are
// returned.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	boards, err := h.boardStore.ListByOwner(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list boards", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, boards)
}

// Get handles GET /api/boards/{boardID}.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	board, ok := h.authorizeBoard(w, r, chi.URLParam(r, "boardID"))
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// Update handles PUT /api/boards/{boardID}.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	board, ok := h.authorizeBoard(w, r, chi.URLParam(r, "boardID"))
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	board.Name = req.Name
	board.Description = req.Description
	board.Archived = req.Archived
	board.UpdatedAt = time.Now().UTC()

	if err := board.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid board data: "+err.Error())
		return
	}

	if err := h.boardStore.Update(r.Context(), board); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// Delete handles DELETE /api/boards/{boardID}. The board's tasks and
// columns are removed in the same transaction as the board itself.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	board, ok := h.authorizeBoard(w, r, chi.URLParam(r, "boardID"))
	if !ok {
		return
	}

	err := h.txRunner.RunInTransaction(r.Context(),
		func(ctx context.Context, tx *sql.Tx) error {
			if err := h.taskStore.WithTx(tx).DeleteByBoard(ctx, board.ID); err != nil {
				return err
			}
			if err := h.columnStore.WithTx(tx).DeleteByBoard(ctx, board.ID); err != nil {
				return err
			}
			return h.boardStore.WithTx(tx).Delete(ctx, board.ID)
		})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) authorizeBoard(
	w http.ResponseWriter,
	r *http.Request,
	rawID string,
) (*domain.Board, bool) {
	return loadOwnedBoard(w, r, h.boardStore, rawID)
}
