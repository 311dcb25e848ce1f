package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jstrand/kanban-api/internal/api/shared"
	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/store"
)

// ColumnHandler handles column CRUD API requests. Columns are nested
// under boards for creation and listing, and addressed directly for
// updates and deletes.
type ColumnHandler struct {
	boardStore  store.BoardStore
	columnStore store.ColumnStore
}

// NewColumnHandler creates a new ColumnHandler with the given dependencies.
func NewColumnHandler(boardStore store.BoardStore, columnStore store.ColumnStore) *ColumnHandler {
	return &ColumnHandler{
		boardStore:  boardStore,
		columnStore: columnStore,
	}
}

// Create handles POST /api/boards/{boardID}/columns.
func (h *ColumnHandler) Create(w http.ResponseWriter, r *http.Request) {
	board, ok := loadOwnedBoard(w, r, h.boardStore, chi.URLParam(r, "boardID"))
	if !ok {
		return
	}

	var req CreateColumnRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	column, err := domain.NewColumn(board.ID, req.Title, req.Position)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid column data: "+err.Error())
		return
	}

	if err := h.columnStore.Create(r.Context(), column); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, column)
}

// List handles GET /api/boards/{boardID}/columns. Columns are ordered by
// position.
func (h *ColumnHandler) List(w http.ResponseWriter, r *http.Request) {
	board, ok := loadOwnedBoard(w, r, h.boardStore, chi.URLParam(r, "boardID"))
	if !ok {
		return
	}

	columns, err := h.columnStore.ListByBoard(r.Context(), board.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list columns", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, columns)
}

// Update handles PUT /api/columns/{columnID}.
func (h *ColumnHandler) Update(w http.ResponseWriter, r *http.Request) {
	column, ok := h.authorizeColumn(w, r)
	if !ok {
		return
	}

	var req UpdateColumnRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	column.Title = req.Title
	column.Position = req.Position
	column.UpdatedAt = time.Now().UTC()

	if err := column.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid column data: "+err.Error())
		return
	}

	if err := h.columnStore.Update(r.Context(), column); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, column)
}

// Delete handles DELETE /api/columns/{columnID}. Tasks in the column are
// removed by cascading constraints.
func (h *ColumnHandler) Delete(w http.ResponseWriter, r *http.Request) {
	column, ok := h.authorizeColumn(w, r)
	if !ok {
		return
	}

	if err := h.columnStore.Delete(r.Context(), column.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeColumn loads the column from the URL and verifies that the
// authenticated user owns its board. A column on a foreign board reports
// 404, matching loadOwnedBoard.
func (h *ColumnHandler) authorizeColumn(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.Column, bool) {
	columnID, ok := parseIDParam(w, r, chi.URLParam(r, "columnID"), "column ID")
	if !ok {
		return nil, false
	}

	column, err := h.columnStore.GetByID(r.Context(), columnID)
	if err != nil {
		if errors.Is(err, store.ErrColumnNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return nil, false
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to load column", err)
		return nil, false
	}

	if _, ok := loadOwnedBoardByID(w, r, h.boardStore, column.BoardID); !ok {
		return nil, false
	}

	return column, true
}
