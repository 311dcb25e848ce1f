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

// TaskHandler handles task CRUD API requests. Tasks are created and
// listed under columns, listed board-wide under boards, and addressed
// directly for updates and deletes.
type TaskHandler struct {
	boardStore  store.BoardStore
	columnStore store.ColumnStore
	taskStore   store.TaskStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(
	boardStore store.BoardStore,
	columnStore store.ColumnStore,
	taskStore store.TaskStore,
) *TaskHandler {
	return &TaskHandler{
		boardStore:  boardStore,
		columnStore: columnStore,
		taskStore:   taskStore,
	}
}

// Create handles POST /api/columns/{columnID}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	column, ok := h.authorizeColumn(w, r, chi.URLParam(r, "columnID"))
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := domain.NewTask(column.BoardID, column.ID, req.Title, req.Description, req.Position)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}
	task.DueDate = req.DueDate

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// ListByColumn handles GET /api/columns/{columnID}/tasks. Tasks are
// ordered by position.
func (h *TaskHandler) ListByColumn(w http.ResponseWriter, r *http.Request) {
	column, ok := h.authorizeColumn(w, r, chi.URLParam(r, "columnID"))
	if !ok {
		return
	}

	tasks, err := h.taskStore.ListByColumn(r.Context(), column.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// ListByBoard handles GET /api/boards/{boardID}/tasks. Tasks across all
// columns of the board are returned ordered by column and position.
func (h *TaskHandler) ListByBoard(w http.ResponseWriter, r *http.Request) {
	board, ok := loadOwnedBoard(w, r, h.boardStore, chi.URLParam(r, "boardID"))
	if !ok {
		return
	}

	tasks, err := h.taskStore.ListByBoard(r.Context(), board.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Update handles PUT /api/tasks/{taskID}. A changed column_id moves the
// task; the target column must belong to the same board.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	task, ok := h.authorizeTask(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if req.ColumnID != task.ColumnID {
		target, err := h.columnStore.GetByID(r.Context(), req.ColumnID)
		if err != nil {
			if errors.Is(err, store.ErrColumnNotFound) {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Target column not found")
				return
			}
			shared.RespondWithErrorAndLog(w, r,
				http.StatusInternalServerError, "Failed to load target column", err)
			return
		}
		if target.BoardID != task.BoardID {
			shared.RespondWithError(w, r,
				http.StatusBadRequest, "Target column belongs to a different board")
			return
		}
		task.ColumnID = target.ID
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Position = req.Position
	task.DueDate = req.DueDate
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{taskID}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	task, ok := h.authorizeTask(w, r)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), task.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeColumn loads a column and verifies board ownership, mirroring
// the column handler's check.
func (h *TaskHandler) authorizeColumn(
	w http.ResponseWriter,
	r *http.Request,
	rawID string,
) (*domain.Column, bool) {
	columnID, ok := parseIDParam(w, r, rawID, "column ID")
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

// authorizeTask loads the task from the URL and verifies that the
// authenticated user owns its board.
func (h *TaskHandler) authorizeTask(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.Task, bool) {
	taskID, ok := parseIDParam(w, r, chi.URLParam(r, "taskID"), "task ID")
	if !ok {
		return nil, false
	}

	task, err := h.taskStore.GetByID(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return nil, false
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to load task", err)
		return nil, false
	}

	if _, ok := loadOwnedBoardByID(w, r, h.boardStore, task.BoardID); !ok {
		return nil, false
	}

	return task, true
}
