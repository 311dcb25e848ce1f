package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/mocks"
)

func mustNewColumn(t *testing.T, boardID uuid.UUID, title string, position int) *domain.Column {
	t.Helper()
	column, err := domain.NewColumn(boardID, title, position)
	require.NoError(t, err)
	return column
}

type columnFixture struct {
	ownerID uuid.UUID
	board   *domain.Board
	boards  *mocks.MockBoardStore
	columns *mocks.MockColumnStore
	handler *ColumnHandler
}

func newColumnFixture(t *testing.T) *columnFixture {
	t.Helper()

	ownerID := uuid.New()
	board := mustNewBoard(t, ownerID, "Board")

	boards := mocks.NewMockBoardStore()
	boards.Add(board)
	columns := mocks.NewMockColumnStore()

	return &columnFixture{
		ownerID: ownerID,
		board:   board,
		boards:  boards,
		columns: columns,
		handler: NewColumnHandler(boards, columns),
	}
}

func TestColumnCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid column", func(t *testing.T) {
		f := newColumnFixture(t)

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, authedRequest(t, http.MethodPost,
			"/api/boards/"+f.board.ID.String()+"/columns", f.ownerID,
			map[string]interface{}{"title": "To Do", "position": 0},
			map[string]string{"boardID": f.board.ID.String()}))

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var column domain.Column
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&column))
		assert.Equal(t, f.board.ID, column.BoardID)
		assert.Equal(t, "To Do", column.Title)
	})

	t.Run("foreign board", func(t *testing.T) {
		f := newColumnFixture(t)

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, authedRequest(t, http.MethodPost,
			"/api/boards/"+f.board.ID.String()+"/columns", uuid.New(),
			map[string]interface{}{"title": "To Do", "position": 0},
			map[string]string{"boardID": f.board.ID.String()}))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Empty(t, f.columns.Columns)
	})

	t.Run("negative position", func(t *testing.T) {
		f := newColumnFixture(t)

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, authedRequest(t, http.MethodPost,
			"/api/boards/"+f.board.ID.String()+"/columns", f.ownerID,
			map[string]interface{}{"title": "To Do", "position": -1},
			map[string]string{"boardID": f.board.ID.String()}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestColumnListOrdersByPosition(t *testing.T) {
	t.Parallel()

	f := newColumnFixture(t)
	f.columns.Add(mustNewColumn(t, f.board.ID, "Done", 2))
	f.columns.Add(mustNewColumn(t, f.board.ID, "To Do", 0))
	f.columns.Add(mustNewColumn(t, f.board.ID, "In Progress", 1))

	recorder := httptest.NewRecorder()
	f.handler.List(recorder, authedRequest(t, http.MethodGet,
		"/api/boards/"+f.board.ID.String()+"/columns", f.ownerID, nil,
		map[string]string{"boardID": f.board.ID.String()}))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var columns []*domain.Column
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&columns))
	require.Len(t, columns, 3)
	assert.Equal(t, "To Do", columns[0].Title)
	assert.Equal(t, "In Progress", columns[1].Title)
	assert.Equal(t, "Done", columns[2].Title)
}

func TestColumnUpdate(t *testing.T) {
	t.Parallel()

	f := newColumnFixture(t)
	column := mustNewColumn(t, f.board.ID, "Before", 0)
	f.columns.Add(column)

	recorder := httptest.NewRecorder()
	f.handler.Update(recorder, authedRequest(t, http.MethodPut,
		"/api/columns/"+column.ID.String(), f.ownerID,
		map[string]interface{}{"title": "After", "position": 3},
		map[string]string{"columnID": column.ID.String()}))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated domain.Column
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 3, updated.Position)
}

func TestColumnDelete(t *testing.T) {
	t.Parallel()

	f := newColumnFixture(t)
	column := mustNewColumn(t, f.board.ID, "Doomed", 0)
	f.columns.Add(column)

	t.Run("foreign column deletes as not found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		f.handler.Delete(recorder, authedRequest(t, http.MethodDelete,
			"/api/columns/"+column.ID.String(), uuid.New(), nil,
			map[string]string{"columnID": column.ID.String()}))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Len(t, f.columns.Columns, 1)
	})

	t.Run("owner can delete", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		f.handler.Delete(recorder, authedRequest(t, http.MethodDelete,
			"/api/columns/"+column.ID.String(), f.ownerID, nil,
			map[string]string{"columnID": column.ID.String()}))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, f.columns.Columns)
	})
}
