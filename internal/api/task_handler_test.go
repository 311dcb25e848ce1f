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

type taskFixture struct {
	ownerID uuid.UUID
	board   *domain.Board
	column  *domain.Column
	boards  *mocks.MockBoardStore
	columns *mocks.MockColumnStore
	tasks   *mocks.MockTaskStore
	handler *TaskHandler
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()

	ownerID := uuid.New()
	board := mustNewBoard(t, ownerID, "Board")
	column := mustNewColumn(t, board.ID, "To Do", 0)

	boards := mocks.NewMockBoardStore()
	boards.Add(board)
	columns := mocks.NewMockColumnStore()
	columns.Add(column)
	tasks := mocks.NewMockTaskStore()

	return &taskFixture{
		ownerID: ownerID,
		board:   board,
		column:  column,
		boards:  boards,
		columns: columns,
		tasks:   tasks,
		handler: NewTaskHandler(boards, columns, tasks),
	}
}

func (f *taskFixture) addTask(t *testing.T, title string, position int) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(f.board.ID, f.column.ID, title, "", position)
	require.NoError(t, err)
	f.tasks.Add(task)
	return task
}

func TestTaskCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid task", func(t *testing.T) {
		f := newTaskFixture(t)

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, authedRequest(t, http.MethodPost,
			"/api/columns/"+f.column.ID.String()+"/tasks", f.ownerID,
			map[string]interface{}{
				"title":       "Write release notes",
				"description": "for 1.4",
				"position":    0,
			},
			map[string]string{"columnID": f.column.ID.String()}))

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var task domain.Task
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&task))
		assert.Equal(t, f.board.ID, task.BoardID)
		assert.Equal(t, f.column.ID, task.ColumnID)
		assert.Equal(t, "Write release notes", task.Title)
	})

	t.Run("unknown column", func(t *testing.T) {
		f := newTaskFixture(t)
		missing := uuid.New().String()

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, authedRequest(t, http.MethodPost,
			"/api/columns/"+missing+"/tasks", f.ownerID,
			map[string]interface{}{"title": "orphan", "position": 0},
			map[string]string{"columnID": missing}))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("foreign column", func(t *testing.T) {
		f := newTaskFixture(t)

		recorder := httptest.NewRecorder()
		f.handler.Create(recorder, authedRequest(t, http.MethodPost,
			"/api/columns/"+f.column.ID.String()+"/tasks", uuid.New(),
			map[string]interface{}{"title": "stolen", "position": 0},
			map[string]string{"columnID": f.column.ID.String()}))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Empty(t, f.tasks.Tasks)
	})
}

func TestTaskListByColumn(t *testing.T) {
	t.Parallel()

	f := newTaskFixture(t)
	f.addTask(t, "second", 1)
	f.addTask(t, "first", 0)

	recorder := httptest.NewRecorder()
	f.handler.ListByColumn(recorder, authedRequest(t, http.MethodGet,
		"/api/columns/"+f.column.ID.String()+"/tasks", f.ownerID, nil,
		map[string]string{"columnID": f.column.ID.String()}))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var tasks []*domain.Task
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
}

func TestTaskListByBoard(t *testing.T) {
	t.Parallel()

	f := newTaskFixture(t)
	other := mustNewColumn(t, f.board.ID, "Done", 1)
	f.columns.Add(other)

	f.addTask(t, "in todo", 0)
	done, err := domain.NewTask(f.board.ID, other.ID, "in done", "", 0)
	require.NoError(t, err)
	f.tasks.Add(done)

	recorder := httptest.NewRecorder()
	f.handler.ListByBoard(recorder, authedRequest(t, http.MethodGet,
		"/api/boards/"+f.board.ID.String()+"/tasks", f.ownerID, nil,
		map[string]string{"boardID": f.board.ID.String()}))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var tasks []*domain.Task
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&tasks))
	assert.Len(t, tasks, 2)
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()

	t.Run("rename and reposition", func(t *testing.T) {
		f := newTaskFixture(t)
		task := f.addTask(t, "Before", 0)

		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, authedRequest(t, http.MethodPut,
			"/api/tasks/"+task.ID.String(), f.ownerID,
			map[string]interface{}{
				"title":     "After",
				"column_id": f.column.ID.String(),
				"position":  2,
			},
			map[string]string{"taskID": task.ID.String()}))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var updated domain.Task
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, 2, updated.Position)
	})

	t.Run("move to another column of the same board", func(t *testing.T) {
		f := newTaskFixture(t)
		target := mustNewColumn(t, f.board.ID, "Done", 1)
		f.columns.Add(target)
		task := f.addTask(t, "Movable", 0)

		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, authedRequest(t, http.MethodPut,
			"/api/tasks/"+task.ID.String(), f.ownerID,
			map[string]interface{}{
				"title":     "Movable",
				"column_id": target.ID.String(),
				"position":  0,
			},
			map[string]string{"taskID": task.ID.String()}))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var updated domain.Task
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
		assert.Equal(t, target.ID, updated.ColumnID)
	})

	t.Run("move to a column of a different board is rejected", func(t *testing.T) {
		f := newTaskFixture(t)
		otherBoard := mustNewBoard(t, f.ownerID, "Other")
		f.boards.Add(otherBoard)
		foreign := mustNewColumn(t, otherBoard.ID, "Elsewhere", 0)
		f.columns.Add(foreign)
		task := f.addTask(t, "Stay put", 0)

		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, authedRequest(t, http.MethodPut,
			"/api/tasks/"+task.ID.String(), f.ownerID,
			map[string]interface{}{
				"title":     "Stay put",
				"column_id": foreign.ID.String(),
				"position":  0,
			},
			map[string]string{"taskID": task.ID.String()}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, f.column.ID, f.tasks.Tasks[task.ID].ColumnID)
	})

	t.Run("move to an unknown column is rejected", func(t *testing.T) {
		f := newTaskFixture(t)
		task := f.addTask(t, "Stay put", 0)

		recorder := httptest.NewRecorder()
		f.handler.Update(recorder, authedRequest(t, http.MethodPut,
			"/api/tasks/"+task.ID.String(), f.ownerID,
			map[string]interface{}{
				"title":     "Stay put",
				"column_id": uuid.New().String(),
				"position":  0,
			},
			map[string]string{"taskID": task.ID.String()}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()

	f := newTaskFixture(t)
	task := f.addTask(t, "Doomed", 0)

	recorder := httptest.NewRecorder()
	f.handler.Delete(recorder, authedRequest(t, http.MethodDelete,
		"/api/tasks/"+task.ID.String(), f.ownerID, nil,
		map[string]string{"taskID": task.ID.String()}))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, f.tasks.Tasks)
}
