package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/domain"
	"github.com/jstrand/kanban-api/internal/platform/logger"
	"github.com/jstrand/kanban-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend.
type TaskStore struct {
	db store.DBTX
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface.
func NewTaskStore(db store.DBTX) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &TaskStore{db: db}
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

const taskColumns = `id, board_id, column_id, title, description, position, due_date, created_at, updated_at`

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.BoardID,
		task.ColumnID,
		task.Title,
		task.Description,
		task.Position,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Error("failed to insert task",
			"error", err, "task_id", task.ID)
		return MapError(err)
	}
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrTaskNotFound
		}
		return nil, MapError(err)
	}
	return task, nil
}

// ListByColumn implements store.TaskStore.ListByColumn
func (s *TaskStore) ListByColumn(
	ctx context.Context,
	columnID uuid.UUID,
) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE column_id = $1
		ORDER BY position ASC, created_at ASC
	`
	return s.queryTasks(ctx, query, columnID)
}

// ListByBoard implements store.TaskStore.ListByBoard
func (s *TaskStore) ListByBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE board_id = $1
		ORDER BY column_id ASC, position ASC, created_at ASC
	`
	return s.queryTasks(ctx, query, boardID)
}

// Update implements store.TaskStore.Update. Moves between columns are a
// plain column_id update; the handler has already verified the target
// column belongs to the same board, and the composite foreign key on
// (board_id, column_id) enforces it again at the database level.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET column_id = $1, title = $2, description = $3, position = $4,
		    due_date = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query,
		task.ColumnID,
		task.Title,
		task.Description,
		task.Position,
		task.DueDate,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// DeleteByBoard implements store.TaskStore.DeleteByBoard
func (s *TaskStore) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE board_id = $1`, boardID)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.TaskStore.WithTx
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{db: tx}
}

func (s *TaskStore) queryTasks(
	ctx context.Context,
	query string,
	arg interface{},
) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return tasks, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task    domain.Task
		dueDate sql.NullTime
	)
	err := row.Scan(
		&task.ID,
		&task.BoardID,
		&task.ColumnID,
		&task.Title,
		&task.Description,
		&task.Position,
		&dueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		t := dueDate.Time.UTC()
		task.DueDate = &t
	}
	return &task, nil
}
