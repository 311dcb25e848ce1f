package dbconn

import (
	"context"
	"database/sql"
	"sync"
)

// DBHandle routes queries through the manager's current session, ensuring
// a live connection before every call. It satisfies the store layer's
// DBTX interface, so stores built once at startup keep working across
// idle-closes and reconnects that replace the underlying *sql.DB.
type DBHandle struct {
	m *Manager

	deadOnce sync.Once
	dead     *sql.DB
}

// Handle returns a database handle bound to the manager.
func (m *Manager) Handle() *DBHandle {
	return &DBHandle{m: m}
}

func (h *DBHandle) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	db, err := h.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.ExecContext(ctx, query, args...)
}

func (h *DBHandle) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	db, err := h.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.PrepareContext(ctx, query)
}

func (h *DBHandle) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	db, err := h.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, query, args...)
}

// QueryRowContext cannot return an error directly, so a failed connect
// delegates to a permanently closed handle whose row surfaces
// sql.ErrConnDone from Scan.
func (h *DBHandle) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	db, err := h.acquire(ctx)
	if err != nil {
		return h.deadDB().QueryRowContext(ctx, query, args...)
	}
	return db.QueryRowContext(ctx, query, args...)
}

// DB returns the current session's raw handle for callers that need
// transactions (sql.DB.BeginTx). Returns an error when no connection can
// be established.
func (h *DBHandle) DB(ctx context.Context) (*sql.DB, error) {
	return h.acquire(ctx)
}

func (h *DBHandle) acquire(ctx context.Context) (*sql.DB, error) {
	sess, err := h.m.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if db := sess.DB(); db != nil {
		return db, nil
	}
	return nil, ErrNotConnected
}

func (h *DBHandle) deadDB() *sql.DB {
	h.deadOnce.Do(func() {
		db, err := sql.Open("pgx", "")
		if err == nil {
			_ = db.Close()
			h.dead = db
		}
	})
	return h.dead
}
