package dbconn

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// pgxDriver dials PostgreSQL through database/sql backed by pgx.
type pgxDriver struct{}

// NewPgxDriver returns the production Driver implementation.
func NewPgxDriver() Driver {
	return pgxDriver{}
}

func (pgxDriver) Connect(ctx context.Context, url string, opts Options) (Session, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	// sql.Open is lazy; force an actual dial so connect failures surface
	// here, inside the retry loop, rather than on the first query.
	pingCtx := ctx
	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &pgxSession{db: db}, nil
}

// pgxSession wraps a *sql.DB with the closed-state bookkeeping the
// manager needs for its cache reconciliation.
type pgxSession struct {
	db     *sql.DB
	closed atomic.Bool
}

var _ Session = (*pgxSession)(nil)

func (s *pgxSession) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgxSession) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

func (s *pgxSession) Alive() bool {
	return !s.closed.Load()
}

func (s *pgxSession) DB() *sql.DB {
	return s.db
}
