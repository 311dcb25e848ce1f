package dbconn

import (
	"context"
	"database/sql"
	"time"
)

// Driver abstracts the underlying database client library. The production
// implementation dials PostgreSQL through the pgx stdlib driver; tests
// substitute a fake that fails on demand.
type Driver interface {
	// Connect establishes a new session. Each call carries its own
	// driver-level timeout via opts.ConnectTimeout; the retry loop in the
	// Manager governs total attempts, not per-attempt duration.
	Connect(ctx context.Context, url string, opts Options) (Session, error)
}

// Session is a live database session produced by a Driver.
type Session interface {
	// Ping issues a lightweight liveness probe against the backend.
	Ping(ctx context.Context) error

	// Close tears down the session. Closing an already-closed session
	// is a no-op.
	Close() error

	// Alive reports the driver's live view of the session without
	// performing I/O. A session restored from a previous serverless
	// invocation may report false here while the manager's cached flag
	// still claims connected; the driver's answer wins.
	Alive() bool

	// DB exposes the session's database handle for query execution.
	DB() *sql.DB
}

// Options tunes the connection pool for the execution environment.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration

	// ConnectTimeout bounds the initial dial-and-ping of a single
	// connection attempt.
	ConnectTimeout time.Duration
}

// ServerlessOptions returns the pool profile for serverless execution:
// a small pool, short idle tolerance, and a longer connect timeout to
// absorb cold network paths.
func ServerlessOptions() Options {
	return Options{
		MaxOpenConns:    3,
		MaxIdleConns:    1,
		ConnMaxIdleTime: 30 * time.Second,
		ConnMaxLifetime: 5 * time.Minute,
		ConnectTimeout:  10 * time.Second,
	}
}

// PersistentOptions returns the pool profile for long-lived deployments.
func PersistentOptions() Options {
	return Options{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxIdleTime: 5 * time.Minute,
		ConnMaxLifetime: 30 * time.Minute,
		ConnectTimeout:  5 * time.Second,
	}
}
