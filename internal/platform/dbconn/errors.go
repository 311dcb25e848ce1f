package dbconn

import (
	"errors"
	"fmt"
)

// ErrMissingURL is returned when Connect is called without a configured
// database URL. This is a configuration error: it is never retried.
var ErrMissingURL = errors.New("database URL is not configured")

// ErrNotConnected is returned when a database handle is used while no
// session could be established.
var ErrNotConnected = errors.New("database is not connected")

// ConnectError reports that the retry loop exhausted its attempt budget.
// It wraps the last underlying cause.
type ConnectError struct {
	Attempts int
	Err      error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("database connection failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}
