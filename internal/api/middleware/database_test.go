package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeReadiness struct {
	err   error
	calls int
}

func (f *fakeReadiness) TryReconnect(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestDatabaseMiddleware_Require(t *testing.T) {
	t.Parallel()

	t.Run("request proceeds when the database is reachable", func(t *testing.T) {
		readiness := &fakeReadiness{}
		middleware := NewDatabaseMiddleware(readiness)

		reached := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		middleware.Require(next).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/boards", nil))

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, readiness.calls)
	})

	t.Run("request is rejected with 503 when the database is down", func(t *testing.T) {
		readiness := &fakeReadiness{err: errors.New("connection refused")}
		middleware := NewDatabaseMiddleware(readiness)

		reached := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		})

		recorder := httptest.NewRecorder()
		middleware.Require(next).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/boards", nil))

		assert.False(t, reached, "handler must not run without a database")
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}
