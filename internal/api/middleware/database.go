package middleware

import (
	"context"
	"net/http"

	"github.com/jstrand/kanban-api/internal/api/shared"
	"github.com/jstrand/kanban-api/internal/platform/logger"
	"github.com/jstrand/kanban-api/internal/redact"
)

// DatabaseReadiness is the subset of the connection health utility the
// middleware needs: an idempotent "make sure we are connected" call.
type DatabaseReadiness interface {
	TryReconnect(ctx context.Context) error
}

// DatabaseMiddleware gates storage-backed routes on a live database
// connection. On a cold start this triggers the connect sequence; once
// connected it is a cheap cache-hit check.
type DatabaseMiddleware struct {
	health DatabaseReadiness
}

// NewDatabaseMiddleware creates a DatabaseMiddleware backed by the given
// health utility.
func NewDatabaseMiddleware(health DatabaseReadiness) *DatabaseMiddleware {
	return &DatabaseMiddleware{health: health}
}

// Require ensures the database is reachable before the request proceeds.
// On failure the request is short-circuited with 503 Service Unavailable;
// it never reaches the stores.
func (m *DatabaseMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := m.health.TryReconnect(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error("database unavailable, rejecting request",
				"path", r.URL.Path,
				"error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusServiceUnavailable,
				"Service temporarily unavailable")
			return
		}
		next.ServeHTTP(w, r)
	})
}
