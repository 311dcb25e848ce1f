package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/jstrand/kanban-api/internal/api/shared"
	"github.com/jstrand/kanban-api/internal/platform/dbconn"
	"github.com/jstrand/kanban-api/internal/platform/logger"
	"github.com/jstrand/kanban-api/internal/redact"
)

// HealthService reports database connection health and can force a
// reconnect. Implemented by dbconn.Health.
type HealthService interface {
	Check(ctx context.Context) dbconn.Status
	TryReconnect(ctx context.Context) error
}

// HealthHandler handles the health and reconnect endpoints.
type HealthHandler struct {
	health HealthService
}

// NewHealthHandler creates a new HealthHandler with the given dependencies.
func NewHealthHandler(health HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Check handles GET /health. The response reflects the database
// connection: UP when connected and the liveness probe succeeds,
// DEGRADED when connected but the probe fails, DOWN otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := h.health.Check(r.Context())

	resp := HealthResponse{DB: status}
	httpStatus := http.StatusOK
	switch {
	case status.Connected && (status.PingOK == nil || *status.PingOK):
		resp.Status = HealthStatusUp
	case status.Connected:
		resp.Status = HealthStatusDegraded
	default:
		resp.Status = HealthStatusDown
		httpStatus = http.StatusServiceUnavailable
	}

	shared.RespondWithJSON(w, r, httpStatus, resp)
}

// Reconnect handles POST /health/reconnect. It forces a connection
// attempt when the database is down; when already connected it is a
// no-op reporting SUCCESS.
func (h *HealthHandler) Reconnect(w http.ResponseWriter, r *http.Request) {
	err := h.health.TryReconnect(r.Context())
	if err == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, ReconnectResponse{
			Status:  ReconnectStatusSuccess,
			Message: "Database connection established",
		})
		return
	}

	var connErr *dbconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, dbconn.ErrMissingURL) {
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, ReconnectResponse{
			Status:  ReconnectStatusFailed,
			Message: "Database connection could not be established",
		})
		return
	}

	logger.FromContext(r.Context()).Error("unexpected reconnect failure",
		"error", redact.Error(err))
	shared.RespondWithJSON(w, r, http.StatusInternalServerError, ReconnectResponse{
		Status:  ReconnectStatusError,
		Message: "Reconnect attempt failed",
	})
}
