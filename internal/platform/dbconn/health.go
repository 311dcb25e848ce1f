package dbconn

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/jstrand/kanban-api/internal/platform/logger"
	"github.com/jstrand/kanban-api/internal/redact"
)

// Status is a point-in-time report of the connection's health.
type Status struct {
	Connected bool      `json:"connected"`
	State     string    `json:"state"`
	PingOK    *bool     `json:"ping_ok,omitempty"`
	Host      string    `json:"host,omitempty"`
	Database  string    `json:"database,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Health layers a liveness report and an idempotent reconnect operation
// on top of a Manager.
type Health struct {
	m *Manager
}

// NewHealth creates a Health utility for the given manager.
func NewHealth(m *Manager) *Health {
	return &Health{m: m}
}

// Check reports the current connection state. When connected it also
// issues a liveness probe; a failed probe is recorded in PingOK but does
// not by itself change the connection state.
func (h *Health) Check(ctx context.Context) Status {
	status := Status{
		State:     h.m.State().String(),
		CheckedAt: time.Now().UTC(),
	}
	status.Host, status.Database = connectionTarget(h.m.URL())

	sess := h.m.Session()
	if h.m.State() != StateConnected || sess == nil {
		return status
	}
	status.Connected = true

	ok := sess.Ping(ctx) == nil
	status.PingOK = &ok
	if !ok {
		logger.FromContext(ctx).Warn("database liveness probe failed while connected")
	}
	return status
}

// TryReconnect ensures a live connection. It is idempotent: a no-op
// returning nil when already connected, otherwise it delegates to the
// manager's connect sequence.
func (h *Health) TryReconnect(ctx context.Context) error {
	if h.m.Connected() {
		if sess := h.m.Session(); sess != nil && sess.Alive() {
			return nil
		}
	}
	_, err := h.m.Connect(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("database reconnect failed",
			"error", redact.Error(err))
	}
	return err
}

// connectionTarget extracts the host and database name from a connection
// URL for health reporting. Credentials never leave this function.
func connectionTarget(rawURL string) (host, database string) {
	if rawURL == "" {
		return "", ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ""
	}
	return u.Host, strings.TrimPrefix(u.Path, "/")
}
