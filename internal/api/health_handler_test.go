package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/kanban-api/internal/platform/dbconn"
)

// fakeHealthService implements HealthService with canned responses.
type fakeHealthService struct {
	status       dbconn.Status
	reconnectErr error
}

func (f *fakeHealthService) Check(ctx context.Context) dbconn.Status {
	return f.status
}

func (f *fakeHealthService) TryReconnect(ctx context.Context) error {
	return f.reconnectErr
}

func boolPtr(b bool) *bool { return &b }

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     dbconn.Status
		wantStatus string
		wantCode   int
	}{
		{
			name: "connected with passing probe is UP",
			status: dbconn.Status{
				Connected: true,
				State:     "connected",
				PingOK:    boolPtr(true),
			},
			wantStatus: HealthStatusUp,
			wantCode:   http.StatusOK,
		},
		{
			name: "connected with failing probe is DEGRADED",
			status: dbconn.Status{
				Connected: true,
				State:     "connected",
				PingOK:    boolPtr(false),
			},
			wantStatus: HealthStatusDegraded,
			wantCode:   http.StatusOK,
		},
		{
			name: "disconnected is DOWN",
			status: dbconn.Status{
				Connected: false,
				State:     "disconnected",
			},
			wantStatus: HealthStatusDown,
			wantCode:   http.StatusServiceUnavailable,
		},
		{
			name: "error state is DOWN",
			status: dbconn.Status{
				Connected: false,
				State:     "error",
			},
			wantStatus: HealthStatusDown,
			wantCode:   http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.status.CheckedAt = time.Now().UTC()
			handler := NewHealthHandler(&fakeHealthService{status: tt.status})

			recorder := httptest.NewRecorder()
			handler.Check(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)

			var resp HealthResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.status.Connected, resp.DB.Connected)
			assert.Equal(t, tt.status.State, resp.DB.State)
		})
	}
}

func TestHealthReconnect(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		handler := NewHealthHandler(&fakeHealthService{})

		recorder := httptest.NewRecorder()
		handler.Reconnect(recorder,
			httptest.NewRequest(http.MethodPost, "/health/reconnect", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp ReconnectResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, ReconnectStatusSuccess, resp.Status)
	})

	t.Run("exhausted retries report FAILED", func(t *testing.T) {
		handler := NewHealthHandler(&fakeHealthService{
			reconnectErr: &dbconn.ConnectError{
				Attempts: 4,
				Err:      errors.New("connection refused"),
			},
		})

		recorder := httptest.NewRecorder()
		handler.Reconnect(recorder,
			httptest.NewRequest(http.MethodPost, "/health/reconnect", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var resp ReconnectResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, ReconnectStatusFailed, resp.Status)
		assert.NotContains(t, resp.Message, "connection refused")
	})

	t.Run("missing URL reports FAILED", func(t *testing.T) {
		handler := NewHealthHandler(&fakeHealthService{reconnectErr: dbconn.ErrMissingURL})

		recorder := httptest.NewRecorder()
		handler.Reconnect(recorder,
			httptest.NewRequest(http.MethodPost, "/health/reconnect", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var resp ReconnectResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, ReconnectStatusFailed, resp.Status)
	})

	t.Run("unexpected error reports ERROR with 500", func(t *testing.T) {
		handler := NewHealthHandler(&fakeHealthService{
			reconnectErr: errors.New("boom"),
		})

		recorder := httptest.NewRecorder()
		handler.Reconnect(recorder,
			httptest.NewRequest(http.MethodPost, "/health/reconnect", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var resp ReconnectResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, ReconnectStatusError, resp.Status)
		assert.NotContains(t, resp.Message, "boom")
	})
}
