package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/jstrand/kanban-api/internal/platform/dbconn"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateBoardRequest defines the payload for creating a board.
type CreateBoardRequest struct {
	Name        string `json:"name"        validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateBoardRequest defines the payload for updating a board.
type UpdateBoardRequest struct {
	Name        string `json:"name"        validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Archived    bool   `json:"archived"`
}

// CreateColumnRequest defines the payload for creating a column.
type CreateColumnRequest struct {
	Title    string `json:"title"    validate:"required,max=120"`
	Position int    `json:"position" validate:"min=0"`
}

// UpdateColumnRequest defines the payload for updating a column.
type UpdateColumnRequest struct {
	Title    string `json:"title"    validate:"required,max=120"`
	Position int    `json:"position" validate:"min=0"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"       validate:"required,max=250"`
	Description string     `json:"description" validate:"max=5000"`
	Position    int        `json:"position"    validate:"min=0"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest defines the payload for updating a task. A changed
// ColumnID moves the task to another column of the same board.
type UpdateTaskRequest struct {
	Title       string     `json:"title"       validate:"required,max=250"`
	Description string     `json:"description" validate:"max=5000"`
	ColumnID    uuid.UUID  `json:"column_id"   validate:"required"`
	Position    int        `json:"position"    validate:"min=0"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Health endpoint statuses.
const (
	HealthStatusUp       = "UP"
	HealthStatusDegraded = "DEGRADED"
	HealthStatusDown     = "DOWN"
)

// Reconnect endpoint statuses.
const (
	ReconnectStatusSuccess = "SUCCESS"
	ReconnectStatusFailed  = "FAILED"
	ReconnectStatusError   = "ERROR"
)

// HealthResponse defines the response for the health endpoint.
type HealthResponse struct {
	Status string        `json:"status"`
	DB     dbconn.Status `json:"db"`
}

// ReconnectResponse defines the response for the reconnect endpoint.
type ReconnectResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
