// Package shared provides helpers used across all API handlers: request
// decoding, JSON responses, and context keys.
package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// UserIDContextKey is the key for the authenticated user's ID,
	// set by the auth middleware.
	UserIDContextKey ContextKey = "user_id"

	// TraceIDContextKey is the key for the request trace ID.
	TraceIDContextKey ContextKey = "trace_id"
)

// SetTraceID generates a new trace ID and stores it in the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDContextKey, uuid.New().String())
}

// GetTraceID returns the trace ID from the context, or an empty string
// if none is present.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// GetUserID returns the authenticated user's ID from the context.
// The boolean is false when no valid user ID is present.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
