package utils

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id between the view, the facade and the backend
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// NewRequestID returns a new correlation id
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID stores id in ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored in ctx, or a fresh one when there is none
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return NewRequestID()
}
