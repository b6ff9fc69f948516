package logger

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	loggerKey       contextKey = "ut.logger"
	invocationIDKey contextKey = "ut.invocation_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// NewInvocationID returns a fresh ULID identifying one CLI invocation.
func NewInvocationID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// WithInvocationID adds an invocation ID to the context.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey, id)
}

// InvocationIDFromContext extracts the invocation ID from context.
func InvocationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(invocationIDKey).(string); ok {
		return id
	}
	return ""
}

// L is a shorthand for FromContext that also tags the logger with the
// invocation ID from the context.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if id := InvocationIDFromContext(ctx); id != "" {
		l = l.With("invocation_id", id)
	}
	return l
}
