package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// ContextKey is a custom type for context keys to prevent collisions with
// other packages that store values in the request context.
type ContextKey string

const (
	// IdentityContextKey is the context key under which the authenticated
	// caller identity is stored by the auth middleware.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the context key under which the request trace ID is stored.
	TraceIDKey ContextKey = "trace_id"
)

// TraceIDHeader is the response header that carries the request trace ID.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a random 16-byte hex string used to correlate log lines
// for a single request.
func NewTraceID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "trace-unavailable"
	}
	return hex.EncodeToString(buf)
}

// WithTraceID returns a copy of ctx carrying the given trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID extracts the trace ID from the context, returning an empty
// string when none is set.
func GetTraceID(ctx context.Context) string {
	if id, ok := ctx.Value(TraceIDKey).(string); ok {
		return id
	}
	return ""
}

// GetTraceIDFromRequest is a convenience wrapper over GetTraceID for handlers
// that only hold the request.
func GetTraceIDFromRequest(r *http.Request) string {
	return GetTraceID(r.Context())
}
