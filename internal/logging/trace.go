package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type traceIDKey struct{}

// TraceIDField is the log field used for trace IDs.
const TraceIDField = "trace_id"

// NewTraceID returns a fresh, lexicographically sortable trace ID.
func NewTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID in ctx, generating one if absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}
