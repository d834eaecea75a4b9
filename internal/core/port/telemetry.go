package port

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry lets repositories and services emit spans and events without
// binding the core to a concrete tracing backend.
type Telemetry interface {
	StartRepositorySpan(ctx context.Context, operation string, entity string, attrs ...attribute.KeyValue) (context.Context, trace.Span)
	RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error)
	RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string, userID string, metadata map[string]interface{})
}
