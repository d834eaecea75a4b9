package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
)

// NoOpProbe implements Telemetry with no operations - used in tests and when
// telemetry is disabled.
type NoOpProbe struct {
	tracer trace.Tracer
}

func NewNoOpProbe() port.Telemetry {
	return &NoOpProbe{
		tracer: noop.NewTracerProvider().Tracer("noop"),
	}
}

func (p *NoOpProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, operation)
}

func (p *NoOpProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
}

func (p *NoOpProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string, userID string, metadata map[string]interface{}) {
}
