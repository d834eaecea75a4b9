package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
)

const tracerName = "react-todo-app"

// OTELProbe implements Telemetry using OpenTelemetry spans plus structured
// logs for repository failures and business events.
type OTELProbe struct {
	logger *slog.Logger
}

func NewOTELProbe(logger *slog.Logger) port.Telemetry {
	return &OTELProbe{
		logger: logger,
	}
}

func (p *OTELProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	spanName := fmt.Sprintf("repository.%s.%s", entity, operation)

	standardAttrs := []attribute.KeyValue{
		attribute.String("repository.entity", entity),
		attribute.String("repository.operation", operation),
		attribute.String("component", "repository"),
	}
	standardAttrs = append(standardAttrs, attrs...)

	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(standardAttrs...))
}

func (p *OTELProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)

	span.SetAttributes(
		attribute.String("operation", operation),
		attribute.String("entity", entity),
		attribute.Int64("duration_ns", duration.Nanoseconds()),
		attribute.Bool("has_error", err != nil),
	)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "Repository operation failed",
			"operation", operation,
			"entity", entity,
			"duration_ns", duration.Nanoseconds(),
			"error", err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func (p *OTELProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string, userID string, metadata map[string]interface{}) {
	_, span := p.StartRepositorySpan(ctx, fmt.Sprintf("event.%s", event), entity,
		attribute.String("event", event),
		attribute.String("entity_id", entityID),
		attribute.String("user_id", userID),
	)

	for key, value := range metadata {
		span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", value)))
	}

	span.End()

	p.logger.InfoContext(ctx, "Business event recorded",
		"event", event,
		"entity", entity,
		"entity_id", entityID,
		"user_id", userID)
}
