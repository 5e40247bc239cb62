package observe

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Tracer starts and ends spans around request handling.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan records the error status; it must not panic on nil spans.
type Tracer interface {
	// StartSpan starts a span with the given name.
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)

	// EndSpan ends the span, recording err as the span status when non-nil.
	EndSpan(span trace.Span, err error)
}

// tracerImpl wraps an OpenTelemetry tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer on top of an OpenTelemetry tracer.
func NewTracer(tracer trace.Tracer) Tracer {
	return &tracerImpl{tracer: tracer}
}

func (t *tracerImpl) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// NopTracer returns a Tracer that produces no-op spans.
func NopTracer() Tracer {
	return &tracerImpl{tracer: tracenoop.NewTracerProvider().Tracer("noop")}
}
