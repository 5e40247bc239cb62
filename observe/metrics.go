package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Aggregation outcome labels recorded by Metrics.
const (
	OutcomeOK          = "ok"
	OutcomeTimeout     = "timeout"
	OutcomeWorkerError = "worker_error"
)

// Metrics records request and aggregation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordRequest records one HTTP request with its route, response code,
	// and duration.
	RecordRequest(ctx context.Context, route string, code int, duration time.Duration)

	// RecordAggregation records one fan-out aggregation with the number of
	// workers asked, its duration, and an outcome label.
	RecordAggregation(ctx context.Context, workers int, duration time.Duration, outcome string)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	gatherCount     metric.Int64Counter
	gatherDuration  metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with instruments on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	requestCount, err := meter.Int64Counter(
		"statushub.request.total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"statushub.request.duration_ms",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	gatherCount, err := meter.Int64Counter(
		"statushub.gather.total",
		metric.WithDescription("Total number of fan-out aggregations"),
		metric.WithUnit("{aggregation}"),
	)
	if err != nil {
		return nil, err
	}

	gatherDuration, err := meter.Float64Histogram(
		"statushub.gather.duration_ms",
		metric.WithDescription("Fan-out aggregation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		gatherCount:     gatherCount,
		gatherDuration:  gatherDuration,
	}, nil
}

func (m *metricsImpl) RecordRequest(ctx context.Context, route string, code int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("code", code),
	)

	m.requestCount.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, float64(duration.Milliseconds()),
		metric.WithAttributes(attribute.String("route", route)))
}

func (m *metricsImpl) RecordAggregation(ctx context.Context, workers int, duration time.Duration, outcome string) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("workers", workers),
	)

	m.gatherCount.Add(ctx, 1, attrs)
	m.gatherDuration.Record(ctx, float64(duration.Milliseconds()),
		metric.WithAttributes(attribute.String("outcome", outcome)))
}

// nopMetrics is a metrics implementation that does nothing.
type nopMetrics struct{}

// NopMetrics returns a Metrics that records nothing.
func NopMetrics() Metrics {
	return nopMetrics{}
}

func (nopMetrics) RecordRequest(ctx context.Context, route string, code int, duration time.Duration) {
}

func (nopMetrics) RecordAggregation(ctx context.Context, workers int, duration time.Duration, outcome string) {
}
