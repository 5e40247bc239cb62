package metrics

import (
	"bytes"
	"context"
	"fmt"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Snapshotter produces a point-in-time metrics snapshot.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Snapshot must honor cancellation/deadlines.
type Snapshotter interface {
	// Snapshot returns the serialized metrics.
	Snapshot(ctx context.Context) ([]byte, error)

	// ContentType returns the media type of the serialized form.
	ContentType() string
}

// RegistryConfig configures the metrics registry.
type RegistryConfig struct {
	// ServiceName labels the registry's resource. Default: "statushub".
	ServiceName string

	// Version labels the resource with a service version.
	Version string
}

// Registry is an explicit metrics registry: an OpenTelemetry meter provider
// whose state is gathered from a Prometheus registry on demand. It is
// constructed during setup and threaded to consumers as a parameter, never
// accessed as ambient global state.
type Registry struct {
	provider *sdkmetric.MeterProvider
	gatherer promclient.Gatherer
}

// NewRegistry creates a registry with a pull-based Prometheus reader.
func NewRegistry(ctx context.Context, config ...RegistryConfig) (*Registry, error) {
	cfg := RegistryConfig{ServiceName: "statushub"}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.ServiceName == "" {
			cfg.ServiceName = "statushub"
		}
	}

	promReg := promclient.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(promReg))
	if err != nil {
		return nil, fmt.Errorf("metrics: create exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: create resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	return &Registry{
		provider: provider,
		gatherer: promReg,
	}, nil
}

// Meter returns a named meter from the registry's provider.
func (r *Registry) Meter(name string) metric.Meter {
	return r.provider.Meter(name)
}

// MeterProvider returns the underlying provider for hosts that need to wire
// it into other instrumentation.
func (r *Registry) MeterProvider() *sdkmetric.MeterProvider {
	return r.provider
}

// Snapshot gathers the current metric state and serializes it in the
// Prometheus text exposition format.
func (r *Registry) Snapshot(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	families, err := r.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return nil, fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return buf.Bytes(), nil
}

// ContentType returns the exposition media type of Snapshot output.
func (r *Registry) ContentType() string {
	return string(expfmt.NewFormat(expfmt.TypeTextPlain))
}

// Shutdown flushes and stops the meter provider.
func (r *Registry) Shutdown(ctx context.Context) error {
	return r.provider.Shutdown(ctx)
}

var _ Snapshotter = (*Registry)(nil)
