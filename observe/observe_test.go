package observe

import (
	"context"
	"strings"
	"testing"
)

// TestConfig_Validate exercises configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing service name",
			cfg:     Config{},
			wantErr: "service name",
		},
		{
			name: "valid minimal",
			cfg:  Config{ServiceName: "statushub"},
		},
		{
			name: "valid full",
			cfg: Config{
				ServiceName: "statushub",
				Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 0.5},
				Metrics:     MetricsConfig{Enabled: true, Exporter: "prometheus"},
				Logging:     LoggingConfig{Enabled: true, Level: "debug"},
			},
		},
		{
			name: "unknown tracing exporter",
			cfg: Config{
				ServiceName: "statushub",
				Tracing:     TracingConfig{Enabled: true, Exporter: "jaeger"},
			},
			wantErr: "unknown tracing exporter",
		},
		{
			name: "sample pct out of range",
			cfg: Config{
				ServiceName: "statushub",
				Tracing:     TracingConfig{Enabled: true, SamplePct: 1.5},
			},
			wantErr: "sample percentage",
		},
		{
			name: "unknown metrics exporter",
			cfg: Config{
				ServiceName: "statushub",
				Metrics:     MetricsConfig{Enabled: true, Exporter: "statsd"},
			},
			wantErr: "unknown metrics exporter",
		},
		{
			name: "unknown log level",
			cfg: Config{
				ServiceName: "statushub",
				Logging:     LoggingConfig{Enabled: true, Level: "verbose"},
			},
			wantErr: "unknown log level",
		},
		{
			name: "disabled subsystems skip validation",
			cfg: Config{
				ServiceName: "statushub",
				Tracing:     TracingConfig{Exporter: "jaeger"},
				Metrics:     MetricsConfig{Exporter: "statsd"},
				Logging:     LoggingConfig{Level: "verbose"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestNewObserver_Disabled verifies the all-disabled observer is fully no-op
// and shuts down cleanly.
func TestNewObserver_Disabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "statushub"})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	if obs.Tracer() == nil {
		t.Error("Tracer() returned nil")
	}
	if obs.Meter() == nil {
		t.Error("Meter() returned nil")
	}
	if obs.Logger() == nil {
		t.Error("Logger() returned nil")
	}

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// TestNewObserver_InvalidConfig verifies a bad config never builds an observer.
func TestNewObserver_InvalidConfig(t *testing.T) {
	if _, err := NewObserver(context.Background(), Config{}); err == nil {
		t.Error("NewObserver() with empty config should fail")
	}
}

// TestNewObserver_Enabled builds the full stack with discard exporters and a
// working span/instrument path.
func TestNewObserver_Enabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "statushub",
		Version:     "test",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1.0},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
		Logging:     LoggingConfig{Enabled: true, Level: "error"},
	})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	defer obs.Shutdown(context.Background())

	_, span := obs.Tracer().Start(context.Background(), "test-span")
	span.End()

	counter, err := obs.Meter().Int64Counter("test.counter")
	if err != nil {
		t.Fatalf("Int64Counter() error = %v", err)
	}
	counter.Add(context.Background(), 1)
}
