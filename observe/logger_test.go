package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func parseEntry(t *testing.T, raw string) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, raw)
	}
	return entry
}

// TestLogger_InfoLevel verifies the basic JSON line shape.
func TestLogger_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "aggregation complete",
		Field{Key: "request_id", Value: 42},
	)

	entry := parseEntry(t, buf.String())

	if v, ok := entry["level"].(string); !ok || v != "info" {
		t.Errorf("expected level='info', got %v", entry["level"])
	}
	if v, ok := entry["msg"].(string); !ok || v != "aggregation complete" {
		t.Errorf("expected msg='aggregation complete', got %v", entry["msg"])
	}
	if v, ok := entry["request_id"].(float64); !ok || v != 42 {
		t.Errorf("expected request_id=42, got %v", entry["request_id"])
	}
	if _, ok := entry["timestamp"].(string); !ok {
		t.Error("expected timestamp field")
	}
}

// TestLogger_LevelFiltering verifies entries below the configured level are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "dropped")
	logger.Info(context.Background(), "dropped too")
	if buf.Len() != 0 {
		t.Fatalf("expected debug/info to be filtered, got %q", buf.String())
	}

	logger.Warn(context.Background(), "kept")
	logger.Error(context.Background(), "kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
}

// TestLogger_WithComponent verifies every entry carries the component name.
func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf).WithComponent("server")

	logger.Info(context.Background(), "started")

	entry := parseEntry(t, buf.String())
	if v, ok := entry["component"].(string); !ok || v != "server" {
		t.Errorf("expected component='server', got %v", entry["component"])
	}
}

// TestLogger_RedactsSensitiveFields verifies credential-like fields never
// reach the log output in the clear.
func TestLogger_RedactsSensitiveFields(t *testing.T) {
	sensitive := []string{
		"password", "secret", "token", "access_token",
		"api_key", "apiKey", "authorization", "credential",
	}

	for _, key := range sensitive {
		var buf bytes.Buffer
		logger := NewLoggerWithWriter("info", &buf)

		logger.Info(context.Background(), "auth check",
			Field{Key: key, Value: "hunter2"},
		)

		entry := parseEntry(t, buf.String())
		if v := entry[key]; v != "[REDACTED]" {
			t.Errorf("field %q = %v, want [REDACTED]", key, v)
		}
		if strings.Contains(buf.String(), "hunter2") {
			t.Errorf("field %q leaked its value into the output", key)
		}
	}
}

// TestLogger_NonSensitiveFieldsPassThrough verifies ordinary fields are kept.
func TestLogger_NonSensitiveFieldsPassThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "request served",
		Field{Key: "route", Value: "health"},
		Field{Key: "code", Value: 200},
	)

	entry := parseEntry(t, buf.String())
	if v, ok := entry["route"].(string); !ok || v != "health" {
		t.Errorf("expected route='health', got %v", entry["route"])
	}
	if v, ok := entry["code"].(float64); !ok || v != 200 {
		t.Errorf("expected code=200, got %v", entry["code"])
	}
}

// TestParseLogLevel verifies level parsing and the default.
func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestNopLogger verifies the no-op logger discards everything without panicking.
func TestNopLogger(t *testing.T) {
	logger := NopLogger().WithComponent("anything")
	logger.Debug(context.Background(), "dropped")
	logger.Info(context.Background(), "dropped")
	logger.Warn(context.Background(), "dropped")
	logger.Error(context.Background(), "dropped", Field{Key: "token", Value: "x"})
}
