package auth

import (
	"net/http/httptest"
	"testing"
)

func TestGuard_NoTokenConfigured(t *testing.T) {
	g := NewGuard()

	r := httptest.NewRequest("GET", "/health", nil)
	if !g.Check(r) {
		t.Error("guard without a configured token should permit every request")
	}
}

func TestGuard_MissingToken(t *testing.T) {
	g := NewGuard(GuardConfig{Token: "s3cret"})

	r := httptest.NewRequest("GET", "/health", nil)
	if g.Check(r) {
		t.Error("request without any token should be denied")
	}
}

func TestGuard_CustomHeader(t *testing.T) {
	g := NewGuard(GuardConfig{Token: "s3cret"})

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"exact match", "s3cret", true},
		{"wrong token", "nope", false},
		{"empty value", "", false},
		{"whitespace padded", "  s3cret  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/health", nil)
			if tt.value != "" {
				r.Header.Set(DefaultHeaderName, tt.value)
			}
			if got := g.Check(r); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGuard_BearerFallback(t *testing.T) {
	g := NewGuard(GuardConfig{Token: "s3cret"})

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"standard prefix", "Bearer s3cret", true},
		{"lowercase prefix", "bearer s3cret", true},
		{"mixed case prefix", "bEaReR s3cret", true},
		{"padded token", "Bearer   s3cret ", true},
		{"wrong token", "Bearer nope", false},
		{"no prefix", "s3cret", false},
		{"basic scheme", "Basic s3cret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/health", nil)
			r.Header.Set("Authorization", tt.header)
			if got := g.Check(r); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGuard_CustomHeaderTakesPrecedence(t *testing.T) {
	g := NewGuard(GuardConfig{Token: "s3cret"})

	// A wrong custom header must not fall back to a valid bearer token.
	r := httptest.NewRequest("GET", "/health", nil)
	r.Header.Set(DefaultHeaderName, "wrong")
	r.Header.Set("Authorization", "Bearer s3cret")

	if g.Check(r) {
		t.Error("wrong custom header should deny even with a valid bearer token")
	}
}

func TestGuard_CustomHeaderName(t *testing.T) {
	g := NewGuard(GuardConfig{Token: "s3cret", HeaderName: "X-Status-Key"})

	r := httptest.NewRequest("GET", "/health", nil)
	r.Header.Set("X-Status-Key", "s3cret")
	if !g.Check(r) {
		t.Error("token in the configured header should be accepted")
	}

	r = httptest.NewRequest("GET", "/health", nil)
	r.Header.Set(DefaultHeaderName, "s3cret")
	if g.Check(r) {
		t.Error("token in the default header should be ignored when a custom header is configured")
	}
}

func TestGuard_Enabled(t *testing.T) {
	if NewGuard().Enabled() {
		t.Error("guard without token should report disabled")
	}
	if !NewGuard(GuardConfig{Token: "t"}).Enabled() {
		t.Error("guard with token should report enabled")
	}
	if !NewGuard(GuardConfig{JWTKey: []byte("k")}).Enabled() {
		t.Error("guard with JWT key should report enabled")
	}
}
