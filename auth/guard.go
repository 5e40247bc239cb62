package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// DefaultHeaderName is the custom header inspected before the Authorization
// fallback.
const DefaultHeaderName = "X-Access-Token"

const bearerPrefix = "Bearer "

// GuardConfig configures the access guard.
type GuardConfig struct {
	// Token is the expected access token. Empty means access is open.
	Token string

	// HeaderName is the custom header carrying the token.
	// Default: "X-Access-Token"
	HeaderName string

	// JWTKey, when set, switches the guard to JWT mode: the extracted token
	// is verified as an HMAC-signed JWT with this key instead of being
	// compared to Token.
	JWTKey []byte
}

// Guard validates the access token on inbound requests.
type Guard struct {
	config GuardConfig
}

// NewGuard creates a new access guard.
func NewGuard(config ...GuardConfig) *Guard {
	cfg := GuardConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultHeaderName
	}

	return &Guard{config: cfg}
}

// Enabled reports whether the guard requires a token at all.
func (g *Guard) Enabled() bool {
	return g.config.Token != "" || len(g.config.JWTKey) > 0
}

// Check reports whether the request carries a valid access token.
//
// The custom header takes precedence: if it is present and non-empty, the
// Authorization header is not consulted, even when the custom header value
// is wrong.
func (g *Guard) Check(r *http.Request) bool {
	if !g.Enabled() {
		return true
	}

	token := strings.TrimSpace(r.Header.Get(g.config.HeaderName))
	if token == "" {
		token = bearerToken(r.Header.Get("Authorization"))
	}
	if token == "" {
		return false
	}

	if len(g.config.JWTKey) > 0 {
		return g.verifyJWT(token)
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(g.config.Token)) == 1
}

// bearerToken extracts the token from an Authorization header value,
// stripping a case-insensitive "Bearer " prefix. Returns "" if the header
// does not carry a bearer token.
func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
