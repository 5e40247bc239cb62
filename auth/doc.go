// Package auth implements the access guard for the status endpoints.
//
// The guard validates an optional access token on every inbound request. If
// no token is configured, every request is permitted. Otherwise the guard
// inspects a custom header (default "X-Access-Token") first and, when that is
// absent or empty, falls back to the standard Authorization header with a
// case-insensitive "Bearer " prefix.
//
// The guard is stateless and never writes to the response; callers surface a
// denied check as a 403.
//
// # Basic Usage
//
//	guard := auth.NewGuard(auth.GuardConfig{Token: "s3cret"})
//
//	if !guard.Check(r) {
//	    w.WriteHeader(http.StatusForbidden)
//	    return
//	}
//
// # JWT Mode
//
// When GuardConfig.JWTKey is set, the extracted token is verified as an
// HMAC-signed JWT instead of being compared for equality. Static-token
// comparison remains the default.
package auth
