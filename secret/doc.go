// Package secret provides strict environment expansion for configuration
// values.
//
// Config files reference secrets such as access tokens as ${VAR}; expansion
// fails loudly when a referenced variable is missing instead of silently
// substituting an empty string. Expanded values must never be logged.
package secret
