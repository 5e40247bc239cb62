package auth

import "errors"

// ErrTokenMalformed indicates a token that is not a well-formed JWT for the
// guard's JWT mode.
var ErrTokenMalformed = errors.New("auth: token malformed")
