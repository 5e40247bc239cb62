package server

import "errors"

// Configuration errors, fatal at setup time.
var (
	ErrInvalidPath   = errors.New("server: invalid endpoint path")
	ErrInvalidAddr   = errors.New("server: invalid listen address")
	ErrNilRegistry   = errors.New("server: metrics registry is required")
	ErrDuplicatePath = errors.New("server: health and stats paths must differ")
)
