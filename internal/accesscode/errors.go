package accesscode

import "errors"

var (
	// ErrUnknownFormat is returned when a format identifier is not registered.
	ErrUnknownFormat = errors.New("unknown access code format")
	// ErrInvalidFormat is returned when a format violates its own grammar
	// invariants (non-positive length, prefix out of range, empty id).
	ErrInvalidFormat = errors.New("invalid access code format")
)
