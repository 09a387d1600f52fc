package token

import "errors"

// Public, stable errors for callers.
var (
	// ErrEntropyTooLow is returned when a caller asks for fewer random bytes
	// than the 128-bit floor.
	ErrEntropyTooLow = errors.New("token entropy too low")
)
