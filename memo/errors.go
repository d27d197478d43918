package memo

import "errors"

// Sentinel errors for memoizer construction and key derivation.
var (
	// ErrNilTarget is returned when the target function is nil.
	ErrNilTarget = errors.New("memo: target function is nil")

	// ErrNilKeyer is returned when a nil Keyer is supplied.
	ErrNilKeyer = errors.New("memo: keyer is nil")
)
