package match

import "errors"

// Sentinel errors for pattern interpretation and vectorized execution.
var (
	// ErrEmptyPattern indicates a pattern of length 0.
	ErrEmptyPattern = errors.New("match: empty pattern")

	// ErrAlphabetMismatch indicates a pattern symbol outside the target's alphabet.
	ErrAlphabetMismatch = errors.New("match: pattern symbol outside target alphabet")

	// ErrNilSet indicates a vectorized operation over a nil set.
	ErrNilSet = errors.New("match: set is nil")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("match: invalid option supplied")
)
