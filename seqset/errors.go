package seqset

import "errors"

// Sentinel errors for collection construction and access.
var (
	// ErrIndexOutOfBounds indicates a 1-based element index outside [1, Len].
	ErrIndexOutOfBounds = errors.New("seqset: index out of bounds")

	// ErrMixedAlphabets indicates elements over differing alphabets.
	ErrMixedAlphabets = errors.New("seqset: sequences use different alphabets")

	// ErrNilAlphabet indicates a Set was constructed without an alphabet.
	ErrNilAlphabet = errors.New("seqset: alphabet must not be nil")
)
