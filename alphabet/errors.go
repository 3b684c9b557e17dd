package alphabet

import "errors"

// Sentinel errors for alphabet membership and capability checks.
var (
	// ErrInvalidSymbol indicates a character outside the alphabet's legal set.
	ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

	// ErrNoComplement indicates the alphabet carries no complement relation.
	ErrNoComplement = errors.New("alphabet: no complement relation")
)
