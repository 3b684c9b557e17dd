package seq

import "errors"

// Sentinel errors for sequence construction and derivation.
var (
	// ErrNilAlphabet indicates a Sequence was constructed without an alphabet.
	ErrNilAlphabet = errors.New("seq: alphabet must not be nil")

	// ErrOutOfRange indicates a 1-based position or range outside [1, Len].
	ErrOutOfRange = errors.New("seq: position out of range")

	// ErrPartialCodon indicates a translation over a length not divisible by 3.
	ErrPartialCodon = errors.New("seq: trailing partial codon, length is not a multiple of 3")

	// ErrNoCodonTable indicates a translation attempt on a non-nucleotide sequence.
	ErrNoCodonTable = errors.New("seq: alphabet has no codon table")
)
