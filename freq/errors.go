package freq

import "errors"

// Sentinel errors for composition analysis.
var (
	// ErrNoSymbols indicates an empty symbol subset.
	ErrNoSymbols = errors.New("freq: no symbols given")

	// ErrSymbolMismatch indicates a queried symbol outside the sequence's alphabet.
	ErrSymbolMismatch = errors.New("freq: symbol outside sequence alphabet")

	// ErrKRange indicates a window width k that is not usable: k < 1 or a
	// core enumeration that would not fit in memory.
	ErrKRange = errors.New("freq: k out of range")

	// ErrNoAlphabet indicates analysis of a sequence without an alphabet.
	ErrNoAlphabet = errors.New("freq: sequence has no alphabet")
)
