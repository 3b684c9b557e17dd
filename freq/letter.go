package freq

import (
	"fmt"

	"github.com/katalvlaran/bioseq/seq"
)

// LetterFrequency returns the number of positions of s whose symbol
// belongs to the subset symbols. Multiple symbols produce one combined
// count (e.g. "GC" counts G-or-C positions); duplicate symbols in the
// query are collapsed. Every queried symbol must belong to the
// sequence's alphabet, otherwise ErrSymbolMismatch.
// Complexity: O(n)
func LetterFrequency(symbols string, s seq.Sequence) (int, error) {
	if len(symbols) == 0 {
		return 0, ErrNoSymbols
	}
	a := s.Alphabet()
	if a == nil {
		return 0, ErrNoAlphabet
	}

	var want [256]bool
	for i := 0; i < len(symbols); i++ {
		if !a.Contains(symbols[i]) {
			return 0, fmt.Errorf("%w: %q", ErrSymbolMismatch, symbols[i])
		}
		want[symbols[i]] = true
	}

	text := s.String()
	n := 0
	for i := 0; i < len(text); i++ {
		if want[text[i]] {
			n++
		}
	}

	return n, nil
}
