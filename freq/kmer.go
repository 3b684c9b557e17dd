package freq

import (
	"fmt"

	"github.com/katalvlaran/bioseq/seq"
)

// maxTableEntries bounds the dense core enumeration: |core|^k may not
// exceed this, keeping the zero-filled table in memory.
const maxTableEntries = 1 << 24

// KmerFrequency returns the frequency table of every k-length window of
// s: for each position i from 1 to Len-k+1, the window [i, i+k-1] is
// counted under the exact word it forms. The table is dense over the
// alphabet's core symbols — all |core|^k core k-mers are present, zero
// when never observed. Windows containing non-core symbols are counted
// literally and appear as extra keys (see the package ambiguity policy).
//
// Fails with ErrKRange when k < 1 or the core enumeration would exceed
// the in-memory bound. k greater than Len(s) yields the zero-filled
// table: no windows exist, which is not an error.
// Complexity: O(n·k + |core|^k)
func KmerFrequency(k int, s seq.Sequence) (Table, error) {
	a := s.Alphabet()
	if a == nil {
		return nil, ErrNoAlphabet
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k = %d, need k >= 1", ErrKRange, k)
	}
	core := a.Core()
	entries := 1
	for i := 0; i < k; i++ {
		entries *= len(core)
		if entries > maxTableEntries {
			return nil, fmt.Errorf("%w: %d^%d core k-mers exceed the enumeration bound", ErrKRange, len(core), k)
		}
	}

	table := make(Table, entries)
	enumerate(core, k, make([]byte, 0, k), table)

	text := s.String()
	for i := 0; i+k <= len(text); i++ {
		table[text[i:i+k]]++
	}

	return table, nil
}

// enumerate seeds table with every k-length combination of core symbols
// at count zero, one position at a time.
func enumerate(core string, k int, prefix []byte, table Table) {
	if k == 0 {
		table[string(prefix)] = 0
		return
	}
	for i := 0; i < len(core); i++ {
		enumerate(core, k-1, append(prefix, core[i]), table)
	}
}
