// Package freq provides composition analysis over sequences: combined
// letter counts and dense k-mer frequency tables.
//
// What
//
//   - LetterFrequency counts the positions whose symbol belongs to a
//     given symbol subset. Multiple symbols yield one combined count —
//     the domain convention for symbol classes such as "G or C" — never
//     a per-symbol breakdown.
//   - KmerFrequency slides a fixed-width window over the sequence and
//     tallies every k-length word. The table is dense over the
//     alphabet's core symbols: all |core|^k core k-mers are present,
//     zero-valued when never observed, so lookups distinguish "absent
//     from the table" from "observed zero times".
//
// Ambiguity policy
//
//	Windows containing a non-core symbol (ambiguity code, wildcard, gap)
//	are counted literally under the exact word they form; such words
//	appear in the table beyond the core enumeration. This keeps the
//	identity Σ counts == Len-k+1 for every sequence of length >= k.
//
// Why
//
//   - GC content, dinucleotide bias, and k-mer spectra are the basic
//     descriptive statistics of sequence analysis; exact integer counts
//     keep them reproducible — no floating-point accumulation anywhere.
//
// Complexity (n = sequence length, c = |core|)
//
//   - LetterFrequency: O(n)
//   - KmerFrequency: O(n·k + c^k) time and O(c^k) table entries; k is
//     bounded so the enumeration stays in memory.
//
// Errors
//
//   - ErrNoSymbols      — empty symbol subset.
//   - ErrSymbolMismatch — queried symbol outside the sequence's alphabet.
//   - ErrKRange         — k < 1, or a core enumeration too large to build.
//   - ErrNoAlphabet     — analysis of the zero Sequence.
package freq
