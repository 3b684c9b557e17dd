// Package seqset provides an ordered, duplicate-permitting collection of
// sequences over one alphabet, with set-level queries and derivations.
//
// What
//
//   - FromTexts validates every element before anything is constructed;
//     the first invalid element fails with its 1-based list position and
//     the offending symbol.
//   - Element order is significant and preserved by every operation.
//   - Duplicated flags each element that repeats some earlier element
//     byte-for-byte; Unique keeps first occurrences in original order;
//     Sorted orders elements lexicographically with a stable sort, so
//     equal elements keep their original relative order.
//   - Get uses 1-based indexing, matching the addressing convention of
//     the rest of the library.
//
// Why
//
//   - Vectorized matching and bulk composition analysis need a value that
//     fixes element order once, so per-element results can be keyed by
//     index without ambiguity.
//
// Determinism
//
//	Sets are immutable after construction and all derivations are pure,
//	so repeated runs produce identical element orders. Duplicate
//	detection compares BLAKE3 fingerprints, a constant-size identity per
//	element regardless of sequence length.
//
// Complexity (n = elements, L = total symbols)
//
//   - FromTexts: O(L);  Duplicated / Unique: O(L)
//   - Sorted: O(L + n log n);  Get / Len: O(1);  Widths: O(n)
//
// Errors
//
//   - ErrIndexOutOfBounds — Get outside [1, Len].
//   - ErrMixedAlphabets   — FromSequences over differing alphabets.
//   - ErrNilAlphabet      — FromTexts without an alphabet.
//   - alphabet.ErrInvalidSymbol propagates from element validation,
//     wrapped with the element's list position.
package seqset
