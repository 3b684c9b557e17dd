// Package seq provides the immutable Sequence value: an ordered run of
// symbols validated against exactly one alphabet at construction.
//
// What
//
//   - New(text, alphabet) validates every character and returns a
//     Sequence, or fails on the first illegal symbol. No partial or
//     silently-corrected sequences exist.
//   - All public addressing is 1-based with closed intervals [start,end],
//     the domain-standard scheme: At(1) is the first symbol and
//     Slice(i, j) includes both endpoints.
//   - Derived values — Slice, ReverseComplement, Translate — are new
//     independent Sequences; nothing aliases mutable state back to the
//     source.
//   - String() is the lossless textual round-trip: for any valid text t,
//     New(t, a).String() == t.
//   - Fingerprint() returns a BLAKE3 digest of the alphabet kind and the
//     symbol buffer, a constant-size identity used for duplicate
//     detection in seqset.
//
// Why
//
//   - A validated, immutable value makes every downstream query (matching,
//     composition analysis) safe to run concurrently without locks, and
//     makes positional results trustworthy: an illegal symbol can never
//     shift a reported coordinate.
//
// Translation policy
//
//	Translate partitions the sequence into consecutive non-overlapping
//	triplets from position 1 and maps each through the standard genetic
//	code; stop codons become '*'. A trailing partial triplet is rejected
//	with ErrPartialCodon rather than truncated, and any codon containing
//	a non-core symbol (ambiguity code, wildcard, gap) becomes 'X'.
//
// Complexity
//
//   - New / String / ReverseComplement / Translate: O(n)
//   - Len / At: O(1);  Slice: O(end-start)
//
// Errors
//
//   - ErrNilAlphabet  — construction without an alphabet.
//   - ErrOutOfRange   — 1-based bounds violation on At or Slice.
//   - ErrPartialCodon — Translate on a length not divisible by 3.
//   - ErrNoCodonTable — Translate on a non-nucleotide sequence.
//   - alphabet.ErrInvalidSymbol / alphabet.ErrNoComplement propagate
//     unchanged from the underlying alphabet.
package seq
