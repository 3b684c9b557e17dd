// Package match provides exact, overlap-counting pattern search over
// sequences and sequence collections.
//
// What
//
//   - Count reports how many start positions of the target match a
//     literal pattern; Locate returns every match as a 1-based closed
//     interval [start, start+len(pattern)-1], ascending by start.
//   - Matching is overlapping-allowed: every matching start position is
//     reported, even when it overlaps a previous match. Pattern "AA"
//     against "AAA" yields two matches, at starts 1 and 2 — the domain
//     convention counts occurrences, not a non-overlapping partition.
//   - VCount and VLocate are the vectorized forms over a seqset.Set:
//     element-wise identical to the scalar forms, with results keyed by
//     element index in set order.
//   - A pattern longer than the target yields zero matches, not an error.
//
// Why
//
//   - Occurrence counts and positions are the raw material for motif
//     scans and restriction-site searches; the overlap policy directly
//     changes counts, so it is fixed here rather than left to callers.
//
// Determinism
//
//	VCount/VLocate fan work out across a bounded worker pool (sequences
//	are immutable, elements are independent), but each worker writes only
//	its own index slot, so the output order always matches the set order
//	regardless of scheduling.
//
// Complexity (n = target length, m = pattern length)
//
//   - Count / Locate: O(n·m) worst case; the scan jumps between
//     candidate starts with strings.Index.
//   - VCount / VLocate: sum of the element costs, divided across workers.
//
// Options
//
//   - DefaultOptions(): workers = GOMAXPROCS.
//   - WithWorkers(n): bound the pool to n workers (n >= 1).
//
// Errors
//
//   - ErrEmptyPattern     — pattern of length 0.
//   - ErrAlphabetMismatch — pattern symbol outside the target's alphabet.
//   - ErrNilSet           — vectorized form over a nil set.
//   - ErrOptionViolation  — invalid option (workers < 1).
package match
