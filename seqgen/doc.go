// Package seqgen generates reproducible random sequences over an
// alphabet's core symbols, for tests, examples and benchmarks.
//
// What
//
//   - Random(n, alphabet) draws n symbols uniformly from the alphabet's
//     core set; WithWeights biases the draw (e.g. GC-rich test data)
//     through a weighted chooser.
//   - RandomSet(count, n, alphabet) builds a whole seqset.Set of such
//     sequences in one call.
//   - Generation is deterministic: the same seed produces the same
//     sequences on every platform. There are no time-based sources
//     hidden anywhere; seeding is explicit via WithSeed or WithRand.
//
// Why
//
//   - Matching and composition benchmarks need inputs of controlled
//     length and composition, and golden tests need inputs that never
//     change between runs.
//
// Options
//
//   - DefaultOptions(): seed 1, uniform weights over the core symbols.
//   - WithSeed(seed):    deterministic stream from an explicit seed.
//   - WithRand(r):       caller-supplied *rand.Rand (not goroutine-safe;
//     do not share one across goroutines).
//   - WithWeights(w):    per-symbol weights; symbols must be core
//     symbols of the target alphabet.
//
// Errors
//
//   - ErrBadLength       — negative sequence length or element count.
//   - ErrNilAlphabet     — generation without an alphabet.
//   - ErrOptionViolation — nil RNG, weight on a non-core symbol, or
//     all-zero weights.
package seqgen
