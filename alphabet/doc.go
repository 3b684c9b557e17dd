// Package alphabet defines the legal symbol sets for each sequence kind
// and the validation and complement rules attached to them.
//
// What
//
//   - Three statically-defined, immutable alphabets:
//   - DNA     — the strict four bases A C G T
//   - IUPAC   — bases + ambiguity codes R Y S W K M B D H V,
//     wildcard N, and the gap symbol '-'
//   - Protein — the twenty amino acids plus 'X' (unknown) and '*' (stop)
//   - Validate scans raw text and rejects the first character outside the
//     legal set, naming the symbol and its 1-based position.
//   - Complement maps a nucleotide symbol to its base-pairing partner
//     (ambiguity codes pair with their mirrored code, N and '-' with
//     themselves); amino acids have no complement relation.
//   - Capability predicates (HasComplement, HasCodonTable) let callers
//     check what an alphabet supports before deriving sequences from it.
//
// Why
//
//   - Every Sequence is validated against exactly one Alphabet at
//     construction, so downstream analysis never meets an illegal symbol.
//   - The set of alphabets is closed by design: a fixed group of package
//     constants selected by the caller, not a runtime registry.
//
// Determinism
//
//	Alphabets are process-wide immutable constants. All predicates are
//	pure table lookups, safe for unsynchronized concurrent use.
//
// Complexity
//
//   - Validate: O(n) over the input text
//   - Contains / IsCore / Complement: O(1)
//
// Errors
//
//   - ErrInvalidSymbol — a character outside the alphabet's legal set.
//   - ErrNoComplement  — Complement called on an alphabet without a
//     complement relation (Protein).
package alphabet
