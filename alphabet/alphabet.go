package alphabet

import "fmt"

// Alphabet is an immutable set of legal symbols for one sequence kind,
// together with its complement relation (nucleotide alphabets only) and
// the subset of core symbols used for k-mer enumeration.
//
// Alphabets are package-level constants (DNA, IUPAC, Protein); there is
// no way to construct or mutate one at runtime.
type Alphabet struct {
	name       string
	symbols    string    // legal symbols in canonical order
	core       string    // unambiguous symbols, in canonical order
	member     [256]bool // membership table
	coreMember [256]bool // core-membership table
	comp       [256]byte // symbol → complement; 0 = undefined
	hasComp    bool      // complement relation present
	hasCodons  bool      // translation via the genetic code is meaningful
}

// The built-in sequence kinds. The set is closed: analysis packages are
// alphabet-agnostic and extending the library means adding a constant
// here, not registering one at runtime.
var (
	// DNA is the strict four-base nucleotide alphabet.
	DNA = newAlphabet("DNA", "ACGT", "ACGT", "TGCA", true)

	// IUPAC is the extended nucleotide alphabet: the four bases, the ten
	// ambiguity codes, the wildcard N, and the gap symbol '-'.
	IUPAC = newAlphabet("IUPAC", "ACGTRYSWKMBDHVN-", "ACGT", "TGCAYRSWMKVHDBN-", true)

	// Protein is the amino-acid alphabet: the twenty standard residues
	// plus 'X' (unknown) and '*' (stop). No complement relation.
	Protein = newAlphabet("Protein", "ACDEFGHIKLMNPQRSTVWYX*", "ACDEFGHIKLMNPQRSTVWY", "", false)
)

// newAlphabet builds one of the package constants. complement, when
// non-empty, is aligned index-by-index with symbols.
func newAlphabet(name, symbols, core, complement string, codons bool) *Alphabet {
	a := &Alphabet{
		name:      name,
		symbols:   symbols,
		core:      core,
		hasComp:   complement != "",
		hasCodons: codons,
	}
	for i := 0; i < len(symbols); i++ {
		a.member[symbols[i]] = true
		if a.hasComp {
			a.comp[symbols[i]] = complement[i]
		}
	}
	for i := 0; i < len(core); i++ {
		a.coreMember[core[i]] = true
	}

	return a
}

// Validate scans every character of raw and returns nil when all of them
// belong to the alphabet. The first illegal character fails with
// ErrInvalidSymbol, naming the symbol and its 1-based position. There is
// no partial acceptance: one bad character rejects the whole input.
// Complexity: O(len(raw))
func (a *Alphabet) Validate(raw string) error {
	for i := 0; i < len(raw); i++ {
		if !a.member[raw[i]] {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, raw[i], i+1)
		}
	}

	return nil
}

// Contains reports whether sym is a legal symbol of the alphabet.
func (a *Alphabet) Contains(sym byte) bool { return a.member[sym] }

// IsCore reports whether sym is one of the alphabet's core (unambiguous)
// symbols.
func (a *Alphabet) IsCore(sym byte) bool { return a.coreMember[sym] }

// Complement returns the base-pairing partner of sym. It fails with
// ErrNoComplement when the alphabet has no complement relation, and with
// ErrInvalidSymbol when sym is not a member.
func (a *Alphabet) Complement(sym byte) (byte, error) {
	if !a.hasComp {
		return 0, fmt.Errorf("%w: %s", ErrNoComplement, a.name)
	}
	if !a.member[sym] {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, sym)
	}

	return a.comp[sym], nil
}

// HasComplement reports whether the alphabet defines a complement
// relation (true for DNA and IUPAC, false for Protein).
func (a *Alphabet) HasComplement() bool { return a.hasComp }

// HasCodonTable reports whether sequences over this alphabet can be
// translated through the genetic code (true for DNA and IUPAC).
func (a *Alphabet) HasCodonTable() bool { return a.hasCodons }

// Symbols returns the legal symbols in canonical order.
func (a *Alphabet) Symbols() string { return a.symbols }

// Core returns the core (unambiguous) symbols in canonical order.
// K-mer enumeration ranges over exactly these.
func (a *Alphabet) Core() string { return a.core }

// Len returns the number of legal symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// String returns the alphabet's name.
func (a *Alphabet) String() string { return a.name }
