package seq

import (
	"bytes"
	"fmt"

	"lukechampine.com/blake3"

	"github.com/katalvlaran/bioseq/alphabet"
)

// Sequence is an immutable ordered run of symbols drawn from one
// alphabet. The zero value is the empty sequence over no alphabet;
// construct real sequences with New.
//
// Invariant: every symbol is a member of the associated alphabet.
type Sequence struct {
	syms  []byte
	alpha *alphabet.Alphabet
}

// New validates text against a and returns the resulting Sequence.
// The first illegal character fails with alphabet.ErrInvalidSymbol
// (naming the symbol and its 1-based position); nothing is constructed
// on failure. The input is copied, so later changes to text's backing
// storage cannot reach the Sequence.
// Complexity: O(len(text))
func New(text string, a *alphabet.Alphabet) (Sequence, error) {
	if a == nil {
		return Sequence{}, ErrNilAlphabet
	}
	if err := a.Validate(text); err != nil {
		return Sequence{}, err
	}

	return Sequence{syms: []byte(text), alpha: a}, nil
}

// MustNew is New that panics on error. Intended for tests, examples,
// and literals known to be valid.
func MustNew(text string, a *alphabet.Alphabet) Sequence {
	s, err := New(text, a)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.syms) }

// Alphabet returns the alphabet the sequence was validated against.
func (s Sequence) Alphabet() *alphabet.Alphabet { return s.alpha }

// At returns the symbol at the 1-based position pos.
// Fails with ErrOutOfRange outside [1, Len].
func (s Sequence) At(pos int) (byte, error) {
	if pos < 1 || pos > len(s.syms) {
		return 0, fmt.Errorf("%w: position %d, length %d", ErrOutOfRange, pos, len(s.syms))
	}

	return s.syms[pos-1], nil
}

// Slice returns the sub-sequence covering the 1-based closed interval
// [start, end]; both endpoints are included, so the result has length
// end-start+1. Fails with ErrOutOfRange when start < 1, end > Len, or
// start > end. The result owns its symbols.
func (s Sequence) Slice(start, end int) (Sequence, error) {
	if start < 1 || end > len(s.syms) || start > end {
		return Sequence{}, fmt.Errorf("%w: [%d, %d] of length %d", ErrOutOfRange, start, end, len(s.syms))
	}
	out := make([]byte, end-start+1)
	copy(out, s.syms[start-1:end])

	return Sequence{syms: out, alpha: s.alpha}, nil
}

// String returns the symbol-per-character textual form. The round-trip
// New(s.String(), s.Alphabet()) reproduces s exactly.
func (s Sequence) String() string { return string(s.syms) }

// Bytes returns a copy of the symbol buffer.
func (s Sequence) Bytes() []byte {
	out := make([]byte, len(s.syms))
	copy(out, s.syms)

	return out
}

// Equal reports whether the two sequences share one alphabet and carry
// identical symbols.
func (s Sequence) Equal(other Sequence) bool {
	return s.alpha == other.alpha && bytes.Equal(s.syms, other.syms)
}

// Fingerprint returns the BLAKE3 digest of the alphabet kind and the
// symbol buffer: a constant-size identity for byte-for-byte equal
// sequences of the same kind.
func (s Sequence) Fingerprint() [32]byte {
	var kind string
	if s.alpha != nil {
		kind = s.alpha.String()
	}
	buf := make([]byte, 0, len(kind)+1+len(s.syms))
	buf = append(buf, kind...)
	buf = append(buf, 0)
	buf = append(buf, s.syms...)

	return blake3.Sum256(buf)
}

// ReverseComplement returns a new Sequence with the symbol order
// reversed and every symbol complemented. Fails with
// alphabet.ErrNoComplement when the alphabet has no complement relation.
// ReverseComplement is an involution: rc(rc(s)) == s.
// Complexity: O(n)
func (s Sequence) ReverseComplement() (Sequence, error) {
	if s.alpha == nil {
		return Sequence{}, ErrNilAlphabet
	}
	if !s.alpha.HasComplement() {
		return Sequence{}, fmt.Errorf("%w (%s)", alphabet.ErrNoComplement, s.alpha)
	}
	n := len(s.syms)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c, err := s.alpha.Complement(s.syms[n-1-i])
		if err != nil {
			return Sequence{}, err
		}
		out[i] = c
	}

	return Sequence{syms: out, alpha: s.alpha}, nil
}
