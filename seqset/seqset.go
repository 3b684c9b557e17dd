package seqset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bioseq/alphabet"
	"github.com/katalvlaran/bioseq/seq"
)

// Set is an ordered list of sequences over one alphabet. Duplicates are
// permitted and element order is significant. A Set is immutable after
// construction; derivations (Unique, Sorted) are new independent Sets.
type Set struct {
	elems []seq.Sequence
	alpha *alphabet.Alphabet
}

// FromTexts validates every element of texts against a and returns the
// resulting Set. The first invalid element fails with its 1-based list
// position wrapped around the alphabet error; nothing is constructed on
// failure.
// Complexity: O(total symbols)
func FromTexts(texts []string, a *alphabet.Alphabet) (*Set, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	elems := make([]seq.Sequence, len(texts))
	for i, text := range texts {
		s, err := seq.New(text, a)
		if err != nil {
			return nil, fmt.Errorf("seqset: element %d: %w", i+1, err)
		}
		elems[i] = s
	}

	return &Set{elems: elems, alpha: a}, nil
}

// FromSequences builds a Set from already-constructed sequences. All
// elements must share one alphabet; mixing kinds fails with
// ErrMixedAlphabets.
func FromSequences(seqs ...seq.Sequence) (*Set, error) {
	if len(seqs) == 0 {
		return &Set{}, nil
	}
	a := seqs[0].Alphabet()
	for i, s := range seqs {
		if s.Alphabet() != a {
			return nil, fmt.Errorf("%w: element %d is %s, element 1 is %s",
				ErrMixedAlphabets, i+1, s.Alphabet(), a)
		}
	}
	elems := make([]seq.Sequence, len(seqs))
	copy(elems, seqs)

	return &Set{elems: elems, alpha: a}, nil
}

// Len returns the number of elements.
func (c *Set) Len() int { return len(c.elems) }

// Alphabet returns the alphabet shared by all elements (nil for the
// empty set built from no sequences).
func (c *Set) Alphabet() *alphabet.Alphabet { return c.alpha }

// Get returns the element at the 1-based index i.
// Fails with ErrIndexOutOfBounds outside [1, Len].
func (c *Set) Get(i int) (seq.Sequence, error) {
	if i < 1 || i > len(c.elems) {
		return seq.Sequence{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, len(c.elems))
	}

	return c.elems[i-1], nil
}

// Sequences returns the elements in order. Sequences are immutable
// values, so the view is safe to share; the slice itself is a copy.
func (c *Set) Sequences() []seq.Sequence {
	out := make([]seq.Sequence, len(c.elems))
	copy(out, c.elems)

	return out
}

// Widths returns the per-element lengths, order-preserving.
func (c *Set) Widths() []int {
	out := make([]int, len(c.elems))
	for i, s := range c.elems {
		out[i] = s.Len()
	}

	return out
}

// Duplicated reports, for each index i, whether some earlier index j < i
// holds an identical symbol sequence. Scanning is in element order, so
// the first occurrence of any value is always false.
// Complexity: O(total symbols)
func (c *Set) Duplicated() []bool {
	out := make([]bool, len(c.elems))
	seen := make(map[[32]byte]struct{}, len(c.elems))
	for i, s := range c.elems {
		fp := s.Fingerprint()
		if _, dup := seen[fp]; dup {
			out[i] = true
			continue
		}
		seen[fp] = struct{}{}
	}

	return out
}

// Unique returns a new Set keeping the first occurrence of each distinct
// symbol sequence, in original order.
func (c *Set) Unique() *Set {
	dup := c.Duplicated()
	elems := make([]seq.Sequence, 0, len(c.elems))
	for i, s := range c.elems {
		if !dup[i] {
			elems = append(elems, s)
		}
	}

	return &Set{elems: elems, alpha: c.alpha}
}

// Sorted returns a new Set with elements in lexicographic order of their
// symbol sequences. The sort is stable: equal elements keep their
// original relative order, so repeated runs are deterministic.
// Sorted is idempotent.
func (c *Set) Sorted() *Set {
	elems := make([]seq.Sequence, len(c.elems))
	copy(elems, c.elems)
	sort.SliceStable(elems, func(i, j int) bool {
		return elems[i].String() < elems[j].String()
	})

	return &Set{elems: elems, alpha: c.alpha}
}
