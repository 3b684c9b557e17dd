package seqset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/bioseq/alphabet"
	"github.com/katalvlaran/bioseq/seq"
	"github.com/katalvlaran/bioseq/seqset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenTexts is the reference collection shared across the set tests.
var goldenTexts = []string{"TCA", "AAATCG", "ACGTGCCTA", "CGCGCA", "GTT", "TCA"}

func mustSet(t *testing.T, texts []string) *seqset.Set {
	t.Helper()
	c, err := seqset.FromTexts(texts, alphabet.DNA)
	require.NoError(t, err)

	return c
}

// texts extracts the textual forms of a set's elements, in order.
func texts(c *seqset.Set) []string {
	out := make([]string, 0, c.Len())
	for _, s := range c.Sequences() {
		out = append(out, s.String())
	}

	return out
}

// TestFromTexts_ValidatesEveryElement ensures the first bad element
// fails construction with its 1-based list position.
func TestFromTexts_ValidatesEveryElement(t *testing.T) {
	c := mustSet(t, goldenTexts)
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, alphabet.DNA, c.Alphabet())

	_, err := seqset.FromTexts([]string{"ACG", "AXG", "TTT"}, alphabet.DNA)
	require.ErrorIs(t, err, alphabet.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "element 2", "list position must be reported")

	_, err = seqset.FromTexts([]string{"ACG"}, nil)
	assert.ErrorIs(t, err, seqset.ErrNilAlphabet)

	empty, err := seqset.FromTexts(nil, alphabet.DNA)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

// TestFromSequences_MixedAlphabets refuses to mix sequence kinds.
func TestFromSequences_MixedAlphabets(t *testing.T) {
	d := seq.MustNew("ACG", alphabet.DNA)
	i := seq.MustNew("ACN", alphabet.IUPAC)

	c, err := seqset.FromSequences(d, d)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = seqset.FromSequences(d, i)
	assert.ErrorIs(t, err, seqset.ErrMixedAlphabets)
}

// TestGet covers 1-based element access and its bounds.
func TestGet(t *testing.T) {
	c := mustSet(t, goldenTexts)

	first, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "TCA", first.String())

	last, err := c.Get(6)
	require.NoError(t, err)
	assert.Equal(t, "TCA", last.String())

	_, err = c.Get(0)
	assert.ErrorIs(t, err, seqset.ErrIndexOutOfBounds)
	_, err = c.Get(7)
	assert.ErrorIs(t, err, seqset.ErrIndexOutOfBounds)
}

// TestWidths preserves per-element lengths in order.
func TestWidths(t *testing.T) {
	c := mustSet(t, goldenTexts)
	assert.Equal(t, []int{3, 6, 9, 6, 3, 3}, c.Widths())
}

// TestDuplicated flags byte-for-byte repeats of earlier elements only.
func TestDuplicated(t *testing.T) {
	c := mustSet(t, goldenTexts)
	assert.Equal(t, []bool{false, false, false, false, false, true}, c.Duplicated())

	// Same length as CGCGCA but different content: no false positives.
	c2 := mustSet(t, []string{"AAA", "AAT", "AAA", "AAA"})
	assert.Equal(t, []bool{false, false, true, true}, c2.Duplicated())
}

// TestUnique keeps first occurrences in original order.
func TestUnique(t *testing.T) {
	c := mustSet(t, goldenTexts)
	u := c.Unique()
	assert.Equal(t, 5, u.Len())
	if diff := cmp.Diff([]string{"TCA", "AAATCG", "ACGTGCCTA", "CGCGCA", "GTT"}, texts(u)); diff != "" {
		t.Errorf("Unique order mismatch (-want +got):\n%s", diff)
	}

	// The source set is untouched.
	assert.Equal(t, 6, c.Len())
}

// TestSorted_StableAndIdempotent verifies lexicographic order, survival
// of duplicates, and sorted(sorted(c)) == sorted(c).
func TestSorted_StableAndIdempotent(t *testing.T) {
	c := mustSet(t, goldenTexts)
	s := c.Sorted()

	want := []string{"AAATCG", "ACGTGCCTA", "CGCGCA", "GTT", "TCA", "TCA"}
	if diff := cmp.Diff(want, texts(s)); diff != "" {
		t.Errorf("Sorted order mismatch (-want +got):\n%s", diff)
	}

	again := s.Sorted()
	if diff := cmp.Diff(texts(s), texts(again)); diff != "" {
		t.Errorf("Sorted must be idempotent (-want +got):\n%s", diff)
	}

	// Original order preserved on the source.
	if diff := cmp.Diff(goldenTexts, texts(c)); diff != "" {
		t.Errorf("source set mutated (-want +got):\n%s", diff)
	}
}

// TestSequences_IsAView ensures mutating the returned slice cannot
// reorder the set.
func TestSequences_IsAView(t *testing.T) {
	c := mustSet(t, goldenTexts)
	view := c.Sequences()
	view[0], view[1] = view[1], view[0]

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "TCA", got.String(), "swapping the view must not reach the set")
}
