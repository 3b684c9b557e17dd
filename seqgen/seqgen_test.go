package seqgen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bioseq/alphabet"
	"github.com/katalvlaran/bioseq/freq"
	"github.com/katalvlaran/bioseq/seqgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandom_DeterministicBySeed verifies same seed ⇒ same sequence and
// different seeds diverge.
func TestRandom_DeterministicBySeed(t *testing.T) {
	a, err := seqgen.Random(64, alphabet.DNA, seqgen.WithSeed(42))
	require.NoError(t, err)
	b, err := seqgen.Random(64, alphabet.DNA, seqgen.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must reproduce the sequence")

	c, err := seqgen.Random(64, alphabet.DNA, seqgen.WithSeed(43))
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds must diverge")

	// Default options are seeded too: repeated default runs agree.
	d1, err := seqgen.Random(32, alphabet.DNA)
	require.NoError(t, err)
	d2, err := seqgen.Random(32, alphabet.DNA)
	require.NoError(t, err)
	assert.True(t, d1.Equal(d2))
}

// TestRandom_DrawsCoreSymbolsOnly ensures generated text validates
// against its alphabet and never contains ambiguity or gap symbols.
func TestRandom_DrawsCoreSymbolsOnly(t *testing.T) {
	s, err := seqgen.Random(256, alphabet.IUPAC, seqgen.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, 256, s.Len())

	n, err := freq.LetterFrequency("ACGT", s)
	require.NoError(t, err)
	assert.Equal(t, s.Len(), n, "every drawn symbol is core")
}

// TestRandom_WeightedComposition biases the draw and checks the skew.
func TestRandom_WeightedComposition(t *testing.T) {
	s, err := seqgen.Random(2000, alphabet.DNA,
		seqgen.WithSeed(11),
		seqgen.WithWeights(map[byte]uint{'G': 9, 'C': 9, 'A': 1, 'T': 1}),
	)
	require.NoError(t, err)

	gc, err := freq.LetterFrequency("GC", s)
	require.NoError(t, err)
	assert.Greater(t, gc, 1500, "9:1 weighting must dominate the composition")

	// A zero weight excludes the symbol entirely.
	s, err = seqgen.Random(500, alphabet.DNA,
		seqgen.WithSeed(12),
		seqgen.WithWeights(map[byte]uint{'A': 1, 'C': 1, 'G': 1, 'T': 0}),
	)
	require.NoError(t, err)
	tn, err := freq.LetterFrequency("T", s)
	require.NoError(t, err)
	assert.Equal(t, 0, tn)
}

// TestRandomSet_BuildsCollections checks element count, widths and
// determinism of the set form.
func TestRandomSet_BuildsCollections(t *testing.T) {
	c, err := seqgen.RandomSet(5, 20, alphabet.DNA, seqgen.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []int{20, 20, 20, 20, 20}, c.Widths())

	again, err := seqgen.RandomSet(5, 20, alphabet.DNA, seqgen.WithSeed(3))
	require.NoError(t, err)
	for i := 1; i <= c.Len(); i++ {
		x, err := c.Get(i)
		require.NoError(t, err)
		y, err := again.Get(i)
		require.NoError(t, err)
		assert.True(t, x.Equal(y), "element %d must reproduce", i)
	}

	empty, err := seqgen.RandomSet(0, 20, alphabet.DNA)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, alphabet.DNA, empty.Alphabet())
}

// TestGeneration_Errors exercises the argument and option failures.
func TestGeneration_Errors(t *testing.T) {
	_, err := seqgen.Random(-1, alphabet.DNA)
	assert.ErrorIs(t, err, seqgen.ErrBadLength)

	_, err = seqgen.Random(10, nil)
	assert.ErrorIs(t, err, seqgen.ErrNilAlphabet)

	_, err = seqgen.RandomSet(-1, 10, alphabet.DNA)
	assert.ErrorIs(t, err, seqgen.ErrBadLength)

	_, err = seqgen.Random(10, alphabet.DNA, seqgen.WithRand(nil))
	assert.ErrorIs(t, err, seqgen.ErrOptionViolation)

	_, err = seqgen.Random(10, alphabet.DNA,
		seqgen.WithWeights(map[byte]uint{'N': 1}))
	assert.ErrorIs(t, err, seqgen.ErrOptionViolation, "N is not a core symbol")

	_, err = seqgen.Random(10, alphabet.DNA,
		seqgen.WithWeights(map[byte]uint{'A': 0, 'C': 0, 'G': 0, 'T': 0}))
	assert.ErrorIs(t, err, seqgen.ErrOptionViolation)

	// Caller-owned RNG works like a seed.
	r := rand.New(rand.NewSource(99))
	s, err := seqgen.Random(16, alphabet.DNA, seqgen.WithRand(r))
	require.NoError(t, err)
	assert.Equal(t, 16, s.Len())
}
