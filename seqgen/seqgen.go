package seqgen

import (
	"fmt"

	wr "github.com/mroth/weightedrand"

	"github.com/katalvlaran/bioseq/alphabet"
	"github.com/katalvlaran/bioseq/seq"
	"github.com/katalvlaran/bioseq/seqset"
)

// Random returns a sequence of n symbols drawn from the core symbols of
// a, uniformly by default or biased via WithWeights. Draws come from a
// deterministic stream (see WithSeed); repeated runs with the same
// options produce the same sequence.
// Complexity: O(n)
func Random(n int, a *alphabet.Alphabet, opts ...Option) (seq.Sequence, error) {
	o, chooser, err := prepare(n, a, opts)
	if err != nil {
		return seq.Sequence{}, err
	}

	return draw(n, a, o, chooser)
}

// RandomSet returns a seqset.Set of count sequences of n symbols each,
// all drawn from one deterministic stream in element order.
func RandomSet(count, n int, a *alphabet.Alphabet, opts ...Option) (*seqset.Set, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count = %d", ErrBadLength, count)
	}
	o, chooser, err := prepare(n, a, opts)
	if err != nil {
		return nil, err
	}

	elems := make([]seq.Sequence, count)
	for i := range elems {
		if elems[i], err = draw(n, a, o, chooser); err != nil {
			return nil, err
		}
	}
	if count == 0 {
		return seqset.FromTexts(nil, a)
	}

	return seqset.FromSequences(elems...)
}

// prepare folds the options and builds the weighted chooser over the
// alphabet's core symbols.
func prepare(n int, a *alphabet.Alphabet, opts []Option) (Options, *wr.Chooser, error) {
	if a == nil {
		return Options{}, nil, ErrNilAlphabet
	}
	if n < 0 {
		return Options{}, nil, fmt.Errorf("%w: n = %d", ErrBadLength, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, nil, o.err
	}

	core := a.Core()
	choices := make([]wr.Choice, 0, len(core))
	total := uint(0)
	for i := 0; i < len(core); i++ {
		w := uint(1)
		if o.Weights != nil {
			w = o.Weights[core[i]]
		}
		total += w
		if w > 0 {
			choices = append(choices, wr.Choice{Item: core[i], Weight: w})
		}
	}
	if o.Weights != nil {
		for sym := range o.Weights {
			if !a.IsCore(sym) {
				return Options{}, nil, fmt.Errorf("%w: weight on non-core symbol %q", ErrOptionViolation, sym)
			}
		}
		if total == 0 {
			return Options{}, nil, fmt.Errorf("%w: all weights are zero", ErrOptionViolation)
		}
	}

	chooser, err := wr.NewChooser(choices...)
	if err != nil {
		return Options{}, nil, fmt.Errorf("seqgen: building chooser: %w", err)
	}

	return o, chooser, nil
}

// draw emits one sequence of n symbols from the prepared chooser.
func draw(n int, a *alphabet.Alphabet, o Options, chooser *wr.Chooser) (seq.Sequence, error) {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = chooser.PickSource(o.Rand).(byte)
	}

	return seq.New(string(buf), a)
}
