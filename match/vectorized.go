package match

import (
	"sync"

	"github.com/katalvlaran/bioseq/seq"
	"github.com/katalvlaran/bioseq/seqset"
)

// forEach runs fn over every element of set on a bounded worker pool.
// Each invocation writes only its own index, so output order is always
// the set order regardless of scheduling. The first per-element error
// in index order is returned.
func forEach(set *seqset.Set, workers int, fn func(i int, s seq.Sequence) error) error {
	n := set.Len()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	errs := make([]error, n)
	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				s, err := set.Get(i + 1)
				if err != nil {
					errs[i] = err
					continue
				}
				errs[i] = fn(i, s)
			}
		}()
	}
	for i := 0; i < n; i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// applyOptions folds opts over DefaultOptions and surfaces any recorded
// option violation.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// VCount returns the per-element Count of pattern over every element of
// set, in set order: VCount(p, c)[i] == Count(p, c.Get(i+1)) for all i.
// Fails with ErrNilSet on a nil set; pattern errors are those of Count.
// Elements are processed on a bounded worker pool; the output order is
// index-stable regardless of execution order.
func VCount(pattern string, set *seqset.Set, opts ...Option) ([]int, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	out := make([]int, set.Len())
	err = forEach(set, o.Workers, func(i int, s seq.Sequence) error {
		n, cerr := Count(pattern, s)
		if cerr != nil {
			return cerr
		}
		out[i] = n

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// VLocate returns the per-element Locate View of pattern over every
// element of set, in set order. Semantics mirror VCount with full match
// intervals instead of counts.
func VLocate(pattern string, set *seqset.Set, opts ...Option) ([]View, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	out := make([]View, set.Len())
	err = forEach(set, o.Workers, func(i int, s seq.Sequence) error {
		v, lerr := Locate(pattern, s)
		if lerr != nil {
			return lerr
		}
		out[i] = v

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
