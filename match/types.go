// Package match defines result and option types for exact pattern search.
package match

import (
	"fmt"
	"runtime"
)

// Span is one match interval, 1-based and closed: both Start and End are
// inside the match, so End-Start+1 equals the pattern length.
type Span struct {
	Start int
	End   int
}

// String renders the interval in the conventional [start, end] form.
func (p Span) String() string { return fmt.Sprintf("[%d, %d]", p.Start, p.End) }

// View is the result of locating a pattern in one sequence: every match
// interval in left-to-right order of occurrence.
type View struct {
	// Spans holds the match intervals, ascending by Start.
	Spans []Span
}

// Count returns the number of matches: the length of the span list.
func (v View) Count() int { return len(v.Spans) }

// Starts returns the 1-based start positions of all matches, ascending.
func (v View) Starts() []int {
	out := make([]int, len(v.Spans))
	for i, p := range v.Spans {
		out[i] = p.Start
	}

	return out
}

// Option configures the vectorized forms via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when VCount or VLocate is invoked.
type Option func(*Options)

// Options holds parameters for VCount/VLocate execution.
type Options struct {
	// Workers bounds the per-element worker pool.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Workers = GOMAXPROCS (one worker per available CPU).
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the vectorized worker pool to n workers.
//
//	n >= 1: use at most n workers
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
