package match

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bioseq/seq"
)

// checkPattern interprets pattern against the target's alphabet.
// A pattern is meaningful only when non-empty and drawn entirely from
// the alphabet of the sequence it is matched against.
func checkPattern(pattern string, s seq.Sequence) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}
	a := s.Alphabet()
	if a == nil {
		return fmt.Errorf("%w: target has no alphabet", ErrAlphabetMismatch)
	}
	for i := 0; i < len(pattern); i++ {
		if !a.Contains(pattern[i]) {
			return fmt.Errorf("%w: %q at pattern position %d", ErrAlphabetMismatch, pattern[i], i+1)
		}
	}

	return nil
}

// scan walks every matching start of pattern in text, overlapping
// allowed, calling visit with the 0-based start of each occurrence.
// strings.Index jump-scans between candidates; advancing by one from
// each hit keeps overlapping occurrences.
func scan(text, pattern string, visit func(pos int)) {
	for i := 0; ; {
		j := strings.Index(text[i:], pattern)
		if j < 0 {
			break
		}
		pos := i + j
		visit(pos)
		i = pos + 1
	}
}

// Count returns the number of start positions of s that match pattern,
// counting overlapping occurrences. Fails with ErrEmptyPattern on a
// zero-length pattern and ErrAlphabetMismatch when pattern contains a
// symbol outside the target's alphabet. A pattern longer than the
// target yields 0, not an error.
// Complexity: O(n·m)
func Count(pattern string, s seq.Sequence) (int, error) {
	if err := checkPattern(pattern, s); err != nil {
		return 0, err
	}
	n := 0
	scan(s.String(), pattern, func(int) { n++ })

	return n, nil
}

// Locate returns the View of every match of pattern in s: 1-based
// closed intervals [start, start+len(pattern)-1], ascending by start,
// overlapping occurrences included. Count(p, s) always equals
// Locate(p, s).Count().
// Complexity: O(n·m)
func Locate(pattern string, s seq.Sequence) (View, error) {
	if err := checkPattern(pattern, s); err != nil {
		return View{}, err
	}
	var spans []Span
	scan(s.String(), pattern, func(pos int) {
		spans = append(spans, Span{Start: pos + 1, End: pos + len(pattern)})
	})

	return View{Spans: spans}, nil
}
