package freq

import "sort"

// Table maps a k-mer (or single symbol) to its exact occurrence count.
// Counts are non-negative integers; insertion order carries no meaning,
// lookup is by key.
type Table map[string]int

// Sum returns the total of all counts in the table.
func (t Table) Sum() int {
	total := 0
	for _, n := range t {
		total += n
	}

	return total
}

// Kmers returns every key of the table in lexicographic order, for
// deterministic iteration.
func (t Table) Kmers() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
