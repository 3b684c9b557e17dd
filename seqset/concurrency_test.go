// Package seqset_test verifies that immutable sets are safe for
// unsynchronized concurrent readers.
package seqset_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders hammers one Set from many goroutines; since
// construction is the only write, every query must agree with the
// single-threaded result without locks.
func TestConcurrentReaders(t *testing.T) {
	c := mustSet(t, goldenTexts)
	wantDup := c.Duplicated()
	wantSorted := texts(c.Sorted())

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				require.Equal(t, wantDup, c.Duplicated())
				require.Equal(t, wantSorted, texts(c.Sorted()))
				s, err := c.Get(1 + i%c.Len())
				require.NoError(t, err)
				require.NotZero(t, s.Len())
			}
		}()
	}
	wg.Wait()
}
