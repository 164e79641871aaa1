package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewCounterStartsAtZero(t *testing.T) {
	c := &ViewCounter{}
	assert.Equal(t, uint64(0), c.Current())
	assert.Equal(t, uint64(1), c.Next())
	assert.Equal(t, uint64(2), c.Next())
	assert.Equal(t, uint64(2), c.Current())
}

// N concurrent increments from a starting value V must yield exactly
// V+N; the mutex prevents lost updates.
func TestViewCounterConcurrentIncrements(t *testing.T) {
	c := &ViewCounter{}
	const n = 500

	var wg sync.WaitGroup
	seen := make([]uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = c.Next()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, uint64(n), c.Current())

	// Every increment observed a distinct value.
	unique := make(map[uint64]struct{}, n)
	for _, v := range seen {
		unique[v] = struct{}{}
	}
	assert.Len(t, unique, n)
}
