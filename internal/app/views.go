package app

import "sync"

/*
ViewCounter counts page renders for the lifetime of the process. It is
shared by every request, so the increment happens under a mutex; the
count starts at zero and is never persisted.
*/
type ViewCounter struct {
	mu sync.Mutex
	n  uint64
}

// Next increments the counter and returns the new value.
func (c *ViewCounter) Next() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n
}

// Current returns the count without incrementing.
func (c *ViewCounter) Current() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
