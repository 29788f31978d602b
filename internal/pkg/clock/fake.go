package clock

import (
	"sync"
	"time"
)

// Fake implements Clock with a manually advanced time, for tests
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeAt returns a fake clock pinned to the given time
func NewFakeAt(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the fake current time
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the fake clock forward by d
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
