package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for pinning scenario dates. It satisfies the
// engine's clock adapter so date-window logic is deterministic under test.
type Clock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now().UTC()}
}

// Set pins the current time.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}

// Now returns the pinned time.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}
