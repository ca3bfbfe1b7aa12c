package testing

import (
	"sync"
	"time"
)

// Epoch is the instant every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an animation.Clock that only moves when a test or a
// FrameDriver advances it. Hand it to toolsarea.Options.Clock or
// animation.NewTickerSet so debounce delays and color transitions land on
// exact instants.
//
// Time never runs backwards. Methods are safe for concurrent use so a
// goroutine feeding Manager.Post may read it.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock reading Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now implements animation.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time. A negative
// d leaves the clock unchanged.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}

// Elapsed returns how far the clock has moved since Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}
