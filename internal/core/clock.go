package core

import "time"

// Clock is the time source the game samples at point of use, standing in
// for the firmware's millisecond counter. Spawn intervals, the score
// timer and debounce windows all measure against it, so injecting a
// manual implementation makes every timing rule deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Tests and headless runs advance
// it by the nominal tick duration to fast-forward without sleeping.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Set jumps the clock to an absolute instant.
func (c *ManualClock) Set(t time.Time) { c.now = t }
