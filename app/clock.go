package app

import "time"

// MaxDelta caps a single frame step, e.g. after the window was dragged.
const MaxDelta = 0.1

// Clock measures frame deltas and session time from a monotonic source.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Tick returns the seconds since the previous Tick (capped at MaxDelta)
// and the seconds since the clock was created.
func (c *Clock) Tick() (delta, elapsed float32) {
	t := c.now()
	delta = float32(t.Sub(c.last).Seconds())
	elapsed = float32(t.Sub(c.start).Seconds())
	c.last = t
	if delta > MaxDelta {
		delta = MaxDelta
	}
	if delta < 0 {
		delta = 0
	}
	return delta, elapsed
}
