// Package clock provides the simulation clock shared by gameplay code.
// Gameplay timers are stamps against this clock rather than wall-clock
// reads, so the whole simulation is deterministic under test.
package clock

// Clock accumulates simulated milliseconds. The game loop advances it once
// per frame; everything downstream reads Now.
type Clock struct {
	ms float64
}

func New() *Clock {
	return &Clock{}
}

// Advance moves the clock forward by dtMs milliseconds. Negative deltas are
// ignored.
func (c *Clock) Advance(dtMs float64) {
	if c == nil || dtMs <= 0 {
		return
	}
	c.ms += dtMs
}

// Now returns the accumulated simulation time in milliseconds.
func (c *Clock) Now() float64 {
	if c == nil {
		return 0
	}
	return c.ms
}

// Since returns the milliseconds elapsed since stamp.
func (c *Clock) Since(stamp float64) float64 {
	return c.Now() - stamp
}
