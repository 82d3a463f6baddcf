package engine

import (
	"context"
	"time"
)

// FrameClock measures wall-clock time between frames for hosts that drive
// Step in real time. Deltas are capped so a stalled frame cannot push the
// ball through the table.
type FrameClock struct {
	maxDelta time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFrameClock creates a clock capping deltas at maxDelta
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	c := &FrameClock{maxDelta: maxDelta, now: time.Now}
	c.Reset()
	return c
}

// Reset restarts measurement from the current time
func (c *FrameClock) Reset() {
	c.last = c.now()
}

// Delta returns the seconds since the previous call, capped
func (c *FrameClock) Delta() float64 {
	now := c.now()
	delta := now.Sub(c.last)
	c.last = now

	if delta > c.maxDelta {
		delta = c.maxDelta
	}
	if delta < 0 {
		delta = 0
	}
	return delta.Seconds()
}

// Run steps the playfield once per tick using clock until ctx is done.
// frame, when not nil, receives a snapshot after every step.
func (p *Playfield) Run(ctx context.Context, clock *FrameClock, tick time.Duration, frame func(*PlayfieldState)) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	clock.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Step(clock.Delta())
			if frame != nil {
				frame(p.Snapshot())
			}
		}
	}
}
