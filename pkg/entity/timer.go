package entity

import "time"

// AnimationTimer tracks the elapsed time of a fixed-length animation.
// Time only advances through Advance, so animations follow the simulation
// clock rather than the wall clock.
type AnimationTimer struct {
	duration time.Duration
	easing   string // informational; progress is always linear
	elapsed  time.Duration
	running  bool
}

// NewAnimationTimer creates a stopped timer
func NewAnimationTimer(duration time.Duration, easing string) *AnimationTimer {
	return &AnimationTimer{
		duration: duration,
		easing:   easing,
	}
}

// Duration returns the animation length
func (t *AnimationTimer) Duration() time.Duration {
	return t.duration
}

// Easing returns the stored easing label
func (t *AnimationTimer) Easing() string {
	return t.easing
}

// Start resets elapsed time and marks the timer running
func (t *AnimationTimer) Start() {
	t.elapsed = 0
	t.running = true
}

// Stop halts the timer
func (t *AnimationTimer) Stop() {
	t.running = false
	t.elapsed = 0
}

// Advance adds dt to the elapsed time of a running timer
func (t *AnimationTimer) Advance(dt time.Duration) {
	if t.running {
		t.elapsed += dt
	}
}

// Elapsed returns the time since Start
func (t *AnimationTimer) Elapsed() time.Duration {
	return t.elapsed
}

// IsRunning reports whether the timer has been started and not stopped
func (t *AnimationTimer) IsRunning() bool {
	return t.running
}

// Done reports whether a running timer has reached its duration
func (t *AnimationTimer) Done() bool {
	return t.running && t.elapsed >= t.duration
}

// Progress returns elapsed/duration clamped to [0, 1]
func (t *AnimationTimer) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

// seconds converts a simulation step in seconds to a duration
func seconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}
