package entity

import "github.com/opd-ai/go-pinball/pkg/physics"

// Renderer draws immutable entity snapshots
type Renderer interface {
	RenderBall(ball BallState)
	RenderFlipper(flipper FlipperState)
	RenderBumper(bumper BumperState)
	Clear()
	Present()
}

// BallState is a read-only copy of a ball
type BallState struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
}

// FlipperState is a read-only copy of a flipper
type FlipperState struct {
	ID       ID
	Side     Side
	Pivot    physics.Vector2D
	Angle    float64
	Phase    Phase
	Vertices []physics.Vector2D
}

// BumperState is a read-only copy of a bumper
type BumperState struct {
	ID       ID
	Position physics.Vector2D
	Radius   float64
}
