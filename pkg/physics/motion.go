package physics

import "math"

// MotionState tracks the kinematic state of a body
type MotionState struct {
	Position Vector2D
	Velocity Vector2D
}

// MotionParams configures UpdateMotion
type MotionParams struct {
	Gravity      float64 // px/s², pulls velocity.Y down
	FrictionBase float64 // fraction of velocity.X kept after one second
	MinVelocity  float64 // below this |velocity.X| friction is not applied
}

// UpdateMotion advances state by deltaTime seconds. Position moves with the
// velocity held at the start of the tick, then friction damps the x
// component and gravity decrements the y component.
func UpdateMotion(state *MotionState, deltaTime float64, params MotionParams) {
	state.Position = state.Position.Add(state.Velocity.Scale(deltaTime))

	if math.Abs(state.Velocity.X) > params.MinVelocity {
		state.Velocity.X *= math.Pow(params.FrictionBase, deltaTime)
	}

	state.Velocity.Y -= params.Gravity * deltaTime
}
