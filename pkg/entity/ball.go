// pkg/entity/ball.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-pinball/pkg/physics"
)

// BallParams holds the motion constants of a ball
type BallParams struct {
	Gravity      float64 // px/s²
	FrictionBase float64 // fraction of velocity.X kept per second
	MinVelocity  float64 // friction only applies above this |velocity.X|
	MaxVelocity  float64 // per-component clamp applied after every bounce
}

// Ball is the only moving body on the playfield. Its collision polygon is
// an axis-aligned square whose half-extent equals the radius.
type Ball struct {
	BaseEntity
	Velocity     physics.Vector2D
	LastPosition physics.Vector2D
	Radius       float64

	params  BallParams
	polygon *physics.Polygon
}

// NewBall creates a ball at position
func NewBall(position, velocity physics.Vector2D, radius float64, params BallParams) (*Ball, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("ball radius must be positive, got %v", radius)
	}
	polygon, err := physics.NewPolygon(squareAround(position, radius))
	if err != nil {
		return nil, fmt.Errorf("failed to build ball polygon: %w", err)
	}
	return &Ball{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
		},
		Velocity:     velocity,
		LastPosition: position,
		Radius:       radius,
		params:       params,
		polygon:      polygon,
	}, nil
}

func squareAround(center physics.Vector2D, half float64) []physics.Vector2D {
	return []physics.Vector2D{
		{X: center.X - half, Y: center.Y + half},
		{X: center.X + half, Y: center.Y + half},
		{X: center.X + half, Y: center.Y - half},
		{X: center.X - half, Y: center.Y - half},
	}
}

// Params returns the ball's motion constants
func (b *Ball) Params() BallParams {
	return b.params
}

// Polygon returns the square collision proxy
func (b *Ball) Polygon() *physics.Polygon {
	return b.polygon
}

// Collider returns the ball as a circle
func (b *Ball) Collider() physics.Circle {
	return physics.Circle{Center: b.Position, Radius: b.Radius}
}

// UpdateCollisionPolygon re-centers the square proxy on the current position
func (b *Ball) UpdateCollisionPolygon() {
	b.polygon.SetVertices(squareAround(b.Position, b.Radius))
}

// Place teleports the ball, resetting its previous position too
func (b *Ball) Place(position, velocity physics.Vector2D) {
	b.Position = position
	b.LastPosition = position
	b.Velocity = velocity
	b.UpdateCollisionPolygon()
}

// Move advances the ball by dt seconds under gravity and friction
func (b *Ball) Move(dt float64) {
	b.LastPosition = b.Position

	state := physics.MotionState{Position: b.Position, Velocity: b.Velocity}
	physics.UpdateMotion(&state, dt, physics.MotionParams{
		Gravity:      b.params.Gravity,
		FrictionBase: b.params.FrictionBase,
		MinVelocity:  b.params.MinVelocity,
	})
	b.Position = state.Position
	b.Velocity = state.Velocity

	b.UpdateCollisionPolygon()
}

// CheckBounds bounces the ball off the canvas walls. Side walls are checked
// before floor and ceiling; at most one axis is resolved per call.
func (b *Ball) CheckBounds(width, height float64) bool {
	switch {
	case b.Position.X-b.Radius <= 0 || b.Position.X+b.Radius >= width:
		b.Velocity.X = -b.Velocity.X
		if b.Position.X-b.Radius < 0 {
			b.Position.X = b.Radius
		}
		if b.Position.X+b.Radius > width {
			b.Position.X = width - b.Radius
		}
	case b.Position.Y-b.Radius <= 0 || b.Position.Y+b.Radius >= height:
		b.Velocity.Y = -b.Velocity.Y
		if b.Position.Y-b.Radius < 0 {
			b.Position.Y = b.Radius
		}
		if b.Position.Y+b.Radius > height {
			b.Position.Y = height - b.Radius
		}
	default:
		return false
	}
	b.UpdateCollisionPolygon()
	return true
}

// Bounce resolves a SAT collision against obstacle: the MTV axis is turned
// to point away from the obstacle, the ball is pushed out, its velocity is
// reflected and then clamped.
func (b *Ball) Bounce(mtv physics.MinimumTranslationVector, obstacle *physics.Polygon) {
	mtv.CorrectDirection(obstacle.Centroid(), b.Position)
	b.Separate(mtv.Translation())
	b.Deflect(mtv.Axis)
	b.ClampVelocity()
}

// Separate moves the ball by translation
func (b *Ball) Separate(translation physics.Vector2D) {
	b.LastPosition = b.Position
	b.Position = b.Position.Add(translation)
	b.UpdateCollisionPolygon()
}

// Deflect reflects the velocity about the collision normal, elastically
func (b *Ball) Deflect(normal physics.Vector2D) {
	b.Velocity = physics.CollisionBasis(normal).Reflect(b.Velocity)
}

// ClampVelocity limits each velocity component to ±MaxVelocity
func (b *Ball) ClampVelocity() {
	limit := b.params.MaxVelocity
	b.Velocity.X = clamp(b.Velocity.X, -limit, limit)
	b.Velocity.Y = clamp(b.Velocity.Y, -limit, limit)
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// State returns a snapshot of the ball
func (b *Ball) State() BallState {
	return BallState{
		ID:       b.ID,
		Position: b.Position,
		Velocity: b.Velocity,
		Radius:   b.Radius,
	}
}

// Render implements Entity
func (b *Ball) Render(r Renderer) {
	r.RenderBall(b.State())
}
