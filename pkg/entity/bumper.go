package entity

import (
	"github.com/opd-ai/go-pinball/pkg/physics"
)

// Bumper is a static circle the ball rebounds from with energy loss
type Bumper struct {
	BaseEntity
	Radius float64
}

// NewBumper creates a bumper
func NewBumper(position physics.Vector2D, radius float64) *Bumper {
	return &Bumper{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
		},
		Radius: radius,
	}
}

// Collider returns the bumper as a circle
func (b *Bumper) Collider() physics.Circle {
	return physics.Circle{Center: b.Position, Radius: b.Radius}
}

// HandleCollision bounces ball off the bumper when they overlap.
// The velocity is expressed in a basis whose y axis runs from the bumper
// to the ball; the tangential part is scaled by friction and the radial
// part by -friction. The ball is then pushed back onto the bumper surface.
func (b *Bumper) HandleCollision(ball *Ball, friction float64) bool {
	hit := physics.CheckCollision(b.Collider(), ball.Collider())
	if !hit.Collided {
		return false
	}

	basis := physics.CollisionBasis(hit.Normal)
	local := basis.ToLocal(ball.Velocity)
	local.X *= friction
	local.Y *= -friction
	ball.Velocity = basis.TimesVector(local)

	ball.Separate(hit.Normal.Scale(hit.Penetration))
	ball.ClampVelocity()
	return true
}

// State returns a snapshot of the bumper
func (b *Bumper) State() BumperState {
	return BumperState{
		ID:       b.ID,
		Position: b.Position,
		Radius:   b.Radius,
	}
}

// Render implements Entity
func (b *Bumper) Render(r Renderer) {
	r.RenderBumper(b.State())
}
