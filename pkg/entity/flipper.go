// pkg/entity/flipper.go
package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/opd-ai/go-pinball/pkg/physics"
)

// Side identifies which flipper a paddle is
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide converts "left" or "right" to a Side
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown flipper side %q", name)
	}
}

// Phase is the animation state of a flipper
type Phase int

const (
	Idle Phase = iota
	Rising
	Falling
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// FlipperParams holds the shape and animation constants of a flipper.
// Angles are given for the left flipper; the right one mirrors them.
type FlipperParams struct {
	Length       float64
	Height       float64
	MinAngle     float64
	MaxAngle     float64
	RiseDuration time.Duration
	FallDuration time.Duration
	RiseEasing   string
	FallEasing   string
	RayCastBoost float64
}

// Flipper is a thin rectangle pivoting around Position
type Flipper struct {
	BaseEntity
	Side Side

	params FlipperParams
	// angle before mirroring, always within [MinAngle, MaxAngle]
	base      float64
	phase     Phase
	riseTimer *AnimationTimer
	fallTimer *AnimationTimer
	polygon   *physics.Polygon
}

// NewFlipper creates a flipper at rest
func NewFlipper(side Side, pivot physics.Vector2D, params FlipperParams) (*Flipper, error) {
	if side != Left && side != Right {
		return nil, fmt.Errorf("invalid flipper side %v", side)
	}
	if params.Length <= 0 || params.Height <= 0 {
		return nil, fmt.Errorf("flipper length and height must be positive, got %v x %v", params.Length, params.Height)
	}
	if params.MinAngle >= params.MaxAngle {
		return nil, fmt.Errorf("flipper min angle %v must be below max angle %v", params.MinAngle, params.MaxAngle)
	}

	f := &Flipper{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: pivot,
		},
		Side:      side,
		params:    params,
		base:      params.MinAngle,
		riseTimer: NewAnimationTimer(params.RiseDuration, params.RiseEasing),
		fallTimer: NewAnimationTimer(params.FallDuration, params.FallEasing),
	}

	polygon, err := physics.NewPolygon(f.Vertices())
	if err != nil {
		return nil, fmt.Errorf("failed to build flipper polygon: %w", err)
	}
	f.polygon = polygon
	return f, nil
}

// mirror maps an angle of the left flipper onto this flipper's side
func (f *Flipper) mirror(angle float64) float64 {
	if f.Side == Right {
		return math.Pi - angle
	}
	return angle
}

// Angle returns the current angle in radians
func (f *Flipper) Angle() float64 {
	return f.mirror(f.base)
}

// MinAngle returns the rest angle
func (f *Flipper) MinAngle() float64 {
	return f.mirror(f.params.MinAngle)
}

// MaxAngle returns the fully raised angle
func (f *Flipper) MaxAngle() float64 {
	return f.mirror(f.params.MaxAngle)
}

// Params returns the flipper constants
func (f *Flipper) Params() FlipperParams {
	return f.params
}

// Phase returns the animation state
func (f *Flipper) Phase() Phase {
	return f.phase
}

// IsAnimating reports whether the flipper is rising or falling
func (f *Flipper) IsAnimating() bool {
	return f.riseTimer.IsRunning() || f.fallTimer.IsRunning()
}

// Polygon returns the collision polygon
func (f *Flipper) Polygon() *physics.Polygon {
	return f.polygon
}

// Activate starts the rise animation. Input is ignored while animating.
func (f *Flipper) Activate() bool {
	if f.IsAnimating() {
		return false
	}
	f.base = f.params.MinAngle
	f.riseTimer.Start()
	f.phase = Rising
	return true
}

// Reset stops any animation and puts the flipper at rest
func (f *Flipper) Reset() {
	f.riseTimer.Stop()
	f.fallTimer.Stop()
	f.phase = Idle
	f.base = f.params.MinAngle
	f.updatePolygon()
}

// UpdateAngle advances the animation by dt seconds and rebuilds the polygon
func (f *Flipper) UpdateAngle(dt float64) {
	span := f.params.MaxAngle - f.params.MinAngle

	switch {
	case f.riseTimer.IsRunning():
		f.riseTimer.Advance(seconds(dt))
		if f.riseTimer.Done() {
			f.riseTimer.Stop()
			f.base = f.params.MaxAngle
			f.fallTimer.Start()
			f.phase = Falling
		} else {
			f.base = f.params.MinAngle + span*f.riseTimer.Progress()
		}
	case f.fallTimer.IsRunning():
		f.fallTimer.Advance(seconds(dt))
		if f.fallTimer.Done() {
			f.fallTimer.Stop()
			f.base = f.params.MinAngle
			f.phase = Idle
		} else {
			f.base = f.params.MaxAngle - span*f.fallTimer.Progress()
		}
	default:
		return
	}

	f.updatePolygon()
}

func (f *Flipper) updatePolygon() {
	f.polygon.SetVertices(f.Vertices())
}

// direction returns the pivot-to-tip vector
func (f *Flipper) direction() physics.Vector2D {
	return physics.FromAngle(f.Angle(), f.params.Length)
}

// Vertices returns the four corners of the paddle for the current angle
func (f *Flipper) Vertices() []physics.Vector2D {
	direction := f.direction()
	perp := direction.Perp().WithLength(f.params.Height)

	begin := f.Position.Sub(perp.Scale(0.5))
	v1 := begin.Add(perp)
	v2 := v1.Add(direction)
	v3 := v2.Sub(perp)
	return []physics.Vector2D{begin, v1, v2, v3}
}

// outOfReach reports whether the ball is entirely above the paddle's reach
func (f *Flipper) outOfReach(ball *Ball) bool {
	return f.Position.Y+f.params.Length < ball.Position.Y-ball.Radius
}

// HandleCollision runs the SAT check against ball
func (f *Flipper) HandleCollision(ball *Ball) bool {
	if f.outOfReach(ball) {
		return false
	}
	return HandlePolygonCollision(f.polygon, ball)
}

// edgeNormal returns the unit normal of the paddle's upper face
func (f *Flipper) edgeNormal() physics.Vector2D {
	normal := f.direction().Perp().Normalize()
	if normal.Y < 0 {
		normal = normal.Neg()
	}
	return normal
}

// sweptBand is the rectangle covered by the paddle over its whole stroke
func (f *Flipper) sweptBand() physics.Bounds {
	xs := f.polygon.Project(physics.Vector2D{X: 1})
	half := f.params.Height / 2

	lo := f.Position.Y
	hi := f.Position.Y
	for _, angle := range []float64{f.params.MinAngle, f.params.MaxAngle} {
		y := f.Position.Y + f.params.Length*math.Sin(angle)
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}

	return physics.NewBounds(
		physics.Vector2D{X: xs.Min, Y: lo - half},
		physics.Vector2D{X: xs.Max, Y: hi + half},
	)
}

// HandleRayCast catches a ball that crossed the moving paddle between two
// ticks. The upper face is intersected with the ball's displacement; on a
// hit the ball goes back to its previous position and is launched upwards
// and away from the flipper's side.
func (f *Flipper) HandleRayCast(ball *Ball) bool {
	if !f.IsAnimating() {
		return false
	}

	normal := f.edgeNormal()
	face := physics.Line{
		Point:     f.Position.Add(normal.Scale(f.params.Height / 2)),
		Direction: f.direction(),
	}
	path := physics.NewLine(ball.LastPosition, ball.Position)

	hit := physics.Intersect(face, path)
	if hit.IsNaN() {
		return false
	}
	if !f.sweptBand().Contains(hit) {
		return false
	}
	if !physics.NewBounds(ball.LastPosition, ball.Position).Expanded(ball.Radius).Contains(hit) {
		return false
	}

	ball.Position = ball.LastPosition
	ball.Deflect(normal)
	ball.Velocity = ball.Velocity.Scale(f.params.RayCastBoost)
	ball.Velocity.Y = math.Abs(ball.Velocity.Y)
	if f.Side == Left {
		ball.Velocity.X = math.Abs(ball.Velocity.X)
	} else {
		ball.Velocity.X = -math.Abs(ball.Velocity.X)
	}
	ball.ClampVelocity()
	ball.UpdateCollisionPolygon()
	return true
}

// State returns a snapshot of the flipper
func (f *Flipper) State() FlipperState {
	return FlipperState{
		ID:       f.ID,
		Side:     f.Side,
		Pivot:    f.Position,
		Angle:    f.Angle(),
		Phase:    f.phase,
		Vertices: f.polygon.Vertices(),
	}
}

// Render implements Entity
func (f *Flipper) Render(r Renderer) {
	r.RenderFlipper(f.State())
}
