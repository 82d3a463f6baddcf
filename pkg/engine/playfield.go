// pkg/engine/playfield.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/opd-ai/go-pinball/pkg/config"
	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/event"
	"github.com/opd-ai/go-pinball/pkg/logging"
	"github.com/opd-ai/go-pinball/pkg/physics"
)

// ErrUnknownFlipper is returned when no flipper exists on the requested side
var ErrUnknownFlipper = errors.New("engine: unknown flipper")

// Playfield owns every entity of a table and advances the simulation
type Playfield struct {
	Config      *config.PlayfieldConfig
	EventBus    *event.Bus
	CurrentTick uint64
	EntityLock  sync.RWMutex

	ball          *entity.Ball
	flippers      []*entity.Flipper
	bumpers       []*entity.Bumper
	lastCollision *Collision
	rng           *rand.Rand
	logger        *logging.Logger
	ctx           context.Context
}

// NewPlayfield builds a table from cfg. A nil bus or logger is replaced by
// a private bus or a discarding logger.
func NewPlayfield(cfg *config.PlayfieldConfig, bus *event.Bus, logger *logging.Logger) (*Playfield, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil configuration", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	p := &Playfield{
		Config:   cfg,
		EventBus: bus,
		rng:      rand.New(rand.NewPCG(cfg.Ball.Seed, cfg.Ball.Seed^0x9e3779b97f4a7c15)),
		logger:   logger,
		ctx:      logging.WithSession(context.Background(), ""),
	}

	ball, err := entity.NewBall(toVector(cfg.Ball.Start), p.launchVelocity(), cfg.Ball.Radius, entity.BallParams{
		Gravity:      cfg.Physics.Gravity,
		FrictionBase: cfg.Physics.FrictionBase,
		MinVelocity:  cfg.Physics.MinVelocity,
		MaxVelocity:  cfg.Physics.MaxVelocity,
	})
	if err != nil {
		return nil, logging.WrapError(err, "failed to create ball")
	}
	p.ball = ball

	if err := p.initFlippers(); err != nil {
		return nil, err
	}
	p.initBumpers()

	p.logger.Info(p.ctx, "playfield created",
		"width", cfg.Canvas.Width,
		"height", cfg.Canvas.Height,
		"bumpers", len(p.bumpers),
		"seed", cfg.Ball.Seed,
	)
	return p, nil
}

func toVector(p config.Point) physics.Vector2D {
	return physics.Vector2D{X: p.X, Y: p.Y}
}

// initFlippers creates the left and right flippers
func (p *Playfield) initFlippers() error {
	fc := p.Config.Flippers
	params := entity.FlipperParams{
		Length:       fc.Length,
		Height:       fc.Height,
		MinAngle:     fc.MinAngle,
		MaxAngle:     fc.MaxAngle,
		RiseDuration: fc.RiseDuration.Duration,
		FallDuration: fc.FallDuration.Duration,
		RiseEasing:   fc.RiseEasing,
		FallEasing:   fc.FallEasing,
		RayCastBoost: fc.RayCastBoost,
	}

	pivots := map[entity.Side]config.Point{
		entity.Left:  fc.LeftPivot,
		entity.Right: fc.RightPivot,
	}
	for _, side := range []entity.Side{entity.Left, entity.Right} {
		flipper, err := entity.NewFlipper(side, toVector(pivots[side]), params)
		if err != nil {
			return logging.WrapError(err, "failed to create %s flipper", side)
		}
		p.flippers = append(p.flippers, flipper)
	}
	return nil
}

// initBumpers creates the bumpers from the configuration
func (p *Playfield) initBumpers() {
	for _, pos := range p.Config.Bumpers.Positions {
		p.bumpers = append(p.bumpers, entity.NewBumper(toVector(pos), p.Config.Bumpers.Radius))
	}
}

// launchVelocity returns the ball's initial velocity
func (p *Playfield) launchVelocity() physics.Vector2D {
	bc := p.Config.Ball
	if !bc.RandomVelocity {
		return toVector(bc.Velocity)
	}
	span := bc.VelocityMax - bc.VelocityMin
	return physics.Vector2D{
		X: bc.VelocityMin + p.rng.Float64()*span,
		Y: bc.VelocityMin + p.rng.Float64()*span,
	}
}

// Step advances the simulation by dt seconds. The ball moves, the flippers
// animate, then bounds, flippers and bumpers are checked in that order. The
// first collision found ends the tick's checks and is returned.
func (p *Playfield) Step(dt float64) (Collision, bool) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return Collision{}, false
	}

	p.EntityLock.Lock()
	var pending []event.Event
	collision, hit := p.step(dt, &pending)
	p.EntityLock.Unlock()

	// handlers may read the playfield, so publish outside the lock
	for _, e := range pending {
		p.EventBus.Publish(e)
	}
	return collision, hit
}

func (p *Playfield) step(dt float64, pending *[]event.Event) (Collision, bool) {
	p.CurrentTick++

	p.ball.Move(dt)
	p.updateFlippers(dt, pending)

	collision, hit := p.detectCollision()
	if !hit {
		return Collision{}, false
	}

	collision.Tick = p.CurrentTick
	p.lastCollision = &collision

	e := event.NewCollisionEvent(collision.Kind.EventType(), p, p.CurrentTick, collision.Index, p.ball.Position, p.ball.Velocity)
	e.RayCast = collision.RayCast
	*pending = append(*pending, e)

	p.logger.Debug(p.ctx, "ball collision",
		"kind", collision.Kind.String(),
		"index", collision.Index,
		"ray_cast", collision.RayCast,
		"tick", p.CurrentTick,
	)
	return collision, true
}

// updateFlippers animates every flipper and reports phase changes
func (p *Playfield) updateFlippers(dt float64, pending *[]event.Event) {
	for _, f := range p.flippers {
		before := f.Phase()
		f.UpdateAngle(dt)
		if after := f.Phase(); after != before {
			*pending = append(*pending, event.NewFlipperEvent(event.FlipperStateChanged, p, p.CurrentTick, f.Side.String(), after.String()))
			p.logger.Debug(p.ctx, "flipper state changed",
				"side", f.Side.String(),
				"from", before.String(),
				"to", after.String(),
			)
		}
	}
}

// detectCollision runs the checks in order and stops at the first hit
func (p *Playfield) detectCollision() (Collision, bool) {
	if p.ball.CheckBounds(p.Config.Canvas.Width, p.Config.Canvas.Height) {
		return Collision{Kind: CollisionBounds, Index: -1}, true
	}

	for i, f := range p.flippers {
		if f.HandleCollision(p.ball) {
			return Collision{Kind: CollisionFlipper, Index: i}, true
		}
		if f.HandleRayCast(p.ball) {
			return Collision{Kind: CollisionFlipper, Index: i, RayCast: true}, true
		}
	}

	for i, b := range p.bumpers {
		if b.HandleCollision(p.ball, p.Config.Physics.BumperFriction) {
			return Collision{Kind: CollisionBumper, Index: i}, true
		}
	}

	return Collision{}, false
}

// ActivateFlipper starts the rise animation of the flipper on side.
// Activating a flipper that is already moving does nothing.
func (p *Playfield) ActivateFlipper(side entity.Side) error {
	p.EntityLock.Lock()
	flipper := p.flipper(side)
	if flipper == nil {
		p.EntityLock.Unlock()
		return fmt.Errorf("%w: %v", ErrUnknownFlipper, side)
	}
	started := flipper.Activate()
	tick := p.CurrentTick
	p.EntityLock.Unlock()

	if !started {
		return nil
	}

	p.logger.Debug(p.ctx, "flipper activated", "side", side.String(), "tick", tick)
	p.EventBus.Publish(event.NewFlipperEvent(event.FlipperActivated, p, tick, side.String(), entity.Rising.String()))
	return nil
}

func (p *Playfield) flipper(side entity.Side) *entity.Flipper {
	for _, f := range p.flippers {
		if f.Side == side {
			return f
		}
	}
	return nil
}

// Reset puts the ball back at its start and the flippers at rest
func (p *Playfield) Reset() {
	p.EntityLock.Lock()
	p.ball.Place(toVector(p.Config.Ball.Start), p.launchVelocity())
	for _, f := range p.flippers {
		f.Reset()
	}
	p.CurrentTick = 0
	p.lastCollision = nil
	velocity := p.ball.Velocity
	p.EntityLock.Unlock()

	p.logger.Info(p.ctx, "playfield reset", "vx", velocity.X, "vy", velocity.Y)
	p.EventBus.Publish(event.NewResetEvent(p))
}

// Ball returns the ball. Callers must not mutate it while Step may run.
func (p *Playfield) Ball() *entity.Ball {
	return p.ball
}

// Flippers returns the flippers, left first
func (p *Playfield) Flippers() []*entity.Flipper {
	return p.flippers
}

// Bumpers returns the bumpers in configuration order
func (p *Playfield) Bumpers() []*entity.Bumper {
	return p.bumpers
}

// Context returns the session context carrying the playfield's session id
func (p *Playfield) Context() context.Context {
	return p.ctx
}
