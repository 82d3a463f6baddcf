package engine

import "github.com/opd-ai/go-pinball/pkg/entity"

// PlayfieldState is an immutable snapshot of the table for renderers
type PlayfieldState struct {
	Tick          uint64
	Width         float64
	Height        float64
	Ball          entity.BallState
	Flippers      []entity.FlipperState
	Bumpers       []entity.BumperState
	LastCollision *Collision
}

// Snapshot returns a copy of the current playfield state
func (p *Playfield) Snapshot() *PlayfieldState {
	p.EntityLock.RLock()
	defer p.EntityLock.RUnlock()

	return p.createSnapshot()
}

func (p *Playfield) createSnapshot() *PlayfieldState {
	state := &PlayfieldState{
		Tick:     p.CurrentTick,
		Width:    p.Config.Canvas.Width,
		Height:   p.Config.Canvas.Height,
		Ball:     p.ball.State(),
		Flippers: make([]entity.FlipperState, 0, len(p.flippers)),
		Bumpers:  make([]entity.BumperState, 0, len(p.bumpers)),
	}
	for _, f := range p.flippers {
		state.Flippers = append(state.Flippers, f.State())
	}
	for _, b := range p.bumpers {
		state.Bumpers = append(state.Bumpers, b.State())
	}
	if p.lastCollision != nil {
		c := *p.lastCollision
		state.LastCollision = &c
	}
	return state
}

// Render draws a snapshot through r
func (s *PlayfieldState) Render(r entity.Renderer) {
	r.Clear()
	for _, b := range s.Bumpers {
		r.RenderBumper(b)
	}
	for _, f := range s.Flippers {
		r.RenderFlipper(f)
	}
	r.RenderBall(s.Ball)
	r.Present()
}
