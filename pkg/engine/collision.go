package engine

import (
	"fmt"

	"github.com/opd-ai/go-pinball/pkg/event"
)

// CollisionKind identifies what the ball hit
type CollisionKind int

const (
	CollisionBounds CollisionKind = iota
	CollisionFlipper
	CollisionBumper
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionBounds:
		return "bounds"
	case CollisionFlipper:
		return "flipper"
	case CollisionBumper:
		return "bumper"
	default:
		return fmt.Sprintf("CollisionKind(%d)", int(k))
	}
}

// EventType maps the kind to the event published for it
func (k CollisionKind) EventType() event.Type {
	switch k {
	case CollisionFlipper:
		return event.BallFlipperHit
	case CollisionBumper:
		return event.BallBumperHit
	default:
		return event.BallBoundsHit
	}
}

// Collision records the single collision resolved during a tick
type Collision struct {
	Kind CollisionKind
	// Index into Flippers() or Bumpers(); -1 for the canvas bounds
	Index   int
	RayCast bool
	Tick    uint64
}
