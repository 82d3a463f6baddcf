// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-pinball/pkg/physics"
)

// Type represents the type of event
type Type string

// Playfield event types
const (
	BallBoundsHit       Type = "ball_bounds_hit"
	BallFlipperHit      Type = "ball_flipper_hit"
	BallBumperHit       Type = "ball_bumper_hit"
	FlipperActivated    Type = "flipper_activated"
	FlipperStateChanged Type = "flipper_state_changed"
	PlayfieldReset      Type = "playfield_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
	Tick      uint64
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscription struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscription
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			// copy so a Publish iterating the old slice is unaffected
			remaining := make([]subscription, 0, len(subs)-1)
			remaining = append(remaining, subs[:i]...)
			b.handlers[eventType] = append(remaining, subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// CollisionEvent describes the collision that ended a tick's checks
type CollisionEvent struct {
	BaseEvent
	// Index of the flipper or bumper hit; -1 for the canvas bounds
	Index    int
	Position physics.Vector2D
	Velocity physics.Vector2D
	RayCast  bool
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(eventType Type, source interface{}, tick uint64, index int, position, velocity physics.Vector2D) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
			Tick:      tick,
		},
		Index:    index,
		Position: position,
		Velocity: velocity,
	}
}

// FlipperEvent contains information about flipper input and animation
type FlipperEvent struct {
	BaseEvent
	Side  string
	Phase string
}

// NewFlipperEvent creates a new flipper event
func NewFlipperEvent(eventType Type, source interface{}, tick uint64, side, phase string) *FlipperEvent {
	return &FlipperEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
			Tick:      tick,
		},
		Side:  side,
		Phase: phase,
	}
}

// NewResetEvent creates a playfield reset event
func NewResetEvent(source interface{}) *BaseEvent {
	return &BaseEvent{
		EventType: PlayfieldReset,
		Source:    source,
	}
}
