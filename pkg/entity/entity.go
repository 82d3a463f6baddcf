// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-pinball/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all playfield objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	Render(r Renderer)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

var nextID atomic.Uint64

// GenerateID returns a new unique entity ID
func GenerateID() ID {
	return ID(nextID.Add(1))
}
