// pkg/physics/collision.go
package physics

import "github.com/golang/geo/r2"

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided     bool
	Normal       Vector2D
	Penetration  float64
	ContactPoint Vector2D
}

// CheckCollision performs detailed collision detection between two circles.
// Normal points from a towards b; concentric circles use +Y.
func CheckCollision(a, b Circle) CollisionResult {
	// Vector from A to B
	normal := b.Center.Sub(a.Center)
	distance := normal.Length()

	// No collision
	if distance >= a.Radius+b.Radius {
		return CollisionResult{Collided: false}
	}

	// Get penetration depth
	penetration := a.Radius + b.Radius - distance

	if distance == 0 {
		normal = Vector2D{X: 0, Y: 1}
	} else {
		normal = normal.Normalize()
	}
	contactPoint := a.Center.Add(normal.Scale(a.Radius))

	return CollisionResult{
		Collided:     true,
		Normal:       normal,
		Penetration:  penetration,
		ContactPoint: contactPoint,
	}
}

// Bounds is an axis-aligned rectangle
type Bounds struct {
	r2.Rect
}

// NewBounds returns the smallest rectangle containing all points
func NewBounds(points ...Vector2D) Bounds {
	pts := make([]r2.Point, len(points))
	for i, p := range points {
		pts[i] = r2.Point{X: p.X, Y: p.Y}
	}
	return Bounds{r2.RectFromPoints(pts...)}
}

// Contains reports whether p lies inside or on the rectangle
func (b Bounds) Contains(p Vector2D) bool {
	if p.IsNaN() {
		return false
	}
	return b.ContainsPoint(r2.Point{X: p.X, Y: p.Y})
}

// Expanded grows the rectangle by margin on every side
func (b Bounds) Expanded(margin float64) Bounds {
	return Bounds{b.ExpandedByMargin(margin)}
}

// Min returns the lower-left corner
func (b Bounds) Min() Vector2D {
	lo := b.Lo()
	return Vector2D{X: lo.X, Y: lo.Y}
}

// Max returns the upper-right corner
func (b Bounds) Max() Vector2D {
	hi := b.Hi()
	return Vector2D{X: hi.X, Y: hi.Y}
}
