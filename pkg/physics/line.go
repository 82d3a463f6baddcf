// pkg/physics/line.go
package physics

import "math"

// parallelEpsilon bounds |cross(d1, d2)| below which lines count as parallel
const parallelEpsilon = 1e-12

// Line is an infinite straight line through Point along Direction
type Line struct {
	Point     Vector2D
	Direction Vector2D
}

// NewLine returns the line through a and b
func NewLine(a, b Vector2D) Line {
	return Line{Point: a, Direction: b.Sub(a)}
}

// YAt returns the y coordinate of the line at x, NaN for vertical lines
func (l Line) YAt(x float64) float64 {
	if l.Direction.X == 0 {
		return math.NaN()
	}
	return l.Point.Y + (x-l.Point.X)*l.Direction.Slope()
}

// XAt returns the x coordinate of the line at y, NaN for horizontal lines
func (l Line) XAt(y float64) float64 {
	if l.Direction.Y == 0 {
		return math.NaN()
	}
	return l.Point.X + (y-l.Point.Y)*l.Direction.X/l.Direction.Y
}

// Intersect returns the intersection of two lines. Parallel (or degenerate)
// lines yield NaNVector.
func Intersect(a, b Line) Vector2D {
	denom := a.Direction.Cross(b.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return NaNVector
	}
	t := b.Point.Sub(a.Point).Cross(b.Direction) / denom
	return a.Point.Add(a.Direction.Scale(t))
}
