// pkg/physics/vector.go
package physics

import (
	"errors"
	"math"
)

// ErrZeroVector is the panic value raised when a zero-length vector is
// normalized or rescaled. Callers only rescale axes derived from non-degenerate
// geometry, so reaching it is a programming error.
var ErrZeroVector = errors.New("physics: zero-length vector has no direction")

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

// NaNVector is the point returned when no meaningful position exists,
// e.g. the intersection of two parallel lines.
var NaNVector = Vector2D{X: math.NaN(), Y: math.NaN()}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Neg returns the vector pointing the opposite way
func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// It panics with ErrZeroVector for the zero vector.
func (v Vector2D) Normalize() Vector2D {
	return v.WithLength(1)
}

// WithLength returns a vector in the same direction with the given length.
// It panics with ErrZeroVector for the zero vector.
func (v Vector2D) WithLength(length float64) Vector2D {
	current := v.Length()
	if current == 0 {
		panic(ErrZeroVector)
	}
	return v.Scale(length / current)
}

// SetLength rescales the vector in place.
func (v *Vector2D) SetLength(length float64) {
	*v = v.WithLength(length)
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Distance returns the distance between two points
func Distance(a, b Vector2D) float64 {
	return b.Sub(a).Length()
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Slope returns dy/dx, infinite for vertical vectors
func (v Vector2D) Slope() float64 {
	return v.Y / v.X
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Rotate rotates the vector counter-clockwise by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	return RotationMatrix(angle).TimesVector(v)
}

// Perp returns the vector rotated by +90 degrees
func (v Vector2D) Perp() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// RotateAround rotates the point around center by angle
func (v Vector2D) RotateAround(center Vector2D, angle float64) Vector2D {
	return center.Add(v.Sub(center).Rotate(angle))
}

// ProjectOnto returns the coordinates of v in the basis (xAxis, yAxis).
// ok is false when the axes are parallel.
func (v Vector2D) ProjectOnto(xAxis, yAxis Vector2D) (px, py float64, ok bool) {
	inverse, ok := Matrix2D{C1: xAxis, C2: yAxis}.Inverse()
	if !ok {
		return 0, 0, false
	}
	projected := inverse.TimesVector(v)
	return projected.X, projected.Y, true
}

// IsNaN reports whether either component is NaN
func (v Vector2D) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
