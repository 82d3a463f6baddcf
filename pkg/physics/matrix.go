// pkg/physics/matrix.go
package physics

import "math"

// Matrix2D is a 2x2 matrix stored as two column vectors
type Matrix2D struct {
	C1 Vector2D
	C2 Vector2D
}

// RotationMatrix returns the counter-clockwise rotation matrix for angle
func RotationMatrix(angle float64) Matrix2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix2D{
		C1: Vector2D{X: cos, Y: sin},
		C2: Vector2D{X: -sin, Y: cos},
	}
}

// CollisionBasis builds an orthonormal basis whose y column is the given
// collision normal and whose x column is the normal rotated by -90 degrees.
func CollisionBasis(normal Vector2D) Matrix2D {
	y := normal.Normalize()
	return Matrix2D{
		C1: Vector2D{X: y.Y, Y: -y.X},
		C2: y,
	}
}

// Determinant returns the determinant of the matrix
func (m Matrix2D) Determinant() float64 {
	return m.C1.X*m.C2.Y - m.C1.Y*m.C2.X
}

// Adjugate returns the adjugate (classical adjoint) of the matrix
func (m Matrix2D) Adjugate() Matrix2D {
	return Matrix2D{
		C1: Vector2D{X: m.C2.Y, Y: -m.C1.Y},
		C2: Vector2D{X: -m.C2.X, Y: m.C1.X},
	}
}

// Scale multiplies every entry by factor
func (m Matrix2D) Scale(factor float64) Matrix2D {
	return Matrix2D{C1: m.C1.Scale(factor), C2: m.C2.Scale(factor)}
}

// Inverse returns adjugate / determinant. ok is false for singular matrices.
func (m Matrix2D) Inverse() (Matrix2D, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2D{}, false
	}
	return m.Adjugate().Scale(1 / det), true
}

// TimesVector returns m × v
func (m Matrix2D) TimesVector(v Vector2D) Vector2D {
	return Vector2D{
		X: m.C1.X*v.X + m.C2.X*v.Y,
		Y: m.C1.Y*v.X + m.C2.Y*v.Y,
	}
}

// ToLocal expresses v in this basis. The zero vector is returned for a
// singular basis.
func (m Matrix2D) ToLocal(v Vector2D) Vector2D {
	inverse, ok := m.Inverse()
	if !ok {
		return Vector2D{}
	}
	return inverse.TimesVector(v)
}

// Reflect mirrors v across the basis x axis, i.e. it negates the component
// along the y column.
func (m Matrix2D) Reflect(v Vector2D) Vector2D {
	local := m.ToLocal(v)
	local.Y = -local.Y
	return m.TimesVector(local)
}
