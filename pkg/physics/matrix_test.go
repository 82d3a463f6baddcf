package physics

import (
	"math"
	"testing"
)

func TestRotationMatrix_Determinant(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 6, math.Pi / 2, -2.5} {
		m := RotationMatrix(angle)
		if !almostEqual(m.Determinant(), 1) {
			t.Errorf("RotationMatrix(%v).Determinant() = %v, expected 1", angle, m.Determinant())
		}
	}
}

func TestMatrix2D_Inverse(t *testing.T) {
	m := Matrix2D{C1: Vector2D{X: 2, Y: 1}, C2: Vector2D{X: 1, Y: 3}}
	inverse, ok := m.Inverse()
	if !ok {
		t.Fatal("Inverse() reported singular matrix")
	}

	v := Vector2D{X: 4, Y: -7}
	roundTrip := m.TimesVector(inverse.TimesVector(v))
	if !vectorsAlmostEqual(roundTrip, v) {
		t.Errorf("m × m⁻¹ × v = %v, expected %v", roundTrip, v)
	}
}

func TestMatrix2D_InverseSingular(t *testing.T) {
	m := Matrix2D{C1: Vector2D{X: 1, Y: 2}, C2: Vector2D{X: 2, Y: 4}}
	if _, ok := m.Inverse(); ok {
		t.Error("Inverse() of singular matrix should fail")
	}
	if result := m.ToLocal(Vector2D{X: 1, Y: 1}); result != (Vector2D{}) {
		t.Errorf("ToLocal() with singular basis = %v, expected zero", result)
	}
}

func TestMatrix2D_Adjugate(t *testing.T) {
	m := Matrix2D{C1: Vector2D{X: 1, Y: 3}, C2: Vector2D{X: 2, Y: 4}}
	adj := m.Adjugate()
	expected := Matrix2D{C1: Vector2D{X: 4, Y: -3}, C2: Vector2D{X: -2, Y: 1}}
	if adj != expected {
		t.Errorf("Adjugate() = %v, expected %v", adj, expected)
	}
}

func TestCollisionBasis(t *testing.T) {
	basis := CollisionBasis(Vector2D{X: 0, Y: 5})
	if !vectorsAlmostEqual(basis.C2, Vector2D{X: 0, Y: 1}) {
		t.Errorf("basis y = %v, expected (0, 1)", basis.C2)
	}
	if !vectorsAlmostEqual(basis.C1, Vector2D{X: 1, Y: 0}) {
		t.Errorf("basis x = %v, expected (1, 0)", basis.C1)
	}
	if !almostEqual(math.Abs(basis.Determinant()), 1) {
		t.Errorf("|Determinant()| = %v, expected 1", basis.Determinant())
	}
}

func TestMatrix2D_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		normal   Vector2D
		velocity Vector2D
		expected Vector2D
	}{
		{"floor", Vector2D{X: 0, Y: 1}, Vector2D{X: 3, Y: -4}, Vector2D{X: 3, Y: 4}},
		{"wall", Vector2D{X: -1, Y: 0}, Vector2D{X: 5, Y: 2}, Vector2D{X: -5, Y: 2}},
		{"diagonal", Vector2D{X: 1, Y: 1}, Vector2D{X: -1, Y: 0}, Vector2D{X: 0, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basis := CollisionBasis(tt.normal)
			result := basis.Reflect(tt.velocity)
			if !vectorsAlmostEqual(result, tt.expected) {
				t.Errorf("Reflect() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestMatrix2D_ReflectIsInvolution(t *testing.T) {
	basis := CollisionBasis(Vector2D{X: 0.3, Y: -0.7})
	v := Vector2D{X: 123.4, Y: -56.7}
	twice := basis.Reflect(basis.Reflect(v))
	if !vectorsAlmostEqual(twice, v) {
		t.Errorf("Reflect(Reflect(v)) = %v, expected %v", twice, v)
	}
}
