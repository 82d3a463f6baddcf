// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: false, // Distance equals sum of radii, collision logic uses <
		},
		{
			name:     "bumper_and_ball",
			circle1:  Circle{Center: Vector2D{X: 250, Y: 450}, Radius: 20},
			circle2:  Circle{Center: Vector2D{X: 250, Y: 470}, Radius: 8},
			expected: true,
		},
		{
			name:     "circles_not_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "circles_same_position",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			circle2:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 2},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.circle1.Collides(tt.circle2)
			if result != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestCheckCollision(t *testing.T) {
	t.Run("no_collision", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
		)
		if result.Collided {
			t.Error("Expected no collision for touching circles")
		}
	})

	t.Run("collision_with_penetration", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 250, Y: 450}, Radius: 20},
			Circle{Center: Vector2D{X: 250, Y: 470}, Radius: 8},
		)
		if !result.Collided {
			t.Fatal("Expected collision, but got no collision")
		}
		if result.Penetration != 8 {
			t.Errorf("Expected penetration 8, got %v", result.Penetration)
		}
		if result.Normal != (Vector2D{X: 0, Y: 1}) {
			t.Errorf("Expected normal (0, 1), got %v", result.Normal)
		}
		if result.ContactPoint != (Vector2D{X: 250, Y: 470}) {
			t.Errorf("Expected contact point (250, 470), got %v", result.ContactPoint)
		}
	})

	t.Run("concentric_circles", func(t *testing.T) {
		result := CheckCollision(
			Circle{Center: Vector2D{X: 1, Y: 1}, Radius: 3},
			Circle{Center: Vector2D{X: 1, Y: 1}, Radius: 2},
		)
		if !result.Collided || result.Normal != (Vector2D{X: 0, Y: 1}) {
			t.Errorf("Expected collision along +Y, got %+v", result)
		}
		if result.Penetration != 5 {
			t.Errorf("Expected penetration 5, got %v", result.Penetration)
		}
	})
}

func TestBounds(t *testing.T) {
	b := NewBounds(Vector2D{X: 10, Y: 0}, Vector2D{X: 0, Y: 5})

	if b.Min() != (Vector2D{X: 0, Y: 0}) || b.Max() != (Vector2D{X: 10, Y: 5}) {
		t.Errorf("corners = %v..%v, expected (0,0)..(10,5)", b.Min(), b.Max())
	}

	tests := []struct {
		name     string
		point    Vector2D
		expected bool
	}{
		{"inside", Vector2D{X: 5, Y: 2}, true},
		{"on_edge", Vector2D{X: 10, Y: 5}, true},
		{"outside", Vector2D{X: 11, Y: 2}, false},
		{"nan", NaNVector, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := b.Contains(tt.point); result != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.point, result, tt.expected)
			}
		})
	}

	if !b.Expanded(2).Contains(Vector2D{X: 11, Y: -1}) {
		t.Error("Expanded(2) should contain (11, -1)")
	}
}
