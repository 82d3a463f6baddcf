package entity

import (
	"testing"

	"github.com/opd-ai/go-pinball/pkg/physics"
)

func TestBumper_HandleCollision(t *testing.T) {
	bumper := NewBumper(physics.Vector2D{X: 250, Y: 450}, 20)
	ball := mustBall(physics.Vector2D{X: 250, Y: 470}, physics.Vector2D{X: 30, Y: -100})

	if !bumper.HandleCollision(ball, 0.6) {
		t.Fatal("HandleCollision() = false, expected true")
	}

	// radial axis is +Y: tangential 30*0.6, radial -100*-0.6
	if !vectorsAlmostEqual(ball.Velocity, physics.Vector2D{X: 18, Y: 60}) {
		t.Errorf("Velocity = %v, expected (18, 60)", ball.Velocity)
	}
	if !vectorsAlmostEqual(ball.Position, physics.Vector2D{X: 250, Y: 478}) {
		t.Errorf("Position = %v, expected (250, 478)", ball.Position)
	}
}

func TestBumper_HandleCollisionDiagonal(t *testing.T) {
	bumper := NewBumper(physics.Vector2D{X: 0, Y: 0}, 20)
	ball := mustBall(physics.Vector2D{X: 15, Y: 15}, physics.Vector2D{X: -100, Y: -100})

	if !bumper.HandleCollision(ball, 0.5) {
		t.Fatal("HandleCollision() = false, expected true")
	}

	// head-on: purely radial, reversed and halved
	if !vectorsAlmostEqual(ball.Velocity, physics.Vector2D{X: 50, Y: 50}) {
		t.Errorf("Velocity = %v, expected (50, 50)", ball.Velocity)
	}
	if !almostEqual(ball.Position.Length(), 28) {
		t.Errorf("distance after separation = %v, expected 28", ball.Position.Length())
	}
}

func TestBumper_NoCollision(t *testing.T) {
	bumper := NewBumper(physics.Vector2D{X: 250, Y: 450}, 20)

	tests := []struct {
		name     string
		position physics.Vector2D
	}{
		{"far", physics.Vector2D{X: 100, Y: 100}},
		{"touching", physics.Vector2D{X: 250, Y: 478}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			velocity := physics.Vector2D{X: 7, Y: -3}
			ball := mustBall(tt.position, velocity)
			if bumper.HandleCollision(ball, 0.6) {
				t.Error("HandleCollision() = true, expected false")
			}
			if ball.Velocity != velocity || ball.Position != tt.position {
				t.Error("ball modified without a collision")
			}
		})
	}
}

func TestBumper_ConcentricBall(t *testing.T) {
	bumper := NewBumper(physics.Vector2D{X: 100, Y: 100}, 20)
	ball := mustBall(physics.Vector2D{X: 100, Y: 100}, physics.Vector2D{X: 0, Y: -10})

	if !bumper.HandleCollision(ball, 1) {
		t.Fatal("HandleCollision() = false, expected true")
	}
	if ball.Velocity.IsNaN() || ball.Position.IsNaN() {
		t.Fatalf("NaN after concentric collision: %v %v", ball.Position, ball.Velocity)
	}
	if !vectorsAlmostEqual(ball.Position, physics.Vector2D{X: 100, Y: 128}) {
		t.Errorf("Position = %v, expected (100, 128)", ball.Position)
	}
}
