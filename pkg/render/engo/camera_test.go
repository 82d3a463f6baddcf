package engo

import (
	"math"
	"testing"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/physics"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera(500, 600)

	if c.Scale() != 1 {
		t.Errorf("Scale() = %v, expected 1", c.Scale())
	}
	if c.minZoom >= c.maxZoom {
		t.Errorf("zoom limits %v..%v are inverted", c.minZoom, c.maxZoom)
	}
}

func TestCamera_Fit(t *testing.T) {
	tests := []struct {
		name           string
		screenW        float64
		screenH        float64
		expectedScale  float64
		expectedOffset physics.Vector2D
	}{
		{"exact", 500, 600, 1, physics.Vector2D{}},
		{"wide window", 1000, 600, 1, physics.Vector2D{X: 250}},
		{"half size", 250, 300, 0.5, physics.Vector2D{}},
		{"tall window", 500, 1200, 1, physics.Vector2D{Y: 300}},
		{"tiny window clamps", 10, 10, 0.1, physics.Vector2D{X: -20, Y: -25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(500, 600)
			c.Fit(tt.screenW, tt.screenH)

			if !almostEqual(c.Scale(), tt.expectedScale) {
				t.Errorf("Scale() = %v, expected %v", c.Scale(), tt.expectedScale)
			}
			if !almostEqual(c.offset.X, tt.expectedOffset.X) || !almostEqual(c.offset.Y, tt.expectedOffset.Y) {
				t.Errorf("offset = %v, expected %v", c.offset, tt.expectedOffset)
			}
		})
	}
}

func TestCamera_FitIgnoresEmptyScreen(t *testing.T) {
	c := NewCamera(500, 600)
	c.Fit(0, 600)

	if c.Scale() != 1 {
		t.Errorf("Scale() = %v after Fit(0, 600), expected 1", c.Scale())
	}
}

func TestCamera_WorldToScreen(t *testing.T) {
	c := NewCamera(500, 600)

	tests := []struct {
		name     string
		world    physics.Vector2D
		expected engo.Point
	}{
		{"origin is bottom left", physics.Vector2D{}, engo.Point{X: 0, Y: 600}},
		{"top right", physics.Vector2D{X: 500, Y: 600}, engo.Point{X: 500, Y: 0}},
		{"ball start", physics.Vector2D{X: 250, Y: 500}, engo.Point{X: 250, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.WorldToScreen(tt.world); got != tt.expected {
				t.Errorf("WorldToScreen(%v) = %v, expected %v", tt.world, got, tt.expected)
			}
		})
	}
}

func TestCamera_CoordinateTransformation_Consistency(t *testing.T) {
	c := NewCamera(500, 600)
	c.Fit(800, 700)

	points := []physics.Vector2D{
		{X: 0, Y: 0},
		{X: 125, Y: 120},
		{X: 375.5, Y: 450.25},
		{X: 500, Y: 600},
	}
	for _, p := range points {
		back := c.ScreenToWorld(c.WorldToScreen(p))
		if !almostEqual(back.X, p.X) || !almostEqual(back.Y, p.Y) {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestCamera_CircleSpace(t *testing.T) {
	c := NewCamera(500, 600)

	space := c.CircleSpace(physics.Vector2D{X: 250, Y: 450}, 20)

	if space.Position != (engo.Point{X: 230, Y: 130}) {
		t.Errorf("Position = %v, expected (230, 130)", space.Position)
	}
	if space.Width != 40 || space.Height != 40 {
		t.Errorf("size = %vx%v, expected 40x40", space.Width, space.Height)
	}
}

func TestCamera_FlipperSpace(t *testing.T) {
	c := NewCamera(500, 600)

	rest := entity.FlipperState{
		Side:  entity.Left,
		Angle: 0,
		Vertices: []physics.Vector2D{
			{X: 125, Y: 115}, {X: 125, Y: 125}, {X: 225, Y: 125}, {X: 225, Y: 115},
		},
	}
	space, ok := c.FlipperSpace(rest)
	if !ok {
		t.Fatal("FlipperSpace() rejected a four-vertex flipper")
	}
	if space.Position != (engo.Point{X: 125, Y: 475}) {
		t.Errorf("Position = %v, expected (125, 475)", space.Position)
	}
	if space.Width != 100 || space.Height != 10 {
		t.Errorf("size = %vx%v, expected 100x10", space.Width, space.Height)
	}
	if space.Rotation != 0 {
		t.Errorf("Rotation = %v, expected 0", space.Rotation)
	}

	raised := rest
	raised.Angle = math.Pi / 4
	space, _ = c.FlipperSpace(raised)
	if !almostEqual(float64(space.Rotation), -45) {
		t.Errorf("Rotation = %v, expected -45", space.Rotation)
	}

	if _, ok := c.FlipperSpace(entity.FlipperState{}); ok {
		t.Error("FlipperSpace() accepted a flipper without vertices")
	}
}
