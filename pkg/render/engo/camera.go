// pkg/render/engo/camera.go
package engo

import (
	"math"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/physics"
)

// Camera maps the playfield onto the window. The table is scaled uniformly
// to fit and centered; world y points up while screen y points down.
type Camera struct {
	worldWidth  float64
	worldHeight float64

	scale   float64
	minZoom float64
	maxZoom float64
	offset  physics.Vector2D
}

// NewCamera creates a camera for a table of the given size at scale 1
func NewCamera(worldWidth, worldHeight float64) *Camera {
	return &Camera{
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		scale:       1,
		minZoom:     0.1,
		maxZoom:     4,
	}
}

// Fit scales the table to the largest size that fits the screen and
// centers it
func (c *Camera) Fit(screenWidth, screenHeight float64) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}
	c.scale = c.clampZoom(math.Min(screenWidth/c.worldWidth, screenHeight/c.worldHeight))
	c.offset = physics.Vector2D{
		X: (screenWidth - c.worldWidth*c.scale) / 2,
		Y: (screenHeight - c.worldHeight*c.scale) / 2,
	}
}

// Scale returns screen pixels per world unit
func (c *Camera) Scale() float64 {
	return c.scale
}

// clampZoom ensures the scale is within valid bounds
func (c *Camera) clampZoom(zoom float64) float64 {
	if zoom < c.minZoom {
		return c.minZoom
	}
	if zoom > c.maxZoom {
		return c.maxZoom
	}
	return zoom
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(c.offset.X + worldPos.X*c.scale),
		Y: float32(c.offset.Y + (c.worldHeight-worldPos.Y)*c.scale),
	}
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(screenPos engo.Point) physics.Vector2D {
	return physics.Vector2D{
		X: (float64(screenPos.X) - c.offset.X) / c.scale,
		Y: c.worldHeight - (float64(screenPos.Y)-c.offset.Y)/c.scale,
	}
}

// CircleSpace returns the screen box of a circle
func (c *Camera) CircleSpace(center physics.Vector2D, radius float64) common.SpaceComponent {
	size := float32(2 * radius * c.scale)
	return common.SpaceComponent{
		Position: c.WorldToScreen(physics.Vector2D{X: center.X - radius, Y: center.Y + radius}),
		Width:    size,
		Height:   size,
	}
}

// FlipperSpace returns the rotated screen box of a flipper. The box is
// anchored on the second vertex, whose edges run along the paddle and
// across it; engo rotates clockwise around the anchor in degrees.
func (c *Camera) FlipperSpace(flipper entity.FlipperState) (common.SpaceComponent, bool) {
	if len(flipper.Vertices) != 4 {
		return common.SpaceComponent{}, false
	}
	v0, v1, v2 := flipper.Vertices[0], flipper.Vertices[1], flipper.Vertices[2]
	return common.SpaceComponent{
		Position: c.WorldToScreen(v1),
		Width:    float32(v1.Distance(v2) * c.scale),
		Height:   float32(v0.Distance(v1) * c.scale),
		Rotation: float32(-flipper.Angle * 180 / math.Pi),
	}, true
}
