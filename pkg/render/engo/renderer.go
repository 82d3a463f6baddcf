// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pinball/pkg/entity"
)

// ShapeSystem is the part of common.RenderSystem the renderer needs
type ShapeSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// shape is one ECS entity per playfield entity
type shape struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer on top of an engo render system.
// Shapes are created on first sight and removed when a frame no longer
// mentions them.
type EngoRenderer struct {
	system ShapeSystem
	camera *Camera
	assets *AssetManager

	shapes map[entity.ID]*shape
	seen   map[entity.ID]bool
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(system ShapeSystem, camera *Camera, assets *AssetManager) *EngoRenderer {
	return &EngoRenderer{
		system: system,
		camera: camera,
		assets: assets,
		shapes: make(map[entity.ID]*shape),
		seen:   make(map[entity.ID]bool),
	}
}

// getOrCreate returns the shape for id, adding it to the system when new
func (r *EngoRenderer) getOrCreate(id entity.ID, asset string) *shape {
	r.seen[id] = true
	if s, exists := r.shapes[id]; exists {
		return s
	}

	s := &shape{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{
		Drawable: r.assets.Drawable(asset),
		Color:    r.assets.Color(asset),
		Scale:    engo.Point{X: 1, Y: 1},
	}
	r.shapes[id] = s
	r.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// RenderBall implements entity.Renderer
func (r *EngoRenderer) RenderBall(ball entity.BallState) {
	s := r.getOrCreate(ball.ID, BallAsset)
	s.SpaceComponent = r.camera.CircleSpace(ball.Position, ball.Radius)
}

// RenderBumper implements entity.Renderer
func (r *EngoRenderer) RenderBumper(bumper entity.BumperState) {
	s := r.getOrCreate(bumper.ID, BumperAsset)
	s.SpaceComponent = r.camera.CircleSpace(bumper.Position, bumper.Radius)
}

// RenderFlipper implements entity.Renderer
func (r *EngoRenderer) RenderFlipper(flipper entity.FlipperState) {
	space, ok := r.camera.FlipperSpace(flipper)
	if !ok {
		return
	}
	s := r.getOrCreate(flipper.ID, FlipperAsset)
	s.SpaceComponent = space
	s.Color = r.assets.FlipperColor(flipper.Phase)
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for id := range r.seen {
		delete(r.seen, id)
	}
}

// Present implements entity.Renderer. The render system draws on its own
// schedule; shapes missing from this frame are dropped here.
func (r *EngoRenderer) Present() {
	for id, s := range r.shapes {
		if !r.seen[id] {
			r.system.Remove(s.BasicEntity)
			delete(r.shapes, id)
		}
	}
}

// ShapeCount returns the number of live shapes
func (r *EngoRenderer) ShapeCount() int {
	return len(r.shapes)
}

// ShapeColor returns the current color of the shape drawn for id
func (r *EngoRenderer) ShapeColor(id entity.ID) (color.Color, bool) {
	s, ok := r.shapes[id]
	if !ok {
		return nil, false
	}
	return s.Color, true
}

// ShapeSpace returns the current screen box of the shape drawn for id
func (r *EngoRenderer) ShapeSpace(id entity.ID) (common.SpaceComponent, bool) {
	s, ok := r.shapes[id]
	if !ok {
		return common.SpaceComponent{}, false
	}
	return s.SpaceComponent, true
}
