package engo

import (
	"math"
	"testing"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pinball/pkg/config"
	"github.com/opd-ai/go-pinball/pkg/engine"
	"github.com/opd-ai/go-pinball/pkg/event"
)

const epsilon = 1e-4

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// fakeShapeSystem records what the renderer adds and removes
type fakeShapeSystem struct {
	added   map[uint64]*common.SpaceComponent
	removed []uint64
}

func newFakeShapeSystem() *fakeShapeSystem {
	return &fakeShapeSystem{added: make(map[uint64]*common.SpaceComponent)}
}

func (f *fakeShapeSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	f.added[basic.ID()] = space
}

func (f *fakeShapeSystem) Remove(basic ecs.BasicEntity) {
	f.removed = append(f.removed, basic.ID())
	delete(f.added, basic.ID())
}

func newTestPlayfield(t *testing.T) *engine.Playfield {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Ball.RandomVelocity = false
	cfg.Ball.Velocity = config.Point{X: 0, Y: 0}
	p, err := engine.NewPlayfield(cfg, event.NewEventBus(), nil)
	if err != nil {
		t.Fatalf("NewPlayfield() failed: %v", err)
	}
	return p
}

func newTestRenderer() (*EngoRenderer, *fakeShapeSystem) {
	system := newFakeShapeSystem()
	assets := NewAssetManager()
	if err := assets.LoadAssets(); err != nil {
		panic(err)
	}
	return NewEngoRenderer(system, NewCamera(500, 600), assets), system
}
