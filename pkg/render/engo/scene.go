// pkg/render/engo/scene.go
package engo

import (
	"context"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pinball/pkg/engine"
	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/logging"
)

// PlayfieldSystem steps the simulation once per engo frame and pushes the
// resulting snapshot through the renderer
type PlayfieldSystem struct {
	playfield *engine.Playfield
	renderer  entity.Renderer
	hud       *HUDSystem
	maxDelta  float64
}

// NewPlayfieldSystem creates the system driving playfield. Frame deltas
// longer than maxDelta seconds are cut down to it.
func NewPlayfieldSystem(playfield *engine.Playfield, renderer entity.Renderer, hud *HUDSystem, maxDelta float64) *PlayfieldSystem {
	return &PlayfieldSystem{
		playfield: playfield,
		renderer:  renderer,
		hud:       hud,
		maxDelta:  maxDelta,
	}
}

// Remove satisfies the ecs.System interface
func (s *PlayfieldSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the table by dt seconds and redraws it
func (s *PlayfieldSystem) Update(dt float32) {
	step := float64(dt)
	if s.maxDelta > 0 {
		step = math.Min(step, s.maxDelta)
	}
	s.playfield.Step(step)

	state := s.playfield.Snapshot()
	if s.hud != nil {
		s.hud.SetTick(state.Tick)
	}
	state.Render(s.renderer)
}

// PinballScene represents the table scene in Engo
type PinballScene struct {
	playfield *engine.Playfield
	logger    *logging.Logger
	ctx       context.Context

	// Rendering components
	assets   *AssetManager
	camera   *Camera
	renderer *EngoRenderer
	input    *InputSystem
	hud      *HUDSystem
}

// NewPinballScene creates a new scene for playfield
func NewPinballScene(playfield *engine.Playfield, logger *logging.Logger) *PinballScene {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := playfield.Config
	return &PinballScene{
		playfield: playfield,
		logger:    logger,
		ctx:       playfield.Context(),
		assets:    NewAssetManager(),
		camera:    NewCamera(cfg.Canvas.Width, cfg.Canvas.Height),
		hud:       NewHUDSystem(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *PinballScene) Type() string {
	return "PinballScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *PinballScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Error(scene.ctx, "failed to load assets", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *PinballScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	common.SetBackground(scene.assets.Background())
	scene.camera.Fit(float64(engo.GameWidth()), float64(engo.GameHeight()))

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)
	scene.renderer = NewEngoRenderer(renderSystem, scene.camera, scene.assets)

	SetupInputBindings()
	scene.input = NewInputSystem(scene.playfield, scene.logger)
	world.AddSystem(scene.input)

	scene.hud.Subscribe(scene.playfield.EventBus)
	if err := scene.hud.LoadFont(renderSystem); err != nil {
		scene.logger.Warn(scene.ctx, "hud text disabled", "error", err.Error())
	}
	world.AddSystem(scene.hud)

	maxDelta := scene.playfield.Config.Host.MaxFrameDelta.Seconds()
	world.AddSystem(NewPlayfieldSystem(scene.playfield, scene.renderer, scene.hud, maxDelta))

	scene.logger.Info(scene.ctx, "engo scene ready",
		"scale", scene.camera.Scale(),
		"width", engo.GameWidth(),
		"height", engo.GameHeight(),
	)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *PinballScene) Exit() {
	scene.hud.Unsubscribe()
	scene.logger.Info(scene.ctx, "engo scene closed")
}

// Run opens a window sized to the table and blocks until it is closed
func Run(playfield *engine.Playfield, logger *logging.Logger) {
	cfg := playfield.Config
	engo.Run(engo.RunOptions{
		Title:  "go-pinball",
		Width:  int(cfg.Canvas.Width),
		Height: int(cfg.Canvas.Height),
	}, NewPinballScene(playfield, logger))
}
