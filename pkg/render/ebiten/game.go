package ebiten

import (
	"context"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-pinball/pkg/engine"
	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/logging"
)

// KeySource reports key edges; the default reads inpututil
type KeySource interface {
	JustPressed(key ebiten.Key) bool
}

type inputKeys struct{}

func (inputKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyZ}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeySlash}
	resetKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Game adapts a playfield to ebiten.Game. Each Update advances the table by
// one tick of the configured rate.
type Game struct {
	playfield *engine.Playfield
	renderer  *Renderer
	keys      KeySource
	logger    *logging.Logger
	ctx       context.Context

	dt     float64
	width  int
	height int
	state  *engine.PlayfieldState
}

// NewGame creates the ebiten adapter for playfield
func NewGame(playfield *engine.Playfield, logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := playfield.Config
	dt := 1 / float64(cfg.Host.TickRate)
	if limit := cfg.Host.MaxFrameDelta.Seconds(); limit > 0 {
		dt = math.Min(dt, limit)
	}
	return &Game{
		playfield: playfield,
		renderer:  NewRenderer(cfg.Canvas.Height),
		keys:      inputKeys{},
		logger:    logger,
		ctx:       playfield.Context(),
		dt:        dt,
		width:     int(cfg.Canvas.Width),
		height:    int(cfg.Canvas.Height),
	}
}

func anyPressed(keys KeySource, candidates []ebiten.Key) bool {
	for _, k := range candidates {
		if keys.JustPressed(k) {
			return true
		}
	}
	return false
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if anyPressed(g.keys, quitKeys) {
		g.logger.Info(g.ctx, "quit requested")
		return ebiten.Termination
	}
	if anyPressed(g.keys, resetKeys) {
		g.playfield.Reset()
	}
	if anyPressed(g.keys, leftKeys) {
		if err := g.playfield.ActivateFlipper(entity.Left); err != nil {
			g.logger.Error(g.ctx, "flipper activation failed", err, "side", "left")
		}
	}
	if anyPressed(g.keys, rightKeys) {
		if err := g.playfield.ActivateFlipper(entity.Right); err != nil {
			g.logger.Error(g.ctx, "flipper activation failed", err, "side", "right")
		}
	}

	g.playfield.Step(g.dt)
	g.state = g.playfield.Snapshot()
	return nil
}

// Status returns the overlay text for the latest snapshot
func (g *Game) Status() string {
	if g.state == nil {
		return "waiting"
	}
	status := fmt.Sprintf("tick %d", g.state.Tick)
	if c := g.state.LastCollision; c != nil {
		status += fmt.Sprintf("  last %s #%d at tick %d", c.Kind, c.Index, c.Tick)
		if c.RayCast {
			status += " (catch)"
		}
	}
	return status
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	if g.state == nil {
		g.state = g.playfield.Snapshot()
	}
	g.renderer.SetTarget(screen)
	g.state.Render(g.renderer)
	ebitenutil.DebugPrint(screen, g.Status())
}

// Layout implements ebiten.Game; the table keeps its own size and ebiten
// scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and blocks until it is closed or the player quits
func Run(playfield *engine.Playfield, logger *logging.Logger) error {
	game := NewGame(playfield, logger)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("go-pinball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(playfield.Config.Host.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("ebiten host failed: %w", err)
	}
	return nil
}
