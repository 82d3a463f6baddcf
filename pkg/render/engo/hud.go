// pkg/render/engo/hud.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-pinball/pkg/event"
)

const hudFontURL = "hud/goregular.ttf"

// HUDSystem counts collisions published on the event bus and shows them
// with the current tick in the top-left corner
type HUDSystem struct {
	tick      uint64
	hits      map[event.Type]int
	lastHit   string
	rayCasts  int
	resets    int
	subs      []*event.Subscription
	textColor color.Color

	font *common.Font
	text *shape
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{
		hits:      make(map[event.Type]int),
		textColor: color.RGBA{255, 255, 255, 255},
	}
}

// Subscribe starts counting collisions and resets published on bus
func (hud *HUDSystem) Subscribe(bus *event.Bus) {
	for _, t := range []event.Type{event.BallBoundsHit, event.BallFlipperHit, event.BallBumperHit} {
		hud.subs = append(hud.subs, bus.Subscribe(t, hud.onCollision))
	}
	hud.subs = append(hud.subs, bus.Subscribe(event.PlayfieldReset, hud.onReset))
}

// Unsubscribe stops listening to the bus
func (hud *HUDSystem) Unsubscribe() {
	for _, s := range hud.subs {
		s.Cancel()
	}
	hud.subs = nil
}

func (hud *HUDSystem) onCollision(e event.Event) {
	hud.hits[e.GetType()]++
	hud.lastHit = string(e.GetType())
	if c, ok := e.(*event.CollisionEvent); ok && c.RayCast {
		hud.rayCasts++
	}
}

func (hud *HUDSystem) onReset(event.Event) {
	for k := range hud.hits {
		delete(hud.hits, k)
	}
	hud.lastHit = ""
	hud.rayCasts = 0
	hud.resets++
}

// SetTick records the tick shown on the next update
func (hud *HUDSystem) SetTick(tick uint64) {
	hud.tick = tick
}

// Hits returns how many collisions of type t were seen since the last reset
func (hud *HUDSystem) Hits(t event.Type) int {
	return hud.hits[t]
}

// Status returns the HUD text
func (hud *HUDSystem) Status() string {
	status := fmt.Sprintf("tick %d  walls %d  flippers %d (catch %d)  bumpers %d  resets %d",
		hud.tick,
		hud.hits[event.BallBoundsHit],
		hud.hits[event.BallFlipperHit],
		hud.rayCasts,
		hud.hits[event.BallBumperHit],
		hud.resets,
	)
	if hud.lastHit != "" {
		status += "  last " + hud.lastHit
	}
	return status
}

// LoadFont registers the bundled Go font and adds the text entity to
// system. Without a font the HUD keeps counting but draws nothing.
func (hud *HUDSystem) LoadFont(system ShapeSystem) error {
	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load hud font: %w", err)
	}
	font := &common.Font{URL: hudFontURL, FG: hud.textColor, Size: 14}
	if err := font.CreatePreloaded(); err != nil {
		return fmt.Errorf("failed to create hud font: %w", err)
	}
	hud.font = font

	hud.text = &shape{BasicEntity: ecs.NewBasic()}
	hud.text.RenderComponent = common.RenderComponent{
		Drawable: common.Text{Font: font, Text: hud.Status()},
		Color:    hud.textColor,
		Scale:    engo.Point{X: 1, Y: 1},
	}
	hud.text.SpaceComponent = common.SpaceComponent{Position: engo.Point{X: 8, Y: 8}}
	system.Add(&hud.text.BasicEntity, &hud.text.RenderComponent, &hud.text.SpaceComponent)
	return nil
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Update refreshes the HUD text
func (hud *HUDSystem) Update(dt float32) {
	if hud.text == nil {
		return
	}
	hud.text.Drawable = common.Text{Font: hud.font, Text: hud.Status()}
}
