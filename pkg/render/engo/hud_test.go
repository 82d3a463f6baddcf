package engo

import (
	"strings"
	"testing"

	"github.com/opd-ai/go-pinball/pkg/event"
	"github.com/opd-ai/go-pinball/pkg/physics"
)

func TestHUDSystem_CountsCollisions(t *testing.T) {
	bus := event.NewEventBus()
	hud := NewHUDSystem()
	hud.Subscribe(bus)

	bus.Publish(event.NewCollisionEvent(event.BallBoundsHit, nil, 1, -1, physics.Vector2D{}, physics.Vector2D{}))
	bus.Publish(event.NewCollisionEvent(event.BallBumperHit, nil, 2, 0, physics.Vector2D{}, physics.Vector2D{}))
	catch := event.NewCollisionEvent(event.BallFlipperHit, nil, 3, 1, physics.Vector2D{}, physics.Vector2D{})
	catch.RayCast = true
	bus.Publish(catch)
	hud.SetTick(3)

	if hud.Hits(event.BallBoundsHit) != 1 || hud.Hits(event.BallBumperHit) != 1 || hud.Hits(event.BallFlipperHit) != 1 {
		t.Errorf("unexpected hit counts: %v", hud.hits)
	}

	status := hud.Status()
	for _, want := range []string{"tick 3", "walls 1", "flippers 1 (catch 1)", "bumpers 1", "last ball_flipper_hit"} {
		if !strings.Contains(status, want) {
			t.Errorf("Status() = %q, expected it to contain %q", status, want)
		}
	}
}

func TestHUDSystem_ResetClearsCounts(t *testing.T) {
	bus := event.NewEventBus()
	hud := NewHUDSystem()
	hud.Subscribe(bus)

	bus.Publish(event.NewCollisionEvent(event.BallBumperHit, nil, 1, 0, physics.Vector2D{}, physics.Vector2D{}))
	bus.Publish(event.NewResetEvent(nil))

	if hud.Hits(event.BallBumperHit) != 0 {
		t.Errorf("bumper hits = %d after reset, expected 0", hud.Hits(event.BallBumperHit))
	}
	if !strings.Contains(hud.Status(), "resets 1") || strings.Contains(hud.Status(), "last") {
		t.Errorf("Status() = %q after reset", hud.Status())
	}
}

func TestHUDSystem_Unsubscribe(t *testing.T) {
	bus := event.NewEventBus()
	hud := NewHUDSystem()
	hud.Subscribe(bus)
	hud.Unsubscribe()

	bus.Publish(event.NewCollisionEvent(event.BallBoundsHit, nil, 1, -1, physics.Vector2D{}, physics.Vector2D{}))

	if hud.Hits(event.BallBoundsHit) != 0 {
		t.Error("HUD still counting after Unsubscribe")
	}
}

func TestHUDSystem_UpdateWithoutFont(t *testing.T) {
	hud := NewHUDSystem()

	// Must not panic when no text entity exists
	hud.Update(1.0 / 60)
}
