package main

import (
	"fmt"

	"github.com/opd-ai/go-pinball/pkg/engine"
	"github.com/opd-ai/go-pinball/pkg/event"
	"github.com/opd-ai/go-pinball/pkg/render"
)

// headlessSummary counts what happened during a headless run
type headlessSummary struct {
	Ticks      uint64
	Bounds     int
	Flippers   int
	Bumpers    int
	Frames     int
	FinalState *engine.PlayfieldState
}

func (s headlessSummary) String() string {
	b := s.FinalState.Ball
	return fmt.Sprintf("ticks=%d bounds=%d flippers=%d bumpers=%d frames=%d ball=(%.2f, %.2f) velocity=(%.2f, %.2f)",
		s.Ticks, s.Bounds, s.Flippers, s.Bumpers, s.Frames,
		b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
}

// runHeadless steps the table ticks times at the configured rate, rendering
// every frame into a NullRenderer
func runHeadless(playfield *engine.Playfield, ticks int) headlessSummary {
	var summary headlessSummary
	counters := map[event.Type]*int{
		event.BallBoundsHit:  &summary.Bounds,
		event.BallFlipperHit: &summary.Flippers,
		event.BallBumperHit:  &summary.Bumpers,
	}
	for t, counter := range counters {
		sub := playfield.EventBus.Subscribe(t, func(event.Event) { *counter++ })
		defer sub.Cancel()
	}

	renderer := render.NewNullRenderer(nil)
	dt := 1 / float64(playfield.Config.Host.TickRate)
	for i := 0; i < ticks; i++ {
		playfield.Step(dt)
		playfield.Snapshot().Render(renderer)
	}

	summary.FinalState = playfield.Snapshot()
	summary.Ticks = summary.FinalState.Tick
	summary.Frames = renderer.Frames
	return summary
}
