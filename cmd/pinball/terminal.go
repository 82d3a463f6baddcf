package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-pinball/pkg/engine"
	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/logging"
	"github.com/opd-ai/go-pinball/pkg/render"
)

// statusLine summarizes a snapshot for the terminal's top row
func statusLine(state *engine.PlayfieldState) string {
	status := fmt.Sprintf("tick %d  [z] left  [/] right  [r] reset  [q] quit", state.Tick)
	if c := state.LastCollision; c != nil {
		status += fmt.Sprintf("  | %s #%d", c.Kind, c.Index)
		if c.RayCast {
			status += " catch"
		}
	}
	return status
}

func runTerminal(ctx context.Context, playfield *engine.Playfield, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	cfg := playfield.Config
	renderer := render.NewTerminalRenderer(screen, cfg.Canvas.Width, cfg.Canvas.Height, logger)
	return drive(ctx, playfield, renderer, logger)
}

// drive runs the simulation in the background and applies terminal
// commands until the player quits or ctx ends
func drive(ctx context.Context, playfield *engine.Playfield, renderer *render.TerminalRenderer, logger *logging.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg := playfield.Config
	clock := engine.NewFrameClock(cfg.Host.MaxFrameDelta.Duration)
	tick := time.Second / time.Duration(cfg.Host.TickRate)

	done := make(chan error, 1)
	go func() {
		done <- playfield.Run(ctx, clock, tick, func(state *engine.PlayfieldState) {
			renderer.SetStatus(statusLine(state))
			state.Render(renderer)
		})
	}()

	commands := renderer.Listen(ctx)
	for {
		select {
		case err := <-done:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			switch cmd {
			case render.CommandLeftFlipper:
				activate(playfield, logger, entity.Left)
			case render.CommandRightFlipper:
				activate(playfield, logger, entity.Right)
			case render.CommandReset:
				playfield.Reset()
			case render.CommandQuit:
				logger.Info(playfield.Context(), "quit requested")
				cancel()
			}
		}
	}
}

func activate(playfield *engine.Playfield, logger *logging.Logger, side entity.Side) {
	if err := playfield.ActivateFlipper(side); err != nil {
		logger.Error(playfield.Context(), "flipper activation failed", err, "side", side.String())
	}
}
