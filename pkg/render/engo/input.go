// pkg/render/engo/input.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/logging"
)

// Button names registered with engo.Input
const (
	ButtonLeftFlipper  = "leftFlipper"
	ButtonRightFlipper = "rightFlipper"
	ButtonReset        = "reset"
	ButtonQuit         = "quit"
)

// Controls is what the input system drives; *engine.Playfield satisfies it
type Controls interface {
	ActivateFlipper(side entity.Side) error
	Reset()
}

// InputSystem turns key presses into flipper activations and resets
type InputSystem struct {
	controls Controls
	logger   *logging.Logger

	// pressed reports whether a button went down this frame
	pressed func(button string) bool
	quit    func()
}

// NewInputSystem creates a new input system
func NewInputSystem(controls Controls, logger *logging.Logger) *InputSystem {
	if logger == nil {
		logger = logging.Discard()
	}
	return &InputSystem{
		controls: controls,
		logger:   logger,
		pressed:  justPressed,
		quit:     engo.Exit,
	}
}

func justPressed(button string) bool {
	return engo.Input.Button(button).JustPressed()
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update processes input once per frame
func (is *InputSystem) Update(dt float32) {
	ctx := context.Background()

	flippers := []struct {
		button string
		side   entity.Side
	}{
		{ButtonLeftFlipper, entity.Left},
		{ButtonRightFlipper, entity.Right},
	}
	for _, f := range flippers {
		if !is.pressed(f.button) {
			continue
		}
		if err := is.controls.ActivateFlipper(f.side); err != nil {
			is.logger.Error(ctx, "flipper activation failed", err, "side", f.side.String())
		}
	}

	if is.pressed(ButtonReset) {
		is.controls.Reset()
	}
	if is.pressed(ButtonQuit) && is.quit != nil {
		is.logger.Info(ctx, "quit requested")
		is.quit()
	}
}

// SetupInputBindings sets up the key bindings for the table
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonLeftFlipper, engo.KeyArrowLeft, engo.KeyZ)
	engo.Input.RegisterButton(ButtonRightFlipper, engo.KeyArrowRight, engo.KeySlash)
	engo.Input.RegisterButton(ButtonReset, engo.KeyR)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape, engo.KeyQ)
}
