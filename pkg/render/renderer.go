// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/logging"
)

// NullRenderer is a headless implementation of entity.Renderer that only
// logs what it is asked to draw. Frames counts completed Present calls.
type NullRenderer struct {
	logger *logging.Logger
	Frames int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger discards everything.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{
		logger: logger,
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.Frames++
	d.logger.Debug(ctx, "Present called", "frame", d.Frames)
}

// RenderBall implements entity.Renderer.
func (d *NullRenderer) RenderBall(ball entity.BallState) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderBall called",
		"ball_id", uint64(ball.ID),
		"x", ball.Position.X,
		"y", ball.Position.Y,
		"radius", ball.Radius,
	)
}

// RenderFlipper implements entity.Renderer.
func (d *NullRenderer) RenderFlipper(flipper entity.FlipperState) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderFlipper called",
		"flipper_id", uint64(flipper.ID),
		"side", flipper.Side.String(),
		"phase", flipper.Phase.String(),
		"angle", flipper.Angle,
	)
}

// RenderBumper implements entity.Renderer.
func (d *NullRenderer) RenderBumper(bumper entity.BumperState) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderBumper called",
		"bumper_id", uint64(bumper.ID),
		"x", bumper.Position.X,
		"y", bumper.Position.Y,
	)
}

// NullRendererInstance is a global instance of NullRenderer for convenience.
var NullRendererInstance entity.Renderer = NewNullRenderer(nil)
