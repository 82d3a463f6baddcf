package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/physics"
)

var (
	backgroundColor = color.RGBA{12, 16, 40, 255}
	ballColor       = color.RGBA{230, 230, 240, 255}
	bumperColor     = color.RGBA{220, 40, 140, 255}
	bumperRimColor  = color.RGBA{255, 255, 255, 255}
	flipperColor    = color.RGBA{60, 200, 90, 255}
	movingColor     = color.RGBA{250, 220, 60, 255}
)

type opKind int

const (
	opCircle opKind = iota
	opRing
	opLine
)

// drawOp is one primitive in screen coordinates
type drawOp struct {
	kind   opKind
	x0, y0 float32
	x1, y1 float32
	// radius for circles and rings, stroke width for lines
	size  float32
	color color.Color
}

// Renderer implements entity.Renderer with ebiten vector primitives. Shapes
// are queued while a snapshot renders and drawn on Present.
type Renderer struct {
	height float64
	target *ebiten.Image
	ops    []drawOp
	frame  []drawOp
}

// NewRenderer creates a renderer for a table height tall; the table is
// drawn at scale 1 with y flipped
func NewRenderer(height float64) *Renderer {
	return &Renderer{height: height}
}

// SetTarget sets the image the next frame is drawn on
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

func (r *Renderer) toScreen(p physics.Vector2D) (float32, float32) {
	return float32(p.X), float32(r.height - p.Y)
}

// Clear implements entity.Renderer
func (r *Renderer) Clear() {
	r.ops = r.ops[:0]
}

// RenderBall implements entity.Renderer
func (r *Renderer) RenderBall(ball entity.BallState) {
	x, y := r.toScreen(ball.Position)
	r.ops = append(r.ops, drawOp{kind: opCircle, x0: x, y0: y, size: float32(ball.Radius), color: ballColor})
}

// RenderBumper implements entity.Renderer
func (r *Renderer) RenderBumper(bumper entity.BumperState) {
	x, y := r.toScreen(bumper.Position)
	radius := float32(bumper.Radius)
	r.ops = append(r.ops,
		drawOp{kind: opCircle, x0: x, y0: y, size: radius, color: bumperColor},
		drawOp{kind: opRing, x0: x, y0: y, size: radius, color: bumperRimColor},
	)
}

// RenderFlipper implements entity.Renderer. The paddle is stroked along
// its center line, pivot to tip, as wide as it is thick.
func (r *Renderer) RenderFlipper(flipper entity.FlipperState) {
	if len(flipper.Vertices) != 4 {
		return
	}
	v := flipper.Vertices
	start := v[0].Add(v[1]).Scale(0.5)
	end := v[2].Add(v[3]).Scale(0.5)

	c := color.Color(flipperColor)
	if flipper.Phase != entity.Idle {
		c = movingColor
	}
	x0, y0 := r.toScreen(start)
	x1, y1 := r.toScreen(end)
	r.ops = append(r.ops, drawOp{
		kind:  opLine,
		x0:    x0,
		y0:    y0,
		x1:    x1,
		y1:    y1,
		size:  float32(v[0].Distance(v[1])),
		color: c,
	})
}

// Present implements entity.Renderer
func (r *Renderer) Present() {
	r.frame = append(r.frame[:0], r.ops...)
	if r.target == nil {
		return
	}

	r.target.Fill(backgroundColor)
	for _, op := range r.frame {
		switch op.kind {
		case opCircle:
			vector.DrawFilledCircle(r.target, op.x0, op.y0, op.size, op.color, true)
		case opRing:
			vector.StrokeCircle(r.target, op.x0, op.y0, op.size, 2, op.color, true)
		case opLine:
			vector.StrokeLine(r.target, op.x0, op.y0, op.x1, op.y1, op.size, op.color, true)
		}
	}
}
