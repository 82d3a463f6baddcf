package render

import (
	"context"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-pinball/pkg/entity"
	"github.com/opd-ai/go-pinball/pkg/logging"
	"github.com/opd-ai/go-pinball/pkg/physics"
)

// Glyphs used by the terminal renderer
const (
	BallGlyph    = 'O'
	BumperGlyph  = '@'
	FlipperGlyph = '#'
)

var (
	ballStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	bumperStyle  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	flipperStyle = tcell.StyleDefault.Foreground(tcell.ColorLime)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// TerminalRenderer draws the playfield onto a tcell screen. The world is
// stretched over the whole screen with y pointing up, so the world origin
// lands in the bottom-left cell.
type TerminalRenderer struct {
	screen      tcell.Screen
	worldWidth  float64
	worldHeight float64
	status      string
	logger      *logging.Logger
}

// NewTerminalRenderer creates a renderer for a world of the given size.
// The screen must already be initialized.
func NewTerminalRenderer(screen tcell.Screen, worldWidth, worldHeight float64, logger *logging.Logger) *TerminalRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TerminalRenderer{
		screen:      screen,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		logger:      logger,
	}
}

// SetStatus sets the text shown on the top row at the next Present
func (r *TerminalRenderer) SetStatus(text string) {
	r.status = text
}

// worldToScreen converts world coordinates to a screen cell
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	cols, rows := r.screen.Size()
	x := int(math.Floor(pos.X * float64(cols) / r.worldWidth))
	y := rows - 1 - int(math.Floor(pos.Y*float64(rows)/r.worldHeight))
	return x, y
}

// cellSize returns the world extent of one screen cell
func (r *TerminalRenderer) cellSize() (float64, float64) {
	cols, rows := r.screen.Size()
	if cols == 0 || rows == 0 {
		return r.worldWidth, r.worldHeight
	}
	return r.worldWidth / float64(cols), r.worldHeight / float64(rows)
}

func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune, style tcell.Style) {
	x, y := r.worldToScreen(pos)
	cols, rows := r.screen.Size()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	r.screen.SetContent(x, y, glyph, nil, style)
}

// segment plots every cell crossed by the line from a to b
func (r *TerminalRenderer) segment(a, b physics.Vector2D, glyph rune, style tcell.Style) {
	cw, ch := r.cellSize()
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X)/cw, math.Abs(d.Y)/ch)))
	if steps == 0 {
		r.plot(a, glyph, style)
		return
	}
	for i := 0; i <= steps; i++ {
		r.plot(a.Add(d.Scale(float64(i)/float64(steps))), glyph, style)
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	if r.status != "" {
		x := 0
		for _, c := range r.status {
			r.screen.SetContent(x, 0, c, nil, statusStyle)
			x++
		}
	}
	r.screen.Show()
}

// RenderBall implements entity.Renderer
func (r *TerminalRenderer) RenderBall(ball entity.BallState) {
	r.plot(ball.Position, BallGlyph, ballStyle)
}

// RenderBumper implements entity.Renderer
func (r *TerminalRenderer) RenderBumper(bumper entity.BumperState) {
	cw, ch := r.cellSize()
	// a multiple of four so the extreme points are always plotted
	quarter := math.Max(2, math.Ceil(math.Pi*bumper.Radius/(2*math.Min(cw, ch))))
	samples := 4 * int(quarter)
	for i := 0; i < samples; i++ {
		angle := 2 * math.Pi * float64(i) / float64(samples)
		r.plot(bumper.Position.Add(physics.FromAngle(angle, bumper.Radius)), BumperGlyph, bumperStyle)
	}
	r.plot(bumper.Position, BumperGlyph, bumperStyle)
}

// RenderFlipper implements entity.Renderer
func (r *TerminalRenderer) RenderFlipper(flipper entity.FlipperState) {
	n := len(flipper.Vertices)
	if n == 0 {
		r.logger.Warn(context.Background(), "flipper without vertices", "flipper_id", uint64(flipper.ID))
		return
	}
	for i, v := range flipper.Vertices {
		r.segment(v, flipper.Vertices[(i+1)%n], FlipperGlyph, flipperStyle)
	}
}

// Command is a host action decoded from terminal input
type Command int

const (
	CommandNone Command = iota
	CommandLeftFlipper
	CommandRightFlipper
	CommandReset
	CommandQuit
	CommandResize
)

func (c Command) String() string {
	switch c {
	case CommandLeftFlipper:
		return "left_flipper"
	case CommandRightFlipper:
		return "right_flipper"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	case CommandResize:
		return "resize"
	default:
		return "none"
	}
}

// TranslateEvent maps a tcell event to a Command. Left/Right or Z and
// slash flip, R resets, Esc, Q and Ctrl-C quit.
func TranslateEvent(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return CommandResize
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			return CommandLeftFlipper
		case tcell.KeyRight:
			return CommandRightFlipper
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return CommandQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'z', 'Z':
				return CommandLeftFlipper
			case '/':
				return CommandRightFlipper
			case 'r', 'R':
				return CommandReset
			case 'q', 'Q':
				return CommandQuit
			}
		}
	}
	return CommandNone
}

// Listen decodes screen events into commands until ctx is done. Resize
// events resynchronize the screen before being forwarded.
func (r *TerminalRenderer) Listen(ctx context.Context) <-chan Command {
	events := make(chan tcell.Event, 16)
	commands := make(chan Command, 16)

	go r.screen.ChannelEvents(events, ctx.Done())
	go func() {
		defer close(commands)
		for ev := range events {
			cmd := TranslateEvent(ev)
			if cmd == CommandNone {
				continue
			}
			if cmd == CommandResize {
				r.screen.Sync()
			}
			r.logger.Debug(ctx, "terminal command", "command", cmd.String())
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()
	return commands
}
