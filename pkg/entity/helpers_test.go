package entity

import (
	"math"
	"time"

	"github.com/opd-ai/go-pinball/pkg/physics"
)

const epsilon = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vectorsAlmostEqual(a, b physics.Vector2D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func testBallParams() BallParams {
	return BallParams{
		Gravity:      392,
		FrictionBase: 0.4,
		MinVelocity:  10,
		MaxVelocity:  400,
	}
}

func testFlipperParams() FlipperParams {
	return FlipperParams{
		Length:       100,
		Height:       10,
		MinAngle:     -math.Pi / 4,
		MaxAngle:     math.Pi / 4,
		RiseDuration: 25 * time.Millisecond,
		FallDuration: 175 * time.Millisecond,
		RiseEasing:   "easeout",
		FallEasing:   "easein",
		RayCastBoost: 1.2,
	}
}

func mustBall(position, velocity physics.Vector2D) *Ball {
	ball, err := NewBall(position, velocity, 8, testBallParams())
	if err != nil {
		panic(err)
	}
	return ball
}

func mustFlipper(side Side, pivot physics.Vector2D, params FlipperParams) *Flipper {
	flipper, err := NewFlipper(side, pivot, params)
	if err != nil {
		panic(err)
	}
	return flipper
}

// RecordingRenderer records every call for verification
type RecordingRenderer struct {
	Balls        []BallState
	Flippers     []FlipperState
	Bumpers      []BumperState
	ClearCalls   int
	PresentCalls int
}

func (r *RecordingRenderer) RenderBall(ball BallState) { r.Balls = append(r.Balls, ball) }
func (r *RecordingRenderer) RenderFlipper(flipper FlipperState) {
	r.Flippers = append(r.Flippers, flipper)
}
func (r *RecordingRenderer) RenderBumper(bumper BumperState) { r.Bumpers = append(r.Bumpers, bumper) }
func (r *RecordingRenderer) Clear()                          { r.ClearCalls++ }
func (r *RecordingRenderer) Present()                        { r.PresentCalls++ }
