// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// PlayfieldConfig contains configuration for a pinball playfield
type PlayfieldConfig struct {
	Canvas   CanvasConfig  `json:"canvas" toml:"canvas"`
	Physics  PhysicsConfig `json:"physics" toml:"physics"`
	Ball     BallConfig    `json:"ball" toml:"ball"`
	Bumpers  BumperConfig  `json:"bumpers" toml:"bumpers"`
	Flippers FlipperConfig `json:"flippers" toml:"flippers"`
	Host     HostConfig    `json:"host" toml:"host"`
}

// Point is a position or velocity in playfield units, y pointing up
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// CanvasConfig contains the playfield size
type CanvasConfig struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// PhysicsConfig contains physics-related configuration
type PhysicsConfig struct {
	Gravity        float64 `json:"gravity" toml:"gravity"`
	FrictionBase   float64 `json:"frictionBase" toml:"friction_base"`
	BumperFriction float64 `json:"bumperFriction" toml:"bumper_friction"`
	MinVelocity    float64 `json:"minVelocity" toml:"min_velocity"`
	MaxVelocity    float64 `json:"maxVelocity" toml:"max_velocity"`
}

// BallConfig contains the ball's size and launch state
type BallConfig struct {
	Radius   float64 `json:"radius" toml:"radius"`
	Start    Point   `json:"start" toml:"start"`
	Velocity Point   `json:"velocity" toml:"velocity"`
	// RandomVelocity draws each launch velocity component from
	// [VelocityMin, VelocityMax) instead of using Velocity.
	RandomVelocity bool    `json:"randomVelocity" toml:"random_velocity"`
	VelocityMin    float64 `json:"velocityMin" toml:"velocity_min"`
	VelocityMax    float64 `json:"velocityMax" toml:"velocity_max"`
	Seed           uint64  `json:"seed" toml:"seed"`
}

// BumperConfig contains the bumper layout
type BumperConfig struct {
	Radius    float64 `json:"radius" toml:"radius"`
	Positions []Point `json:"positions" toml:"positions"`
}

// FlipperConfig contains the shape and animation of both flippers.
// Angles are those of the left flipper; the right one is mirrored.
type FlipperConfig struct {
	Length       float64  `json:"length" toml:"length"`
	Height       float64  `json:"height" toml:"height"`
	LeftPivot    Point    `json:"leftPivot" toml:"left_pivot"`
	RightPivot   Point    `json:"rightPivot" toml:"right_pivot"`
	MinAngle     float64  `json:"minAngle" toml:"min_angle"`
	MaxAngle     float64  `json:"maxAngle" toml:"max_angle"`
	RiseDuration Duration `json:"riseDuration" toml:"rise_duration"`
	FallDuration Duration `json:"fallDuration" toml:"fall_duration"`
	RiseEasing   string   `json:"riseEasing" toml:"rise_easing"`
	FallEasing   string   `json:"fallEasing" toml:"fall_easing"`
	RayCastBoost float64  `json:"rayCastBoost" toml:"ray_cast_boost"`
}

// HostConfig contains settings for the programs driving the simulation
type HostConfig struct {
	TickRate      int      `json:"tickRate" toml:"tick_rate"`
	MaxFrameDelta Duration `json:"maxFrameDelta" toml:"max_frame_delta"`
}

// Duration is a time.Duration written as text, e.g. "25ms"
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// isTOML reports whether path should be read and written as TOML
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// LoadConfig loads a configuration from a JSON or TOML file
func LoadConfig(path string) (*PlayfieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *PlayfieldConfig, path string) error {
	var data []byte
	if isTOML(path) {
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(config); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = []byte(sb.String())
	} else {
		var err error
		data, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the classic three-bumper, two-flipper table
func DefaultConfig() *PlayfieldConfig {
	const (
		width  = 500.0
		height = 600.0
	)

	return &PlayfieldConfig{
		Canvas: CanvasConfig{
			Width:  width,
			Height: height,
		},
		Physics: PhysicsConfig{
			Gravity:        392,
			FrictionBase:   0.4,
			BumperFriction: 0.6,
			MinVelocity:    10,
			MaxVelocity:    400,
		},
		Ball: BallConfig{
			Radius:         8,
			Start:          Point{X: width / 2, Y: height - 100},
			RandomVelocity: true,
			VelocityMin:    1,
			VelocityMax:    250,
		},
		Bumpers: BumperConfig{
			Radius: 20,
			Positions: []Point{
				{X: width / 4, Y: 3 * height / 4},
				{X: width / 2, Y: 3 * height / 4},
				{X: 3 * width / 4, Y: 3 * height / 4},
			},
		},
		Flippers: FlipperConfig{
			Length:       100,
			Height:       10,
			LeftPivot:    Point{X: width / 4, Y: height / 5},
			RightPivot:   Point{X: 3 * width / 4, Y: height / 5},
			MinAngle:     -math.Pi / 4,
			MaxAngle:     math.Pi / 4,
			RiseDuration: Duration{25 * time.Millisecond},
			FallDuration: Duration{175 * time.Millisecond},
			RiseEasing:   "easeout",
			FallEasing:   "easein",
			RayCastBoost: 1.2,
		},
		Host: HostConfig{
			TickRate:      60,
			MaxFrameDelta: Duration{100 * time.Millisecond},
		},
	}
}

// Validate checks the configuration for values the simulation cannot run with
func (c *PlayfieldConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0,
		"canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	check(c.Physics.Gravity >= 0, "gravity cannot be negative: %v", c.Physics.Gravity)
	check(c.Physics.FrictionBase > 0 && c.Physics.FrictionBase <= 1,
		"friction base must be in (0, 1], got %v", c.Physics.FrictionBase)
	check(c.Physics.BumperFriction > 0 && c.Physics.BumperFriction <= 1,
		"bumper friction must be in (0, 1], got %v", c.Physics.BumperFriction)
	check(c.Physics.MinVelocity >= 0, "min velocity cannot be negative: %v", c.Physics.MinVelocity)
	check(c.Physics.MaxVelocity >= c.Physics.MinVelocity,
		"max velocity %v is below min velocity %v", c.Physics.MaxVelocity, c.Physics.MinVelocity)

	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(c.inside(c.Ball.Start), "ball start %v is outside the canvas", c.Ball.Start)
	if c.Ball.RandomVelocity {
		check(c.Ball.VelocityMax > c.Ball.VelocityMin,
			"random velocity range [%v, %v) is empty", c.Ball.VelocityMin, c.Ball.VelocityMax)
	}

	check(c.Bumpers.Radius > 0, "bumper radius must be positive, got %v", c.Bumpers.Radius)
	for i, p := range c.Bumpers.Positions {
		check(c.inside(p), "bumper %d at %v is outside the canvas", i, p)
	}

	f := c.Flippers
	check(f.Length > 0 && f.Height > 0, "flipper size must be positive, got %vx%v", f.Length, f.Height)
	check(f.MinAngle < f.MaxAngle, "flipper min angle %v must be below max angle %v", f.MinAngle, f.MaxAngle)
	check(f.RiseDuration.Duration > 0, "rise duration must be positive, got %v", f.RiseDuration)
	check(f.FallDuration.Duration > 0, "fall duration must be positive, got %v", f.FallDuration)
	check(f.RayCastBoost > 0, "ray-cast boost must be positive, got %v", f.RayCastBoost)
	check(c.inside(f.LeftPivot), "left flipper pivot %v is outside the canvas", f.LeftPivot)
	check(c.inside(f.RightPivot), "right flipper pivot %v is outside the canvas", f.RightPivot)

	check(c.Host.TickRate > 0, "tick rate must be positive, got %d", c.Host.TickRate)
	check(c.Host.MaxFrameDelta.Duration > 0, "max frame delta must be positive, got %v", c.Host.MaxFrameDelta)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func (c *PlayfieldConfig) inside(p Point) bool {
	return p.X >= 0 && p.X <= c.Canvas.Width && p.Y >= 0 && p.Y <= c.Canvas.Height
}
