package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ApplyEnvironmentOverrides replaces configuration values with PINBALL_*
// environment variables when they are set.
func ApplyEnvironmentOverrides(config *PlayfieldConfig) error {
	floats := []struct {
		key    string
		target *float64
	}{
		{"PINBALL_CANVAS_WIDTH", &config.Canvas.Width},
		{"PINBALL_CANVAS_HEIGHT", &config.Canvas.Height},
		{"PINBALL_GRAVITY", &config.Physics.Gravity},
		{"PINBALL_FRICTION_BASE", &config.Physics.FrictionBase},
		{"PINBALL_BUMPER_FRICTION", &config.Physics.BumperFriction},
		{"PINBALL_MAX_VELOCITY", &config.Physics.MaxVelocity},
		{"PINBALL_BALL_RADIUS", &config.Ball.Radius},
	}
	for _, f := range floats {
		if err := overrideFloat(f.key, f.target); err != nil {
			return err
		}
	}

	durations := []struct {
		key    string
		target *Duration
	}{
		{"PINBALL_RISE_DURATION", &config.Flippers.RiseDuration},
		{"PINBALL_FALL_DURATION", &config.Flippers.FallDuration},
	}
	for _, d := range durations {
		if err := overrideDuration(d.key, d.target); err != nil {
			return err
		}
	}

	if value := os.Getenv("PINBALL_SEED"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid PINBALL_SEED %q: %w", value, err)
		}
		config.Ball.Seed = seed
	}

	return nil
}

func overrideFloat(key string, target *float64) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}

func overrideDuration(key string, target *Duration) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	target.Duration = parsed
	return nil
}
