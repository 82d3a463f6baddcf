package config

import (
	"os"
	"testing"
	"time"
)

var pinballEnvVars = []string{
	"PINBALL_CANVAS_WIDTH",
	"PINBALL_CANVAS_HEIGHT",
	"PINBALL_GRAVITY",
	"PINBALL_FRICTION_BASE",
	"PINBALL_BUMPER_FRICTION",
	"PINBALL_MAX_VELOCITY",
	"PINBALL_BALL_RADIUS",
	"PINBALL_RISE_DURATION",
	"PINBALL_FALL_DURATION",
	"PINBALL_SEED",
}

// clearEnv unsets every PINBALL_* variable and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()

	originalEnv := make(map[string]string)
	for _, key := range pinballEnvVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}

	t.Cleanup(func() {
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	clearEnv(t)

	t.Run("DefaultValues", func(t *testing.T) {
		config := DefaultConfig()
		if err := ApplyEnvironmentOverrides(config); err != nil {
			t.Fatalf("ApplyEnvironmentOverrides() failed: %v", err)
		}
		if config.Physics.Gravity != 392 {
			t.Errorf("Expected Gravity 392, got %v", config.Physics.Gravity)
		}
		if config.Ball.Seed != 0 {
			t.Errorf("Expected Seed 0, got %d", config.Ball.Seed)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		os.Setenv("PINBALL_CANVAS_WIDTH", "640")
		os.Setenv("PINBALL_GRAVITY", "80")
		os.Setenv("PINBALL_BUMPER_FRICTION", "0.9")
		os.Setenv("PINBALL_BALL_RADIUS", "6.5")
		os.Setenv("PINBALL_RISE_DURATION", "40ms")
		os.Setenv("PINBALL_SEED", "1234")

		config := DefaultConfig()
		if err := ApplyEnvironmentOverrides(config); err != nil {
			t.Fatalf("ApplyEnvironmentOverrides() failed: %v", err)
		}

		if config.Canvas.Width != 640 {
			t.Errorf("Expected Width 640, got %v", config.Canvas.Width)
		}
		if config.Canvas.Height != 600 {
			t.Errorf("Expected Height unchanged at 600, got %v", config.Canvas.Height)
		}
		if config.Physics.Gravity != 80 {
			t.Errorf("Expected Gravity 80, got %v", config.Physics.Gravity)
		}
		if config.Physics.BumperFriction != 0.9 {
			t.Errorf("Expected BumperFriction 0.9, got %v", config.Physics.BumperFriction)
		}
		if config.Ball.Radius != 6.5 {
			t.Errorf("Expected Radius 6.5, got %v", config.Ball.Radius)
		}
		if config.Flippers.RiseDuration.Duration != 40*time.Millisecond {
			t.Errorf("Expected RiseDuration 40ms, got %v", config.Flippers.RiseDuration)
		}
		if config.Ball.Seed != 1234 {
			t.Errorf("Expected Seed 1234, got %d", config.Ball.Seed)
		}
	})
}

func TestApplyEnvironmentOverrides_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PINBALL_GRAVITY", "heavy"},
		{"PINBALL_FALL_DURATION", "slowly"},
		{"PINBALL_SEED", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			os.Setenv(tt.key, tt.value)

			if err := ApplyEnvironmentOverrides(DefaultConfig()); err == nil {
				t.Errorf("ApplyEnvironmentOverrides() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}
