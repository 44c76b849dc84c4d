// Package config provides YAML-based configuration loading for the
// invaders platform: timer cadence, input latching and display limits.
package config

import (
	"errors"
	"fmt"
	"time"
)

// EnvPrefix is prepended to every environment override, e.g.
// INVADERS_TIMING_TICK_INTERVAL=25ms.
const EnvPrefix = "INVADERS_"

// InvadersConfig contains the platform-level settings for the invaders game.
// Gameplay constants (speeds, radii, layout) are built into the engine.
type InvadersConfig struct {
	Timing  TimingConfig  `yaml:"timing" envPrefix:"TIMING_"`
	Input   InputConfig   `yaml:"input" envPrefix:"INPUT_"`
	Display DisplayConfig `yaml:"display" envPrefix:"DISPLAY_"`
}

// TimingConfig defines the periodic event sources.
type TimingConfig struct {
	TickInterval      time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	AlienFireInterval time.Duration `yaml:"alien_fire_interval" env:"ALIEN_FIRE_INTERVAL"`
}

// InputConfig tunes key-repeat suppression.
type InputConfig struct {
	// RepeatDelay is how long a fresh press stays down waiting for the first auto-repeat.
	RepeatDelay time.Duration `yaml:"repeat_delay" env:"REPEAT_DELAY"`
	// HoldRelease is how long a repeating key may go without a repeat before it counts as released.
	HoldRelease time.Duration `yaml:"hold_release" env:"HOLD_RELEASE"`
}

// DisplayConfig defines terminal rendering limits.
type DisplayConfig struct {
	MinWidth    int `yaml:"min_width" env:"MIN_WIDTH"`
	MinHeight   int `yaml:"min_height" env:"MIN_HEIGHT"`
	BurstFrames int `yaml:"burst_frames" env:"BURST_FRAMES"` // frames a destroyed entity flashes
}

// Validate reports every invalid setting.
func (c InvadersConfig) Validate() error {
	var errs []error
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Timing.AlienFireInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.alien_fire_interval must be positive, got %s", c.Timing.AlienFireInterval))
	}
	if c.Input.RepeatDelay <= 0 {
		errs = append(errs, fmt.Errorf("input.repeat_delay must be positive, got %s", c.Input.RepeatDelay))
	}
	if c.Input.HoldRelease <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_release must be positive, got %s", c.Input.HoldRelease))
	}
	if c.Display.MinWidth <= 0 || c.Display.MinHeight <= 0 {
		errs = append(errs, fmt.Errorf("display minimum size must be positive, got %dx%d", c.Display.MinWidth, c.Display.MinHeight))
	}
	if c.Display.BurstFrames < 0 {
		errs = append(errs, fmt.Errorf("display.burst_frames must not be negative, got %d", c.Display.BurstFrames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
