package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Timing: TimingConfig{
			TickInterval:      30 * time.Millisecond,
			AlienFireInterval: 400 * time.Millisecond,
		},
		Input: InputConfig{
			RepeatDelay: 500 * time.Millisecond,
			HoldRelease: 180 * time.Millisecond,
		},
		Display: DisplayConfig{
			MinWidth:    60,
			MinHeight:   24,
			BurstFrames: 6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
