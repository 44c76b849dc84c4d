package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points the user and local config lookups at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	data := GetDefaultYAML("invaders")
	if len(data) == 0 {
		t.Fatal("GetDefaultYAML(invaders) returned nothing")
	}

	var cfg InvadersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultInvadersConfig())
	}

	if GetDefaultYAML("snake") != nil {
		t.Error("GetDefaultYAML for an unknown game should be nil")
	}
}

func TestLoadInvadersEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Timing.TickInterval != 30*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 30ms", cfg.Timing.TickInterval)
	}
	if cfg.Timing.AlienFireInterval != 400*time.Millisecond {
		t.Errorf("AlienFireInterval = %v, expected 400ms", cfg.Timing.AlienFireInterval)
	}
	if cfg.Input.RepeatDelay != 500*time.Millisecond {
		t.Errorf("RepeatDelay = %v, expected 500ms", cfg.Input.RepeatDelay)
	}
	if cfg.Input.HoldRelease != 180*time.Millisecond {
		t.Errorf("HoldRelease = %v, expected 180ms", cfg.Input.HoldRelease)
	}
}

func TestLoadInvadersCustomPathPartial(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "timing:\n  tick_interval: 50ms\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders(%q) error = %v", path, err)
	}
	if cfg.Timing.TickInterval != 50*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 50ms", cfg.Timing.TickInterval)
	}
	// Values the file does not name keep their defaults
	if cfg.Timing.AlienFireInterval != 400*time.Millisecond {
		t.Errorf("AlienFireInterval = %v, expected default 400ms", cfg.Timing.AlienFireInterval)
	}
}

func TestLoadInvadersLocalDirectory(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	content := "display:\n  burst_frames: 2\n  min_width: 60\n  min_height: 24\n"
	if err := os.WriteFile(filepath.Join("configs", "invaders.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Display.BurstFrames != 2 {
		t.Errorf("BurstFrames = %d, expected 2", cfg.Display.BurstFrames)
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadInvaders() with a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("LoadInvaders() with malformed YAML should fail")
	}

	zero := filepath.Join(t.TempDir(), "zero.yaml")
	if err := os.WriteFile(zero, []byte("timing:\n  tick_interval: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(zero); err == nil {
		t.Error("LoadInvaders() with a zero tick interval should fail validation")
	}
}

func TestLoadInvadersEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("INVADERS_TIMING_TICK_INTERVAL", "25ms")
	t.Setenv("INVADERS_INPUT_HOLD_RELEASE", "250ms")
	t.Setenv("INVADERS_INPUT_REPEAT_DELAY", "700ms")
	t.Setenv("INVADERS_DISPLAY_BURST_FRAMES", "9")

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Timing.TickInterval != 25*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 25ms", cfg.Timing.TickInterval)
	}
	if cfg.Input.HoldRelease != 250*time.Millisecond {
		t.Errorf("HoldRelease = %v, expected 250ms", cfg.Input.HoldRelease)
	}
	if cfg.Input.RepeatDelay != 700*time.Millisecond {
		t.Errorf("RepeatDelay = %v, expected 700ms", cfg.Input.RepeatDelay)
	}
	if cfg.Display.BurstFrames != 9 {
		t.Errorf("BurstFrames = %d, expected 9", cfg.Display.BurstFrames)
	}
	if cfg.Timing.AlienFireInterval != 400*time.Millisecond {
		t.Errorf("AlienFireInterval = %v, expected untouched 400ms", cfg.Timing.AlienFireInterval)
	}
}

func TestLoadInvadersBadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("INVADERS_TIMING_ALIEN_FIRE_INTERVAL", "soon")

	_, err := LoadInvaders("")
	if err == nil || !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("LoadInvaders() error = %v, expected a config: parse failure", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InvadersConfig)
		wantErr bool
	}{
		{"defaults", func(*InvadersConfig) {}, false},
		{"zero tick", func(c *InvadersConfig) { c.Timing.TickInterval = 0 }, true},
		{"negative fire", func(c *InvadersConfig) { c.Timing.AlienFireInterval = -time.Second }, true},
		{"zero hold", func(c *InvadersConfig) { c.Input.HoldRelease = 0 }, true},
		{"zero repeat delay", func(c *InvadersConfig) { c.Input.RepeatDelay = 0 }, true},
		{"zero width", func(c *InvadersConfig) { c.Display.MinWidth = 0 }, true},
		{"negative burst", func(c *InvadersConfig) { c.Display.BurstFrames = -1 }, true},
		{"no burst", func(c *InvadersConfig) { c.Display.BurstFrames = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, expected error %v", err, tc.wantErr)
			}
		})
	}
}
