package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultClimbConfig().Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg ClimbConfig
	if err := yaml.Unmarshal(defaultClimbYAML, &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Embedded YAML fails validation: %v", err)
	}
	if cfg != DefaultClimbConfig() {
		t.Errorf("Embedded YAML drifted from DefaultClimbConfig:\n%+v\nvs\n%+v", cfg, DefaultClimbConfig())
	}
}

func TestLoadClimbCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climb.yaml")

	custom := DefaultClimbConfig()
	custom.World.ChunkWidth = 32
	custom.Lava.Speed = 2.5
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClimb(path)
	if err != nil {
		t.Fatalf("LoadClimb(%s) failed: %v", path, err)
	}
	if cfg.World.ChunkWidth != 32 || cfg.Lava.Speed != 2.5 {
		t.Errorf("Custom config not applied: %+v", cfg)
	}
}

func TestLoadClimbMissingCustomPathErrors(t *testing.T) {
	if _, err := LoadClimb(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Missing custom path should be an error")
	}
}

func TestLoadClimbInvalidCustomConfigErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	bad := DefaultClimbConfig()
	bad.World.ChunkWidth = 0
	data, _ := yaml.Marshal(bad)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadClimb(path); err == nil {
		t.Error("Invalid custom config should be an error")
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ClimbConfig)
	}{
		{"zero chunk width", func(c *ClimbConfig) { c.World.ChunkWidth = 0 }},
		{"zero view distance", func(c *ClimbConfig) { c.World.ViewDistance = 0 }},
		{"zero tile size", func(c *ClimbConfig) { c.World.TileSize = 0 }},
		{"inverted width range", func(c *ClimbConfig) { c.Platforms.MinWidth = 9; c.Platforms.MaxWidth = 3 }},
		{"platform wider than chunk", func(c *ClimbConfig) { c.Platforms.MaxWidth = c.World.ChunkWidth + 1 }},
		{"inverted spacing range", func(c *ClimbConfig) { c.Platforms.MinSpacing = 8; c.Platforms.MaxSpacing = 2 }},
		{"height cap below lookahead", func(c *ClimbConfig) { c.Platforms.MaxHeight = c.Platforms.Lookahead }},
		{"negative lava speed", func(c *ClimbConfig) { c.Lava.Speed = -1 }},
		{"zero lava thickness", func(c *ClimbConfig) { c.Lava.Thickness = 0 }},
		{"upward gravity", func(c *ClimbConfig) { c.Player.Gravity = -9.8 }},
		{"downward jump", func(c *ClimbConfig) { c.Player.JumpImpulse = 5 }},
		{"zero countdown", func(c *ClimbConfig) { c.Flow.CountdownSeconds = 0 }},
		{"negative restart delay", func(c *ClimbConfig) { c.Flow.RestartDelaySeconds = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultClimbConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}

func TestApplyClimbPreset(t *testing.T) {
	cfg := DefaultClimbConfig()
	ApplyClimbPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("Hard preset should keep progression enabled")
	}
	if cfg.Difficulty.InitialLevel <= 0 {
		t.Error("Hard preset should raise the initial level")
	}

	ApplyClimbPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultClimbConfig().Difficulty // height progression, max at 300
	dm := NewDifficultyManager(cfg)

	if !dm.IsEnabled() {
		t.Fatal("Default difficulty should be enabled")
	}
	if lvl := dm.Level(0, 0); lvl != 0 {
		t.Errorf("Level at height 0 = %v", lvl)
	}
	if lvl := dm.Level(150, 0); lvl <= 0 || lvl >= 1 {
		t.Errorf("Level at half the ramp = %v, expected in (0, 1)", lvl)
	}
	if lvl := dm.Level(300, 0); lvl != 1 {
		t.Errorf("Level at the ramp top = %v, expected 1", lvl)
	}
	if lvl := dm.Level(10000, 0); lvl != 1 {
		t.Errorf("Level past the ramp = %v, expected clamped to 1", lvl)
	}
}

func TestDifficultyLavaSpeedScales(t *testing.T) {
	cfg := DefaultClimbConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	base := 1.2
	if s := dm.LavaSpeed(base, 0, 0); s != base {
		t.Errorf("Speed at level 0 = %v, expected base %v", s, base)
	}
	want := base * (1.0 + cfg.Scaling.SpeedMultiplier)
	if s := dm.LavaSpeed(base, 300, 0); s != want {
		t.Errorf("Speed at full level = %v, expected %v", s, want)
	}

	cfg.Progression.Type = "none"
	if s := NewDifficultyManager(cfg).LavaSpeed(base, 300, 0); s != base {
		t.Errorf("Disabled progression should keep base speed, got %v", s)
	}
}
