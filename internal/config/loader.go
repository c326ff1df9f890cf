package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadClimb loads the climb game configuration.
// Search order: customPath -> ~/.lavaclimb/configs/climb.yaml -> ./configs/climb.yaml -> embedded default.
// The returned config is always validated; a config that fails validation is an error.
func LoadClimb(customPath string) (ClimbConfig, error) {
	var cfg ClimbConfig

	// Custom path is authoritative: any failure there is reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("climb.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/climb.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultClimbYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultClimbConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lavaclimb", "configs", filename)
}

// ApplyClimbPreset modifies the config based on a difficulty preset.
func ApplyClimbPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks every configured range the game core relies on.
// The core itself performs no range checks, so nothing invalid may pass here.
func (c ClimbConfig) Validate() error {
	if c.World.ChunkWidth <= 0 {
		return fmt.Errorf("world.chunk_width must be positive, got %d", c.World.ChunkWidth)
	}
	if c.World.ViewDistance < 1 {
		return fmt.Errorf("world.view_distance must be at least 1, got %d", c.World.ViewDistance)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %g", c.World.TileSize)
	}
	if c.Floor.Depth < 1 {
		return fmt.Errorf("floor.depth must be at least 1, got %d", c.Floor.Depth)
	}
	if c.Platforms.MinWidth < 1 || c.Platforms.MinWidth > c.Platforms.MaxWidth {
		return fmt.Errorf("platforms width range [%d, %d] is invalid", c.Platforms.MinWidth, c.Platforms.MaxWidth)
	}
	if c.Platforms.MaxWidth > c.World.ChunkWidth {
		return fmt.Errorf("platforms.max_width %d exceeds chunk width %d", c.Platforms.MaxWidth, c.World.ChunkWidth)
	}
	if c.Platforms.MinSpacing < 1 || c.Platforms.MinSpacing > c.Platforms.MaxSpacing {
		return fmt.Errorf("platforms spacing range [%d, %d] is invalid", c.Platforms.MinSpacing, c.Platforms.MaxSpacing)
	}
	if c.Platforms.InitialGap < 1 {
		return fmt.Errorf("platforms.initial_gap must be at least 1, got %d", c.Platforms.InitialGap)
	}
	if c.Platforms.Lookahead < 1 {
		return fmt.Errorf("platforms.lookahead must be at least 1, got %d", c.Platforms.Lookahead)
	}
	if c.Platforms.MaxHeight <= c.Platforms.Lookahead {
		return fmt.Errorf("platforms.max_height %d must exceed lookahead %d", c.Platforms.MaxHeight, c.Platforms.Lookahead)
	}
	if c.Platforms.ExtendThreshold < 1 {
		return fmt.Errorf("platforms.extend_threshold must be at least 1, got %d", c.Platforms.ExtendThreshold)
	}
	if c.Lava.Speed < 0 {
		return fmt.Errorf("lava.speed must not be negative, got %g", c.Lava.Speed)
	}
	if c.Lava.Thickness < 1 {
		return fmt.Errorf("lava.thickness must be at least 1, got %d", c.Lava.Thickness)
	}
	if c.Lava.StartOffset < 1 {
		return fmt.Errorf("lava.start_offset must be at least 1, got %d", c.Lava.StartOffset)
	}
	if c.Lava.WindowMargin < 0 {
		return fmt.Errorf("lava.window_margin must not be negative, got %d", c.Lava.WindowMargin)
	}
	if c.Lava.PruneMargin < 0 {
		return fmt.Errorf("lava.prune_margin must not be negative, got %d", c.Lava.PruneMargin)
	}
	if c.Player.MoveSpeed <= 0 {
		return fmt.Errorf("player.move_speed must be positive, got %g", c.Player.MoveSpeed)
	}
	if c.Player.JumpImpulse >= 0 {
		return fmt.Errorf("player.jump_impulse must be negative (upward), got %g", c.Player.JumpImpulse)
	}
	if c.Player.Gravity <= 0 {
		return fmt.Errorf("player.gravity must be positive, got %g", c.Player.Gravity)
	}
	if c.Player.MaxFallSpeed <= 0 {
		return fmt.Errorf("player.max_fall_speed must be positive, got %g", c.Player.MaxFallSpeed)
	}
	if c.Flow.CountdownSeconds <= 0 {
		return fmt.Errorf("flow.countdown_seconds must be positive, got %g", c.Flow.CountdownSeconds)
	}
	if c.Flow.FadeOutSeconds <= 0 || c.Flow.FadeInSeconds <= 0 {
		return fmt.Errorf("flow fade durations must be positive, got %g/%g", c.Flow.FadeOutSeconds, c.Flow.FadeInSeconds)
	}
	if c.Flow.RestartDelaySeconds < 0 {
		return fmt.Errorf("flow.restart_delay_seconds must not be negative, got %g", c.Flow.RestartDelaySeconds)
	}
	return nil
}
