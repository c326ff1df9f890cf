package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the default climb configuration.
// Kept in sync with defaults/climb.yaml; used as the last-resort fallback.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		World: WorldConfig{
			ChunkWidth:   16,
			ViewDistance: 3,
			TileSize:     1.0,
		},
		Floor: FloorConfig{
			Row:   0,
			Depth: 4,
		},
		Platforms: PlatformConfig{
			MinWidth:        3,
			MaxWidth:        7,
			MinSpacing:      3,
			MaxSpacing:      5,
			InitialGap:      4,
			Lookahead:       24,
			MaxHeight:       600,
			ExtendThreshold: 16,
		},
		Lava: LavaConfig{
			Speed:           1.2,
			Thickness:       3,
			StartOffset:     12,
			WindowMargin:    2,
			PruneMargin:     50,
			CollisionOffset: -1.0,
		},
		Player: PlayerConfig{
			SpawnX:       8.0,
			MoveSpeed:    14.0,
			JumpImpulse:  -16.0,
			Gravity:      36.0,
			MaxFallSpeed: 24.0,
		},
		Flow: FlowConfig{
			CountdownSeconds:    3.0,
			FadeOutSeconds:      1.5,
			RestartDelaySeconds: 1.0,
			FadeInSeconds:       1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "height",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}
