// Package config provides YAML-based game configuration loading and
// difficulty management for the climb game.
package config

// ClimbConfig contains all configuration for the climb game.
type ClimbConfig struct {
	World      WorldConfig      `yaml:"world"`
	Floor      FloorConfig      `yaml:"floor"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Lava       LavaConfig       `yaml:"lava"`
	Player     PlayerConfig     `yaml:"player"`
	Flow       FlowConfig       `yaml:"flow"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the chunk layout of the world.
// Rows grow downward; climbing means decreasing row values.
type WorldConfig struct {
	ChunkWidth   int     `yaml:"chunk_width"`   // Width of one chunk in cells
	ViewDistance int     `yaml:"view_distance"` // Chunk radius kept loaded around the player
	TileSize     float64 `yaml:"tile_size"`     // World units per cell (1.0 for terminal play)
}

// FloorConfig defines the solid floor every chunk carries at its base.
type FloorConfig struct {
	Row   int `yaml:"row"`   // Row of the topmost floor cells
	Depth int `yaml:"depth"` // Number of solid rows below (and including) Row
}

// PlatformConfig defines procedural platform generation parameters.
// All ranges are inclusive.
type PlatformConfig struct {
	MinWidth        int `yaml:"min_width"`
	MaxWidth        int `yaml:"max_width"`
	MinSpacing      int `yaml:"min_spacing"`       // Vertical rows between platforms
	MaxSpacing      int `yaml:"max_spacing"`
	InitialGap      int `yaml:"initial_gap"`       // Rows above the floor for a chunk's first platform
	Lookahead       int `yaml:"lookahead"`         // Rows above the player generation must reach
	MaxHeight       int `yaml:"max_height"`        // Hard ceiling, in rows above the floor
	ExtendThreshold int `yaml:"extend_threshold"`  // Extend a chunk when its top is this close to the player
}

// LavaConfig defines the rising hazard.
type LavaConfig struct {
	Speed           float64 `yaml:"speed"`            // Rows per second the lava rises
	Thickness       int     `yaml:"thickness"`        // Rows of lava painted below the surface
	StartOffset     int     `yaml:"start_offset"`     // Starting surface row, below the floor row
	WindowMargin    int     `yaml:"window_margin"`    // Extra chunks past view distance to keep banded
	PruneMargin     int     `yaml:"prune_margin"`     // Rows below the surface after which cells are pruned
	CollisionOffset float64 `yaml:"collision_offset"` // Corrects sprite anchor vs. collision edge
}

// PlayerConfig defines player movement physics.
type PlayerConfig struct {
	SpawnX       float64 `yaml:"spawn_x"`        // Spawn column, in world units
	MoveSpeed    float64 `yaml:"move_speed"`     // Columns per second
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Rows per second, negative = up
	Gravity      float64 `yaml:"gravity"`        // Rows per second squared
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal fall velocity
}

// FlowConfig defines the timed phases of the countdown/death/restart cycle.
type FlowConfig struct {
	CountdownSeconds    float64 `yaml:"countdown_seconds"`
	FadeOutSeconds      float64 `yaml:"fade_out_seconds"`
	RestartDelaySeconds float64 `yaml:"restart_delay_seconds"`
	FadeInSeconds       float64 `yaml:"fade_in_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "height", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Height/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Lava speed multiplier added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
