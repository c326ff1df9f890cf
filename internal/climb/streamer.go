package climb

import (
	"math"

	"lavaclimb/internal/config"
	"lavaclimb/internal/core"
)

// WorldStreamer keeps the chunk window centered on the player. One call per
// live tick: materialize missing chunks, extend the climb where the player
// is nearing generated terrain, then evict what fell out of the window.
type WorldStreamer struct {
	registry *ChunkRegistry
	world    config.WorldConfig
}

// NewWorldStreamer creates a streamer over the given registry.
func NewWorldStreamer(registry *ChunkRegistry, world config.WorldConfig) *WorldStreamer {
	return &WorldStreamer{
		registry: registry,
		world:    world,
	}
}

// ChunkAt returns the chunk index containing a world X coordinate.
func (s *WorldStreamer) ChunkAt(worldX float64) int {
	col := int(math.Floor(worldX / s.world.TileSize))
	return core.FloorDiv(col, s.world.ChunkWidth)
}

// Update runs one streaming pass for the given player position and returns
// the center chunk. Ensure runs before evict so a large horizontal jump
// never leaves a tick with less than the full window loaded.
func (s *WorldStreamer) Update(playerX float64, playerRow int) int {
	center := s.ChunkAt(playerX)
	s.registry.EnsureWindow(center, s.world.ViewDistance, playerRow)
	s.registry.ExtendIfNeeded(center, s.world.ViewDistance, playerRow)
	s.registry.EvictOutsideWindow(center, s.world.ViewDistance)
	return center
}
