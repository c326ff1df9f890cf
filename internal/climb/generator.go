package climb

import (
	"math/rand"

	"lavaclimb/internal/config"
)

// ChunkGenerator produces terrain for one chunk index on demand: a solid
// floor band plus a run of randomly sized, randomly offset platforms.
// All randomness comes from a single seeded source, so a run is a pure
// function of its seed.
type ChunkGenerator struct {
	world config.WorldConfig
	floor config.FloorConfig
	plats config.PlatformConfig
	rng   *rand.Rand
}

// NewChunkGenerator creates a generator for the given configuration.
func NewChunkGenerator(cfg config.ClimbConfig, seed int64) *ChunkGenerator {
	return &ChunkGenerator{
		world: cfg.World,
		floor: cfg.Floor,
		plats: cfg.Platforms,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Reseed resets the random source. Called when a run restarts.
func (g *ChunkGenerator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// PaintFloor paints the solid floor band across the chunk's full width.
// The topmost row uses edge tiles, the rows beneath fill tiles; the variant
// is chosen by horizontal position, not randomly.
func (g *ChunkGenerator) PaintFloor(grid TileGrid, chunk int) {
	left := chunk * g.world.ChunkWidth
	for d := 0; d < g.floor.Depth; d++ {
		row := g.floor.Row + d
		atlasRow := atlasRowFloorFill
		if d == 0 {
			atlasRow = atlasRowFloorEdge
		}
		for i := 0; i < g.world.ChunkWidth; i++ {
			grid.SetCell(
				CellCoord{X: left + i, Y: row},
				SourceTerrain,
				AtlasCoord{X: i % 3, Y: atlasRow},
			)
		}
	}
}

// GeneratePlatforms paints platforms from startRow upward (decreasing row)
// until the ceiling bound for playerRow, and returns the topmost row reached.
// Repeated calls for the same chunk stack platforms; callers must only repeat
// a chunk when extending above its previous highest row.
func (g *ChunkGenerator) GeneratePlatforms(grid TileGrid, chunk, startRow, playerRow int) int {
	stop := g.Ceiling(playerRow)
	if startRow <= stop {
		return startRow
	}
	return g.generateFrom(grid, chunk, startRow, stop)
}

// Extend continues a chunk's platform run above fromRow. Returns the new
// highest row, or fromRow unchanged when the ceiling bound leaves no room.
func (g *ChunkGenerator) Extend(grid TileGrid, chunk, fromRow, playerRow int) int {
	stop := g.Ceiling(playerRow)
	start := fromRow - g.randSpacing()
	if start <= stop {
		return fromRow
	}
	return g.generateFrom(grid, chunk, start, stop)
}

// Ceiling returns the row generation must not rise past for the given player
// row: lookahead rows above the player, capped at max_height above the floor.
// The lookahead bounds per-call work; the cap bounds total world height.
func (g *ChunkGenerator) Ceiling(playerRow int) int {
	stop := playerRow - g.plats.Lookahead
	if cap := g.floor.Row - g.plats.MaxHeight; stop < cap {
		stop = cap
	}
	return stop
}

// generateFrom paints platforms at startRow and upward while above stop.
func (g *ChunkGenerator) generateFrom(grid TileGrid, chunk, startRow, stop int) int {
	row := startRow
	highest := startRow
	for row > stop {
		g.paintPlatform(grid, chunk, row)
		highest = row
		row -= g.randSpacing()
	}
	return highest
}

// paintPlatform paints one platform of random width at a random horizontal
// offset within the chunk, rendered left-cap / middle-fill / right-cap.
func (g *ChunkGenerator) paintPlatform(grid TileGrid, chunk, row int) {
	width := g.randRange(g.plats.MinWidth, g.plats.MaxWidth)
	offset := g.rng.Intn(g.world.ChunkWidth - width + 1)
	left := chunk*g.world.ChunkWidth + offset

	for i := 0; i < width; i++ {
		variant := 1 // middle fill
		switch i {
		case 0:
			variant = 0
		case width - 1:
			variant = 2
		}
		grid.SetCell(
			CellCoord{X: left + i, Y: row},
			SourceTerrain,
			AtlasCoord{X: variant, Y: atlasRowPlatform},
		)
	}
}

// randSpacing returns a random vertical advance within the configured range.
func (g *ChunkGenerator) randSpacing() int {
	return g.randRange(g.plats.MinSpacing, g.plats.MaxSpacing)
}

// randRange returns a random int in the inclusive range [lo, hi].
func (g *ChunkGenerator) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
