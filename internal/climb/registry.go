package climb

import (
	"sort"

	"lavaclimb/internal/config"
	"lavaclimb/internal/core"
)

// BandDropper releases hazard cells owned by a chunk index. Implemented by
// the lava engine; eviction and hazard cleanup key chunks identically so no
// cell can leak between them.
type BandDropper interface {
	DropChunk(chunk int)
}

// chunkRecord tracks one materialized chunk: its topmost platform row and
// every cell it has painted, so eviction clears exactly what was created.
type chunkRecord struct {
	highestRow int
	cells      map[CellCoord]struct{}
}

// ChunkRegistry owns chunk metadata. It is the only writer of the loaded
// set and of per-chunk highest rows; a chunk is either fully present
// (floor painted, record held) or fully absent.
type ChunkRegistry struct {
	grid   TileGrid
	gen    *ChunkGenerator
	lava   BandDropper
	world  config.WorldConfig
	floor  config.FloorConfig
	plats  config.PlatformConfig
	chunks map[int]*chunkRecord
}

// NewChunkRegistry creates an empty registry painting through grid.
func NewChunkRegistry(grid TileGrid, gen *ChunkGenerator, lava BandDropper, cfg config.ClimbConfig) *ChunkRegistry {
	return &ChunkRegistry{
		grid:   grid,
		gen:    gen,
		lava:   lava,
		world:  cfg.World,
		floor:  cfg.Floor,
		plats:  cfg.Platforms,
		chunks: make(map[int]*chunkRecord, 2*cfg.World.ViewDistance+1),
	}
}

// IsLoaded reports whether a chunk is materialized.
func (r *ChunkRegistry) IsLoaded(chunk int) bool {
	_, ok := r.chunks[chunk]
	return ok
}

// Loaded returns the sorted indices of all materialized chunks.
func (r *ChunkRegistry) Loaded() []int {
	out := make([]int, 0, len(r.chunks))
	for idx := range r.chunks {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// HighestRow returns the topmost generated platform row of a loaded chunk.
func (r *ChunkRegistry) HighestRow(chunk int) (int, bool) {
	rec, ok := r.chunks[chunk]
	if !ok {
		return 0, false
	}
	return rec.highestRow, true
}

// EnsureWindow materializes every missing chunk in [center-radius, center+radius]:
// floor plus an initial platform run starting a few rows above the floor.
// Already-loaded chunks are left untouched.
func (r *ChunkRegistry) EnsureWindow(center, radius, playerRow int) {
	for chunk := center - radius; chunk <= center+radius; chunk++ {
		if r.IsLoaded(chunk) {
			continue
		}
		rec := &chunkRecord{cells: make(map[CellCoord]struct{}, 128)}
		painter := &recordingGrid{inner: r.grid, cells: rec.cells}

		r.gen.PaintFloor(painter, chunk)
		start := r.floor.Row - r.plats.InitialGap
		rec.highestRow = r.gen.GeneratePlatforms(painter, chunk, start, playerRow)
		r.chunks[chunk] = rec
	}
}

// EvictOutsideWindow removes every loaded chunk farther than radius from
// center: all of its painted cells are cleared, its lava band dropped, and
// its record deleted. In-window chunks are untouched.
func (r *ChunkRegistry) EvictOutsideWindow(center, radius int) {
	for chunk, rec := range r.chunks {
		if core.Abs(chunk-center) <= radius {
			continue
		}
		for cell := range rec.cells {
			r.grid.ClearCell(cell)
		}
		if r.lava != nil {
			r.lava.DropChunk(chunk)
		}
		delete(r.chunks, chunk)
	}
}

// ExtendIfNeeded generates additional platforms for every in-window chunk
// whose highest platform is within the closeness threshold of the player's
// row. This is what makes the climb endless without pre-generating
// unbounded height.
func (r *ChunkRegistry) ExtendIfNeeded(center, radius, playerRow int) {
	for chunk, rec := range r.chunks {
		if core.Abs(chunk-center) > radius {
			continue
		}
		if rec.highestRow < playerRow-r.plats.ExtendThreshold {
			continue // still comfortably above the player
		}
		painter := &recordingGrid{inner: r.grid, cells: rec.cells}
		rec.highestRow = r.gen.Extend(painter, chunk, rec.highestRow, playerRow)
	}
}

// Clear removes every chunk and its painted cells. Used on run restart.
func (r *ChunkRegistry) Clear() {
	for chunk, rec := range r.chunks {
		for cell := range rec.cells {
			r.grid.ClearCell(cell)
		}
		delete(r.chunks, chunk)
	}
}

// recordingGrid tees every painted cell into a chunk's cell set while
// passing the call through to the real grid.
type recordingGrid struct {
	inner TileGrid
	cells map[CellCoord]struct{}
}

func (g *recordingGrid) SetCell(c CellCoord, sourceID int, atlas AtlasCoord) {
	g.cells[c] = struct{}{}
	g.inner.SetCell(c, sourceID, atlas)
}

func (g *recordingGrid) ClearCell(c CellCoord) {
	delete(g.cells, c)
	g.inner.ClearCell(c)
}

func (g *recordingGrid) WorldToCell(x, y float64) CellCoord {
	return g.inner.WorldToCell(x, y)
}
