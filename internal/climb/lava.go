package climb

import (
	"math"
	"math/rand"

	"lavaclimb/internal/config"
)

// LavaEngine owns the rising hazard plane and its painted band. The surface
// row decreases (rises) at a constant rate while the game is live; every
// tick the visible band is fully cleared and repainted across the active
// chunk window, so stale cells never outlive a surface move.
type LavaEngine struct {
	grid  TileGrid
	world config.WorldConfig
	floor config.FloorConfig
	cfg   config.LavaConfig
	rng   *rand.Rand

	row  float64
	band map[int]map[CellCoord]struct{}
}

// NewLavaEngine creates a lava engine painting through grid. The seed only
// affects decorative tile variants, never gameplay.
func NewLavaEngine(grid TileGrid, cfg config.ClimbConfig, seed int64) *LavaEngine {
	return &LavaEngine{
		grid:  grid,
		world: cfg.World,
		floor: cfg.Floor,
		cfg:   cfg.Lava,
		rng:   rand.New(rand.NewSource(seed)),
		band:  make(map[int]map[CellCoord]struct{}),
	}
}

// Reset clears the whole band, returns the surface to its starting row
// below the floor, and repaints around the given player chunk.
func (e *LavaEngine) Reset(playerChunk int) {
	for chunk := range e.band {
		e.DropChunk(chunk)
	}
	e.row = float64(e.floor.Row + e.cfg.StartOffset)
	e.repaint(playerChunk)
}

// Advance raises the surface by speed*dt rows, repaints the band across the
// active window, and prunes cells left far below the surface.
func (e *LavaEngine) Advance(dt, speed float64, playerChunk int) {
	e.row -= speed * dt
	e.repaint(playerChunk)
	e.prune()
}

// Row returns the current surface row in tile units.
func (e *LavaEngine) Row() float64 {
	return e.row
}

// SurfaceY returns the surface height in world units.
func (e *LavaEngine) SurfaceY() float64 {
	return e.row * e.world.TileSize
}

// Touches reports whether the hazard has reached the given player world Y.
// A one-sided half-plane test: horizontal position is ignored, the lava
// spans the whole world width.
func (e *LavaEngine) Touches(playerWorldY float64) bool {
	return playerWorldY-e.cfg.CollisionOffset >= e.SurfaceY()
}

// DropChunk clears and untracks every lava cell owned by a chunk index.
// Called by chunk eviction and by Reset. Unknown chunks are a no-op.
func (e *LavaEngine) DropChunk(chunk int) {
	for cell := range e.band[chunk] {
		e.grid.ClearCell(cell)
	}
	delete(e.band, chunk)
}

// CellCount returns the number of tracked lava cells. Used by tests to
// assert the band stays bounded.
func (e *LavaEngine) CellCount() int {
	n := 0
	for _, cells := range e.band {
		n += len(cells)
	}
	return n
}

// repaint regenerates the band for every chunk in the active hazard window:
// previous cells cleared, then a fresh rectangular band of thickness rows
// starting at floor(row). Tile variants are decorative only.
func (e *LavaEngine) repaint(playerChunk int) {
	surface := int(math.Floor(e.row))
	half := e.world.ViewDistance + e.cfg.WindowMargin

	for chunk := playerChunk - half; chunk <= playerChunk+half; chunk++ {
		for cell := range e.band[chunk] {
			e.grid.ClearCell(cell)
		}
		cells := make(map[CellCoord]struct{}, e.world.ChunkWidth*e.cfg.Thickness)
		left := chunk * e.world.ChunkWidth

		for d := 0; d < e.cfg.Thickness; d++ {
			row := surface + d
			for i := 0; i < e.world.ChunkWidth; i++ {
				cell := CellCoord{X: left + i, Y: row}
				var atlas AtlasCoord
				if d == 0 {
					atlas = AtlasCoord{X: e.rng.Intn(len(lavaSurfaceGlyphs)), Y: atlasRowLavaSurface}
				} else {
					atlas = AtlasCoord{X: e.rng.Intn(len(lavaBodyGlyphs)), Y: atlasRowLavaBody}
				}
				e.grid.SetCell(cell, SourceLava, atlas)
				cells[cell] = struct{}{}
			}
		}
		e.band[chunk] = cells
	}
}

// prune clears any tracked cell that has fallen far enough below the surface
// to be permanently off-screen, bounding the band to a small multiple of
// window width times thickness.
func (e *LavaEngine) prune() {
	limit := e.row + float64(e.cfg.Thickness+e.cfg.PruneMargin)
	for chunk, cells := range e.band {
		for cell := range cells {
			if float64(cell.Y) > limit {
				e.grid.ClearCell(cell)
				delete(cells, cell)
			}
		}
		if len(cells) == 0 {
			delete(e.band, chunk)
		}
	}
}
