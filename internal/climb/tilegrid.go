// Package climb implements the endless vertical-escape platformer: procedural
// chunk streaming, a rising lava hazard, and the countdown/death/restart cycle.
// Rows grow downward, so climbing means decreasing row values.
package climb

import (
	"math"

	"lavaclimb/internal/core"
)

// CellCoord identifies one tile cell. X is the column, Y the row.
type CellCoord struct {
	X, Y int
}

// AtlasCoord selects a glyph variant within a tile source.
type AtlasCoord struct {
	X, Y int
}

// Tile source identifiers.
const (
	SourceNone    = -1
	SourceTerrain = 0
	SourceLava    = 1
)

// TileGrid is the painting surface generation and hazard code draw on.
// Keeping it narrow lets tests record calls against a mock grid.
type TileGrid interface {
	// SetCell paints one cell with a glyph from the given source.
	SetCell(c CellCoord, sourceID int, atlas AtlasCoord)
	// ClearCell erases one cell. Clearing an empty cell is a no-op.
	ClearCell(c CellCoord)
	// WorldToCell converts world coordinates to the containing cell.
	WorldToCell(x, y float64) CellCoord
}

// Tile is one painted cell as stored by the grid.
type Tile struct {
	Source int
	Atlas  AtlasCoord
}

// SparseGrid is the concrete TileGrid: an unbounded sparse tile store.
// The renderer reads it back and player physics query it for solidity.
type SparseGrid struct {
	tileSize float64
	tiles    map[CellCoord]Tile
}

// NewSparseGrid creates an empty grid with the given world units per cell.
func NewSparseGrid(tileSize float64) *SparseGrid {
	return &SparseGrid{
		tileSize: tileSize,
		tiles:    make(map[CellCoord]Tile, 4096),
	}
}

// SetCell paints one cell. A SourceNone sourceID clears instead.
func (g *SparseGrid) SetCell(c CellCoord, sourceID int, atlas AtlasCoord) {
	if sourceID == SourceNone {
		delete(g.tiles, c)
		return
	}
	g.tiles[c] = Tile{Source: sourceID, Atlas: atlas}
}

// ClearCell erases one cell.
func (g *SparseGrid) ClearCell(c CellCoord) {
	delete(g.tiles, c)
}

// WorldToCell converts world coordinates to the containing cell.
func (g *SparseGrid) WorldToCell(x, y float64) CellCoord {
	return CellCoord{
		X: int(math.Floor(x / g.tileSize)),
		Y: int(math.Floor(y / g.tileSize)),
	}
}

// At returns the tile painted at a cell, if any.
func (g *SparseGrid) At(c CellCoord) (Tile, bool) {
	t, ok := g.tiles[c]
	return t, ok
}

// SolidAt reports whether a cell holds terrain the player can stand on.
// Lava is not solid; falling into it is handled by the hazard check.
func (g *SparseGrid) SolidAt(c CellCoord) bool {
	t, ok := g.tiles[c]
	return ok && t.Source == SourceTerrain
}

// Len returns the number of painted cells. Used by tests and the HUD.
func (g *SparseGrid) Len() int {
	return len(g.tiles)
}

// Atlas layout. Terrain rows: floor edge, floor fill, platform caps.
// Lava rows: surface, body. The X coordinate picks the variant.
const (
	atlasRowFloorEdge = 0
	atlasRowFloorFill = 1
	atlasRowPlatform  = 2

	atlasRowLavaSurface = 0
	atlasRowLavaBody    = 1
)

var (
	floorEdgeGlyphs   = []rune{'▓', '▒', '▓'}
	floorFillGlyphs   = []rune{'█', '█', '▓'}
	platformGlyphs    = []rune{'╞', '═', '╡'}
	lavaSurfaceGlyphs = []rune{'~', '≈', '^'}
	lavaBodyGlyphs    = []rune{'█', '▓'}
)

// tileGlyph maps a painted tile to its screen rune and color.
func tileGlyph(t Tile) (rune, core.Color) {
	switch t.Source {
	case SourceTerrain:
		switch t.Atlas.Y {
		case atlasRowFloorEdge:
			return floorEdgeGlyphs[t.Atlas.X%len(floorEdgeGlyphs)], core.ColorGray
		case atlasRowFloorFill:
			return floorFillGlyphs[t.Atlas.X%len(floorFillGlyphs)], core.ColorGray
		case atlasRowPlatform:
			return platformGlyphs[core.Clamp(t.Atlas.X, 0, len(platformGlyphs)-1)], core.ColorGreen
		}
	case SourceLava:
		switch t.Atlas.Y {
		case atlasRowLavaSurface:
			return lavaSurfaceGlyphs[t.Atlas.X%len(lavaSurfaceGlyphs)], core.ColorBrightRed
		case atlasRowLavaBody:
			return lavaBodyGlyphs[t.Atlas.X%len(lavaBodyGlyphs)], core.ColorRed
		}
	}
	return '?', core.ColorDefault
}
