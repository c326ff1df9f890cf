package climb

import (
	"math"

	"lavaclimb/internal/config"
)

// mockGrid records every painted cell so tests can assert exact paint and
// clear behavior without a live screen.
type mockGrid struct {
	tiles  map[CellCoord]Tile
	sets   int
	clears int
}

func newMockGrid() *mockGrid {
	return &mockGrid{tiles: make(map[CellCoord]Tile)}
}

func (m *mockGrid) SetCell(c CellCoord, sourceID int, atlas AtlasCoord) {
	m.sets++
	if sourceID == SourceNone {
		delete(m.tiles, c)
		return
	}
	m.tiles[c] = Tile{Source: sourceID, Atlas: atlas}
}

func (m *mockGrid) ClearCell(c CellCoord) {
	m.clears++
	delete(m.tiles, c)
}

func (m *mockGrid) WorldToCell(x, y float64) CellCoord {
	return CellCoord{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// cellsInChunk returns the painted cells whose column falls inside a chunk.
func (m *mockGrid) cellsInChunk(chunk, chunkWidth int) []CellCoord {
	var out []CellCoord
	left := chunk * chunkWidth
	for c := range m.tiles {
		if c.X >= left && c.X < left+chunkWidth {
			out = append(out, c)
		}
	}
	return out
}

// noBand is a BandDropper for registry tests that do not involve lava.
type noBand struct {
	dropped []int
}

func (n *noBand) DropChunk(chunk int) {
	n.dropped = append(n.dropped, chunk)
}

// testConfig returns the default config, the fixed reference configuration
// for the package tests (chunk width 16, view distance 3).
func testConfig() config.ClimbConfig {
	return config.DefaultClimbConfig()
}
