package climb

import (
	"math"
	"testing"
)

func newTestLava(seed int64) (*LavaEngine, *mockGrid) {
	grid := newMockGrid()
	return NewLavaEngine(grid, testConfig(), seed), grid
}

func TestLavaStartsBelowFloor(t *testing.T) {
	cfg := testConfig()
	lava, _ := newTestLava(1)

	lava.Reset(0)

	want := float64(cfg.Floor.Row + cfg.Lava.StartOffset)
	if lava.Row() != want {
		t.Errorf("Starting row = %v, expected %v", lava.Row(), want)
	}
}

func TestLavaRisesMonotonically(t *testing.T) {
	lava, _ := newTestLava(2)
	lava.Reset(0)

	prev := lava.Row()
	for i := 0; i < 200; i++ {
		lava.Advance(1.0/60.0, 1.2, 0)
		if lava.Row() >= prev {
			t.Fatalf("Surface did not rise on tick %d: %v -> %v", i, prev, lava.Row())
		}
		prev = lava.Row()
	}

	// Constant speed: total movement equals speed * elapsed time
	start := float64(testConfig().Floor.Row + testConfig().Lava.StartOffset)
	moved := start - lava.Row()
	want := 1.2 * 200.0 / 60.0
	if math.Abs(moved-want) > 1e-9 {
		t.Errorf("Surface moved %v rows, expected %v", moved, want)
	}
}

func TestLavaBandLeavesNoStaleCells(t *testing.T) {
	cfg := testConfig()
	lava, grid := newTestLava(3)
	lava.Reset(0)

	// Run long enough for the surface to cross many rows; every painted lava
	// cell must be inside the current band rectangle
	for i := 0; i < 600; i++ {
		lava.Advance(1.0/60.0, 2.0, 0)
	}

	surface := int(math.Floor(lava.Row()))
	for c, tile := range grid.tiles {
		if tile.Source != SourceLava {
			continue
		}
		if c.Y < surface || c.Y >= surface+cfg.Lava.Thickness {
			t.Errorf("Stale lava cell at row %d, band is [%d, %d)", c.Y, surface, surface+cfg.Lava.Thickness)
		}
	}
}

func TestLavaBandStaysBounded(t *testing.T) {
	cfg := testConfig()
	lava, _ := newTestLava(4)
	lava.Reset(0)

	windowChunks := 2*(cfg.World.ViewDistance+cfg.Lava.WindowMargin) + 1
	bound := windowChunks * cfg.World.ChunkWidth * (cfg.Lava.Thickness + cfg.Lava.PruneMargin + 1)

	for i := 0; i < 2000; i++ {
		lava.Advance(1.0/60.0, 3.0, 0)
		if n := lava.CellCount(); n > bound {
			t.Fatalf("Band grew to %d cells on tick %d, bound is %d", n, i, bound)
		}
	}
}

func TestLavaDropChunkClearsBand(t *testing.T) {
	cfg := testConfig()
	lava, grid := newTestLava(5)
	lava.Reset(0)

	lava.DropChunk(0)

	if cells := grid.cellsInChunk(0, cfg.World.ChunkWidth); len(cells) != 0 {
		t.Errorf("Chunk 0 still has %d lava cells after DropChunk", len(cells))
	}
	// Unknown chunk is a no-op
	lava.DropChunk(1000)
}

func TestLavaWindowFollowsPlayer(t *testing.T) {
	cfg := testConfig()
	lava, grid := newTestLava(6)
	lava.Reset(0)

	lava.Advance(1.0/60.0, 1.2, 20)

	half := cfg.World.ViewDistance + cfg.Lava.WindowMargin
	if cells := grid.cellsInChunk(20-half, cfg.World.ChunkWidth); len(cells) == 0 {
		t.Errorf("No lava painted at the left edge of the window around chunk 20")
	}
	if cells := grid.cellsInChunk(20+half, cfg.World.ChunkWidth); len(cells) == 0 {
		t.Errorf("No lava painted at the right edge of the window around chunk 20")
	}
}

func TestLavaTouchesHalfPlane(t *testing.T) {
	lava, _ := newTestLava(7)
	lava.Reset(0) // surface at row 12 with the default config

	cases := []struct {
		name    string
		playerY float64
		want    bool
	}{
		{"far above", 0.0, false},
		{"one row above surface", 10.9, false},
		{"feet exactly at surface", 11.0, true},
		{"anchor at surface", 12.0, true},
		{"below surface", 20.0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lava.Touches(tc.playerY); got != tc.want {
				t.Errorf("Touches(%v) = %v, expected %v", tc.playerY, got, tc.want)
			}
		})
	}
}

func TestLavaResetAfterAdvance(t *testing.T) {
	cfg := testConfig()
	lava, grid := newTestLava(8)
	lava.Reset(0)

	for i := 0; i < 300; i++ {
		lava.Advance(1.0/60.0, 2.0, 0)
	}

	lava.Reset(0)

	want := float64(cfg.Floor.Row + cfg.Lava.StartOffset)
	if lava.Row() != want {
		t.Errorf("Row after Reset = %v, expected %v", lava.Row(), want)
	}
	surface := int(math.Floor(lava.Row()))
	for c, tile := range grid.tiles {
		if tile.Source == SourceLava && (c.Y < surface || c.Y >= surface+cfg.Lava.Thickness) {
			t.Errorf("Reset left a lava cell at row %d", c.Y)
		}
	}
}
