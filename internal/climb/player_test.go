package climb

import (
	"testing"

	"lavaclimb/internal/core"
)

const playerDT = 1.0 / 60.0

// floorGrid paints a solid floor row across the given columns and returns
// the live grid the avatar collides against.
func floorGrid(row, fromCol, toCol int) *SparseGrid {
	grid := NewSparseGrid(1.0)
	for x := fromCol; x <= toCol; x++ {
		grid.SetCell(CellCoord{X: x, Y: row}, SourceTerrain, AtlasCoord{Y: atlasRowFloorEdge})
	}
	return grid
}

func newTestPlayer() *Player {
	cfg := testConfig()
	return NewPlayer(cfg.Player, cfg.World.TileSize, cfg.Floor.Row)
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestPlayerSpawnsOnFloor(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer()

	if p.X != cfg.Player.SpawnX {
		t.Errorf("Spawn X = %v, expected %v", p.X, cfg.Player.SpawnX)
	}
	if p.Row() != cfg.Floor.Row-1 {
		t.Errorf("Spawn row = %d, expected %d", p.Row(), cfg.Floor.Row-1)
	}
	if !p.Visible() {
		t.Error("Spawned avatar should be visible")
	}
}

func TestPlayerWalksHorizontally(t *testing.T) {
	grid := floorGrid(0, -50, 50)
	p := newTestPlayer()

	x0 := p.X
	for i := 0; i < 30; i++ {
		p.Move(frame(core.ActionRight), playerDT, grid)
	}
	if p.X <= x0 {
		t.Errorf("Right input did not move the avatar right: %v -> %v", x0, p.X)
	}

	x1 := p.X
	for i := 0; i < 60; i++ {
		p.Move(frame(core.ActionLeft), playerDT, grid)
	}
	if p.X >= x1 {
		t.Errorf("Left input did not move the avatar left: %v -> %v", x1, p.X)
	}

	// Standing on the floor the whole time
	if p.Row() != -1 {
		t.Errorf("Avatar left the floor while walking: row %d", p.Row())
	}
}

func TestPlayerBlockedBySolidWall(t *testing.T) {
	grid := floorGrid(0, 0, 20)
	// A wall at the avatar's own row
	grid.SetCell(CellCoord{X: 10, Y: -1}, SourceTerrain, AtlasCoord{Y: atlasRowPlatform})
	p := newTestPlayer()

	for i := 0; i < 120; i++ {
		p.Move(frame(core.ActionRight), playerDT, grid)
	}

	if p.Col() >= 10 {
		t.Errorf("Avatar walked through a solid wall to column %d", p.Col())
	}
}

func TestPlayerJumpRisesAndReturns(t *testing.T) {
	grid := floorGrid(0, -50, 50)
	p := newTestPlayer()

	p.Move(frame(core.ActionJump), playerDT, grid)
	if p.Y >= -1 {
		t.Fatal("Jump did not lift the avatar")
	}

	minY := p.Y
	for i := 0; i < 300; i++ {
		p.Move(frame(), playerDT, grid)
		if p.Y < minY {
			minY = p.Y
		}
	}

	if minY >= -2 {
		t.Errorf("Jump apex %v never cleared a full row", minY)
	}
	if p.Y != -1 {
		t.Errorf("Avatar did not land back on the floor: Y = %v", p.Y)
	}
}

func TestPlayerJumpIgnoredInAir(t *testing.T) {
	grid := floorGrid(0, -50, 50)
	p := newTestPlayer()

	p.Move(frame(core.ActionJump), playerDT, grid)
	y1 := p.Y

	// A second jump press mid-air must not add impulse: velocity keeps
	// decaying under gravity exactly as if no key was pressed
	p.Move(frame(core.ActionJump), playerDT, grid)
	cfg := testConfig()
	v := cfg.Player.JumpImpulse + cfg.Player.Gravity*playerDT*2
	wantY := y1 + v*playerDT
	if diff := p.Y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Mid-air jump changed the trajectory: Y = %v, expected %v", p.Y, wantY)
	}
}

func TestPlayerPassesThroughPlatformRisingAndLandsFalling(t *testing.T) {
	grid := floorGrid(0, -50, 50)
	// A one-way platform two rows above the avatar's head
	for x := 0; x <= 20; x++ {
		grid.SetCell(CellCoord{X: x, Y: -3}, SourceTerrain, AtlasCoord{Y: atlasRowPlatform})
	}
	p := newTestPlayer()

	p.Move(frame(core.ActionJump), playerDT, grid)

	passedThrough := false
	for i := 0; i < 300; i++ {
		p.Move(frame(), playerDT, grid)
		if p.Row() < -3 {
			passedThrough = true
		}
		if p.Row() == -4 && p.Y == -4 {
			break
		}
	}

	if !passedThrough {
		t.Fatal("Rising avatar never passed through the platform")
	}
	if p.Y != -4 {
		t.Errorf("Falling avatar landed at Y = %v, expected on top of the platform at -4", p.Y)
	}
}

func TestPlayerFallsOffEdge(t *testing.T) {
	grid := floorGrid(0, 0, 10)
	p := newTestPlayer()

	// Walk right past the floor's edge
	for i := 0; i < 600 && p.Row() <= 0; i++ {
		p.Move(frame(core.ActionRight), playerDT, grid)
	}

	if p.Row() <= 0 {
		t.Fatal("Avatar never fell off the floor edge")
	}
}

func TestPlayerFallSpeedClamped(t *testing.T) {
	cfg := testConfig()
	grid := NewSparseGrid(1.0) // bottomless
	p := newTestPlayer()

	maxDrop := cfg.Player.MaxFallSpeed*playerDT + 1e-9
	prev := p.Y
	for i := 0; i < 300; i++ {
		p.Move(frame(), playerDT, grid)
		if p.Y-prev > maxDrop {
			t.Fatalf("Fell %v rows in one tick, terminal velocity allows %v", p.Y-prev, maxDrop)
		}
		prev = p.Y
	}
}

func TestPlayerDeathAnimationHidesAvatar(t *testing.T) {
	p := newTestPlayer()

	p.PlayDeath()
	if !p.Visible() {
		t.Fatal("Avatar should stay visible while the death animation runs")
	}

	g0, _ := p.Glyph()
	if g0 == '@' {
		t.Error("Dying avatar should not use the live glyph")
	}

	for i := 0; i < int(deathDuration/playerDT)+2; i++ {
		p.TickDeath(playerDT)
	}
	if p.Visible() {
		t.Error("Avatar should hide once the death animation ends")
	}
}

func TestPlayerRespawnRestoresState(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer()

	p.PlayDeath()
	for i := 0; i < 100; i++ {
		p.TickDeath(playerDT)
	}
	p.X = 400

	p.Respawn(cfg.Floor.Row)

	if p.X != cfg.Player.SpawnX || p.Row() != cfg.Floor.Row-1 {
		t.Errorf("Respawn left avatar at (%v, row %d)", p.X, p.Row())
	}
	if !p.Visible() {
		t.Error("Respawned avatar should be visible")
	}
	if r, _ := p.Glyph(); r != '@' {
		t.Errorf("Respawned avatar glyph = %q, expected '@'", r)
	}
}
