package climb

import (
	"fmt"

	"lavaclimb/internal/config"
	"lavaclimb/internal/core"
)

// Game is the full climb game, advanced one fixed tick at a time. Each live
// tick runs in a strict order: state gate, world streaming, lava advance,
// collision check. Everything happens on the single tick goroutine; there
// is no locking and no background work.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.ClimbConfig
	difficulty *config.DifficultyManager
	dt         float64

	grid     *SparseGrid
	gen      *ChunkGenerator
	registry *ChunkRegistry
	lava     *LavaEngine
	streamer *WorldStreamer
	state    *StateMachine
	player   *Player

	tickCount int
	runCount  int64
	bestRow   int // most negative (highest) row reached this run
	paused    bool
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new climb game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climb"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lava Climb"
}

// Reset initializes or restarts the game from scratch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadClimb(configPath)
	if err != nil {
		cfg = config.DefaultClimbConfig()
	}
	if difficultyPreset != "" {
		config.ApplyClimbPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.grid = NewSparseGrid(cfg.World.TileSize)
	g.gen = NewChunkGenerator(cfg, runtime.Seed)
	g.lava = NewLavaEngine(g.grid, cfg, runtime.Seed+1)
	g.registry = NewChunkRegistry(g.grid, g.gen, g.lava, cfg)
	g.streamer = NewWorldStreamer(g.registry, cfg.World)
	g.state = NewStateMachine(cfg.Flow)
	g.player = NewPlayer(cfg.Player, cfg.World.TileSize, cfg.Floor.Row)

	g.tickCount = 0
	g.runCount = 0
	g.paused = false
	g.spawnWorld()
}

// spawnWorld builds the initial chunk window and lava band around the
// freshly respawned player.
func (g *Game) spawnWorld() {
	g.bestRow = g.player.Row()
	center := g.streamer.ChunkAt(g.player.X)
	g.registry.EnsureWindow(center, g.cfg.World.ViewDistance, g.player.Row())
	g.lava.Reset(center)
}

// restartWorld performs the full mid-cycle restart after the death fade:
// clear everything, respawn, rebuild the window, lava back to start.
func (g *Game) restartWorld() {
	g.registry.Clear()
	g.runCount++
	g.gen.Reseed(g.runtime.Seed + g.runCount)
	g.player.Respawn(g.cfg.Floor.Row)
	g.spawnWorld()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.state.Tick(g.dt) == TransitionRestartWorld {
		g.restartWorld()
	}

	switch {
	case g.state.Playing():
		g.player.Move(in, g.dt, g.grid)
		playerRow := g.player.Row()
		if playerRow < g.bestRow {
			g.bestRow = playerRow
		}

		center := g.streamer.Update(g.player.X, playerRow)

		speed := g.difficulty.LavaSpeed(g.cfg.Lava.Speed, g.Height(), g.tickCount)
		g.lava.Advance(g.dt, speed, center)

		g.checkLavaCollision()

	case g.state.Phase() == PhaseGameOver:
		g.player.TickDeath(g.dt)
	}

	return core.StepResult{State: g.State()}
}

// checkLavaCollision runs the half-plane hazard test and, on first contact,
// starts the death sequence. Repeat contact while already dead is a no-op.
func (g *Game) checkLavaCollision() {
	if !g.lava.Touches(g.player.WorldY()) {
		return
	}
	if !g.state.TriggerGameOver() {
		return
	}
	// The death animation is an optional avatar capability; an avatar
	// without it is hidden instead.
	var avatar any = g.player
	if da, ok := avatar.(DeathAnimator); ok {
		da.PlayDeath()
	} else {
		g.player.SetVisible(false)
	}
}

// Height returns how many rows the player has climbed above the spawn row
// during this run.
func (g *Game) Height() int {
	spawnRow := g.cfg.Floor.Row - 1
	return spawnRow - g.bestRow
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	camX := g.player.Col() - w/2
	camY := g.player.Row() - h*2/3

	for sy := 0; sy < h; sy++ {
		wy := camY + sy
		for sx := 0; sx < w; sx++ {
			if t, ok := g.grid.At(CellCoord{X: camX + sx, Y: wy}); ok {
				r, c := tileGlyph(t)
				dst.SetCell(sx, sy, r, c)
			}
		}
	}

	if g.player.Visible() {
		r, c := g.player.Glyph()
		dst.SetCell(g.player.Col()-camX, g.player.Row()-camY, r, c)
	}

	g.drawHUD(dst)

	if txt, ok := g.state.CountdownText(); ok {
		dst.DrawTextCentered(h/3, txt, core.ColorBrightWhite)
	}

	if g.state.Phase() == PhaseGameOver {
		dst.DrawTextCentered(h/2-1, "YOU MELTED", core.ColorBrightRed)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Height: %d", g.Height()), core.ColorWhite)
	}

	g.drawFade(dst)

	if g.paused {
		dst.DrawTextCentered(h/2, "PAUSED - press P to resume", core.ColorBrightWhite)
	}
}

// drawHUD draws the height counter and the lava proximity readout.
func (g *Game) drawHUD(dst *core.Screen) {
	height := fmt.Sprintf(" Height: %d ", g.Height())
	dst.DrawTextColored(2, 0, height, core.ColorBrightWhite)

	gap := int(g.lava.Row() - g.player.Y)
	if gap < 0 {
		gap = 0
	}
	lava := fmt.Sprintf(" Lava: %d ", gap)
	color := core.ColorOrange
	if gap <= 8 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(lava)-2, 0, lava, color)
}

// drawFade blanks a deterministic dither pattern of cells proportional to
// the fade alpha; at alpha 1 the whole screen is dark.
func (g *Game) drawFade(dst *core.Screen) {
	alpha := g.state.FadeAlpha()
	if alpha <= 0 {
		return
	}
	threshold := int(alpha * 16)
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*3+y*7)%16 < threshold {
				dst.SetCell(x, y, ' ', core.ColorDefault)
			}
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Height(),
		GameOver: g.state.GameOver(),
		Paused:   g.paused,
	}
}
