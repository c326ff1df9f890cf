package climb

import (
	"math"

	"lavaclimb/internal/config"
	"lavaclimb/internal/core"
)

// Solidity answers terrain queries for movement collision.
type Solidity interface {
	SolidAt(c CellCoord) bool
}

// DeathAnimator is an optional capability: an avatar that can play a death
// animation. Avatars without it are simply hidden on death.
type DeathAnimator interface {
	PlayDeath()
}

// Player is the climbing avatar: a world position with simple platformer
// physics. Platforms are one-way: the player passes through them while
// rising and lands on them while falling. The anchor is the top of the
// occupied cell; Y decreases as the player climbs.
type Player struct {
	cfg      config.PlayerConfig
	tileSize float64

	X, Y     float64
	velY     float64
	grounded bool
	visible  bool

	dying        bool
	deathElapsed float64
}

// deathDuration is how long the death flicker runs before the avatar hides.
const deathDuration = 0.6

var deathGlyphs = []rune{'✶', '✹', '✸', '·'}

// NewPlayer creates an avatar at its spawn point on the given floor row.
func NewPlayer(cfg config.PlayerConfig, tileSize float64, floorRow int) *Player {
	p := &Player{cfg: cfg, tileSize: tileSize}
	p.Respawn(floorRow)
	return p
}

// Respawn puts the avatar back at the spawn point, standing on the floor.
func (p *Player) Respawn(floorRow int) {
	p.X = p.cfg.SpawnX
	p.Y = float64(floorRow - 1)
	p.velY = 0
	p.grounded = true
	p.visible = true
	p.dying = false
	p.deathElapsed = 0
}

// Move advances the avatar by one tick of input and physics.
func (p *Player) Move(in core.InputFrame, dt float64, solid Solidity) {
	// Walking off an edge starts a fall
	if p.grounded && !solid.SolidAt(p.cellBelow()) {
		p.grounded = false
	}

	if in.Has(core.ActionJump) && p.grounded {
		p.velY = p.cfg.JumpImpulse
		p.grounded = false
	}

	var vx float64
	if in.Has(core.ActionLeft) {
		vx -= p.cfg.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		vx += p.cfg.MoveSpeed
	}

	if !p.grounded {
		p.velY += p.cfg.Gravity * dt
		if p.velY > p.cfg.MaxFallSpeed {
			p.velY = p.cfg.MaxFallSpeed
		}
	}

	// Horizontal: blocked by solid terrain at the occupied row
	newX := p.X + vx*dt
	if !solid.SolidAt(CellCoord{X: p.col(newX), Y: p.Row()}) {
		p.X = newX
	}

	// Vertical: rising passes through platforms, falling lands on the
	// first solid cell crossed
	newY := p.Y + p.velY*dt
	if p.velY < 0 {
		p.Y = newY
		return
	}

	fromRow := int(math.Floor(p.Y))
	toRow := int(math.Floor(newY))
	for row := fromRow + 1; row <= toRow+1; row++ {
		if solid.SolidAt(CellCoord{X: p.col(p.X), Y: row}) {
			p.Y = float64(row - 1)
			p.velY = 0
			p.grounded = true
			return
		}
	}
	p.Y = newY
}

// Row returns the row of the occupied cell.
func (p *Player) Row() int {
	return int(math.Floor(p.Y))
}

// Col returns the column of the occupied cell.
func (p *Player) Col() int {
	return p.col(p.X)
}

// WorldY returns the avatar's anchor height in world units.
func (p *Player) WorldY() float64 {
	return p.Y * p.tileSize
}

// Visible reports whether the avatar should be drawn.
func (p *Player) Visible() bool {
	return p.visible
}

// SetVisible is the fallback for avatars without a death animation.
func (p *Player) SetVisible(v bool) {
	p.visible = v
}

// PlayDeath starts the death flicker. Implements DeathAnimator.
func (p *Player) PlayDeath() {
	p.dying = true
	p.deathElapsed = 0
}

// TickDeath advances the death animation; the avatar hides when it ends.
func (p *Player) TickDeath(dt float64) {
	if !p.dying {
		return
	}
	p.deathElapsed += dt
	if p.deathElapsed >= deathDuration {
		p.dying = false
		p.visible = false
	}
}

// Glyph returns the rune and color the avatar is drawn with.
func (p *Player) Glyph() (rune, core.Color) {
	if p.dying {
		frame := int(p.deathElapsed/(deathDuration/float64(len(deathGlyphs)))) % len(deathGlyphs)
		return deathGlyphs[frame], core.ColorBrightYellow
	}
	return '@', core.ColorBrightYellow
}

func (p *Player) col(x float64) int {
	return int(math.Floor(x / p.tileSize))
}

func (p *Player) cellBelow() CellCoord {
	return CellCoord{X: p.Col(), Y: p.Row() + 1}
}
