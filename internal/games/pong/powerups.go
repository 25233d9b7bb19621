package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// PowerUpKind selects what a power-up does when the ball touches it.
type PowerUpKind int

const (
	PowerUpSpeedBoost PowerUpKind = iota // Next hits by the shooter are full power
	PowerUpGravity                       // Ball falls toward the floor
	powerUpKindCount
)

// AllPowerUpKinds lists every kind, in spawn-table order.
func AllPowerUpKinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, powerUpKindCount)
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParsePowerUpKind returns the kind whose String is name.
func ParsePowerUpKind(name string) (PowerUpKind, error) {
	for _, k := range AllPowerUpKinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("pong: unknown power-up kind %q", name)
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeedBoost:
		return "speed-boost"
	case PowerUpGravity:
		return "gravity"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for the power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSpeedBoost:
		return 'P'
	case PowerUpGravity:
		return 'G'
	default:
		return '?'
	}
}

// Color returns the display color for the power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpSpeedBoost:
		return core.ColorMagenta
	case PowerUpGravity:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// PowerUp is the single optional pickup on the table. The zero value is "none".
type PowerUp struct {
	Active bool
	Pos    core.Vector
	Kind   PowerUpKind
}

// Effect is what picking up a power-up does to the state.
type Effect func(GameState) GameState

// Rand is the randomness the spawn policy draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// effectFor binds the effect of kind k to the engine settings.
func effectFor(s Settings, k PowerUpKind) Effect {
	switch k {
	case PowerUpSpeedBoost:
		return speedBoost
	case PowerUpGravity:
		return gravity(s.GravityAcc)
	default:
		return consumePowerUp
	}
}

// speedBoost arms the paddle that last sent the ball: a rightward ball came
// off the left paddle and a leftward one off the right paddle.
func speedBoost(st GameState) GameState {
	switch {
	case st.Ball.Vel.X > 0:
		st.LeftPaddle.PowerShotMode = true
	case st.Ball.Vel.X < 0:
		st.RightPaddle.PowerShotMode = true
	}
	return consumePowerUp(st)
}

func gravity(acc float64) Effect {
	return func(st GameState) GameState {
		st.Ball.Acc = core.Vec(0, acc)
		st.Ball.Colour = core.ColorGreen
		return consumePowerUp(st)
	}
}

func consumePowerUp(st GameState) GameState {
	st.PowerUp = PowerUp{}
	st.PowerUpUsedThisRound = true
	return st
}

// maybeSpawnPowerUp places a power-up with probability PowerUpChance, unless
// one is live or one was already used this round. The position is uniform
// over the central quarter of the playfield.
func (e *Engine) maybeSpawnPowerUp(st GameState) GameState {
	s := e.settings
	if !s.PowerUpsEnabled || len(e.kinds) == 0 || st.PowerUp.Active || st.PowerUpUsedThisRound {
		return st
	}
	if e.rng.Float64() >= s.PowerUpChance {
		return st
	}

	kind := e.kinds[e.rng.Intn(len(e.kinds))]
	pos := core.Vec(
		e.rng.Float64()*s.CanvasWidth/2+s.CanvasWidth/4,
		e.rng.Float64()*s.CanvasHeight/2+s.CanvasHeight/4,
	)
	st.PowerUp = PowerUp{Active: true, Pos: pos, Kind: kind}
	return st
}

// pickupCollision applies the live power-up's effect when the ball touches it.
func (e *Engine) pickupCollision(st GameState) GameState {
	if !PowerUpTouched(e.settings, st) {
		return st
	}
	return e.effects[st.PowerUp.Kind](st)
}
