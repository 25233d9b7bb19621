package pong

import (
	"math/rand"
	"time"
)

// Event is anything the reducer folds into the state: the periodic Tick or
// one of the player's commands.
type Event interface {
	event()
}

// Tick advances the simulation one fixed step. Elapsed is informational;
// the step size never depends on it.
type Tick struct {
	Elapsed time.Duration
}

// MovePaddle moves the player's (right) paddle by Delta pixels; positive is down.
type MovePaddle struct {
	Delta int
}

// Pause starts a game that has not started, or starts a new one after a loss.
// During play it does nothing.
type Pause struct{}

// Restart replaces the whole state with the initial state.
type Restart struct{}

func (Tick) event()       {}
func (MovePaddle) event() {}
func (Pause) event()      {}
func (Restart) event()    {}

// tickRule is one rung of the tick ladder.
type tickRule struct {
	name    string
	applies func(GameState) bool
	apply   func(GameState) GameState
}

// Engine reduces events into game states. It holds only immutable settings,
// the spawn randomness and the handler tables built from them.
type Engine struct {
	settings   Settings
	rng        Rand
	kinds      []PowerUpKind
	effects    map[PowerUpKind]Effect
	collisions []CollisionHandler
	rules      []tickRule
	initial    GameState
}

// Option configures an Engine.
type Option func(*Engine)

// WithPowerUpKinds restricts which kinds the spawn policy chooses from.
func WithPowerUpKinds(kinds ...PowerUpKind) Option {
	return func(e *Engine) {
		e.kinds = append([]PowerUpKind(nil), kinds...)
	}
}

// NewEngine builds an engine. A nil rng gets a fixed-seed source.
func NewEngine(s Settings, rng Rand, opts ...Option) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	e := &Engine{
		settings: s,
		rng:      rng,
		kinds:    AllPowerUpKinds(),
		effects:  make(map[PowerUpKind]Effect, powerUpKindCount),
		initial:  InitialState(s),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, k := range AllPowerUpKinds() {
		e.effects[k] = effectFor(s, k)
	}
	e.collisions = collisionPipeline(s, e.pickupCollision)
	e.rules = []tickRule{
		{name: "game-over", applies: e.isGameOver, apply: gameOverTick},
		{name: "not-started", applies: notStarted, apply: idleTick},
		{name: "break", applies: inBreak, apply: e.breakTick},
		{name: "play", applies: always, apply: e.playTick},
	}
	return e
}

// Settings returns the engine's settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Initial returns the state a new game starts from.
func (e *Engine) Initial() GameState {
	return e.initial
}

// Reduce folds one event into st. Unknown events leave st unchanged.
func (e *Engine) Reduce(st GameState, ev Event) GameState {
	switch ev := ev.(type) {
	case Tick:
		return e.tick(st)
	case MovePaddle:
		return st.withPaddle(ShiftPaddle(e.settings, st.RightPaddle, float64(ev.Delta)))
	case Pause:
		return startGame(st)
	case Restart:
		return e.initial
	default:
		return st
	}
}

// tick applies the first rule of the ladder that matches st.
func (e *Engine) tick(st GameState) GameState {
	for _, r := range e.rules {
		if r.applies(st) {
			return r.apply(st)
		}
	}
	return st
}

func (e *Engine) isGameOver(st GameState) bool {
	_, won := st.Winner(e.settings.EndScore)
	return won || st.GameOver
}

func notStarted(st GameState) bool { return !st.GameStarted }

func inBreak(st GameState) bool { return st.BreakTicks > 0 }

func always(GameState) bool { return true }

func gameOverTick(st GameState) GameState {
	st.GameOver = true
	st.PowerUp = PowerUp{}
	st.PowerUpUsedThisRound = false
	return st
}

func idleTick(st GameState) GameState {
	return st
}

// breakTick counts the break down. Any power-up state from the finished
// round is dropped; the last tick of the break serves a fresh ball.
func (e *Engine) breakTick(st GameState) GameState {
	st.BreakTicks--
	if st.BreakTicks == 0 {
		st.Ball = e.initial.Ball
	}
	st.PowerUp = PowerUp{}
	st.PowerUpUsedThisRound = false
	st.LeftPaddle.PowerShotMode = false
	st.RightPaddle.PowerShotMode = false
	return st
}

// playTick is a normal tick: maybe spawn a power-up, resolve collisions,
// let the opponent follow the ball, then move the ball.
func (e *Engine) playTick(st GameState) GameState {
	st = e.maybeSpawnPowerUp(st)
	st = HandleCollisions(e.collisions, st)
	st.LeftPaddle = FollowBall(e.settings, st.LeftPaddle, st.Ball)
	st.Ball = Advance(e.settings, st.Ball)
	return st
}

// startGame starts play, or starts over with a zero score after a loss.
// It is a no-op while a game is running.
func startGame(st GameState) GameState {
	if st.GameStarted && !st.GameOver {
		return st
	}
	if st.GameOver {
		st.Score = Score{}
	}
	st.GameStarted = true
	st.GameOver = false
	st.PowerUp = PowerUp{}
	st.PowerUpUsedThisRound = false
	return st
}
