// Package pong implements two-paddle Pong as a pure state machine.
// The Engine folds events (ticks and player commands) into immutable
// GameState values; Game adapts an Engine to the terminal platform.
// The player controls the right paddle, the left paddle follows the ball.
package pong

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┆'
)

// Game runs one Engine and keeps its current state.
type Game struct {
	settings Settings
	options  []Option
	engine   *Engine
	state    GameState
	ticks    int
}

// New creates a game with the given settings, already reset with
// core.DefaultConfig. Reset reseeds and restarts it.
func New(settings Settings, opts ...Option) *Game {
	g := &Game{settings: settings, options: opts}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset builds a fresh engine seeded from runtime.Seed and returns to the
// initial state. A positive runtime.TickRate overrides the configured tick
// interval; zero keeps it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	s := g.settings
	if runtime.TickRate > 0 {
		s.TickInterval = time.Second / time.Duration(runtime.TickRate)
	}
	g.engine = NewEngine(s, rand.New(rand.NewSource(runtime.Seed)), g.options...)
	g.state = g.engine.Initial()
	g.ticks = 0
}

// TickInterval is how often the platform must call Tick.
func (g *Game) TickInterval() time.Duration {
	return g.engine.Settings().TickInterval
}

// Engine returns the engine driving this game.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() GameState {
	return g.state
}

// Dispatch reduces ev into the current state and returns the result.
func (g *Game) Dispatch(ev Event) GameState {
	prev := g.state
	g.state = g.engine.Reduce(prev, ev)

	switch ev.(type) {
	case Tick:
		if g.state.GameStarted && !g.state.GameOver {
			g.ticks++
		}
	case Restart:
		g.ticks = 0
	case Pause:
		if prev.GameOver {
			g.ticks = 0
		}
	}
	return g.state
}

// Tick advances the game one step.
func (g *Game) Tick() core.Status {
	g.Dispatch(Tick{Elapsed: g.TickInterval()})
	return g.Status()
}

// Apply turns a platform action into an event and dispatches it.
// Actions the game does not handle are ignored.
func (g *Game) Apply(a core.Action) core.Status {
	if ev, ok := EventForAction(g.settings, a); ok {
		g.Dispatch(ev)
	}
	return g.Status()
}

// EventForAction maps a platform action to the event it produces.
func EventForAction(s Settings, a core.Action) (Event, bool) {
	step := int(math.Round(s.PaddleStep))
	switch a {
	case core.ActionUp:
		return MovePaddle{Delta: -step}, true
	case core.ActionDown:
		return MovePaddle{Delta: step}, true
	case core.ActionStart:
		return Pause{}, true
	case core.ActionRestart:
		return Restart{}, true
	default:
		return nil, false
	}
}

// Status summarises the current state for the platform.
func (g *Game) Status() core.Status {
	return core.Status{
		LeftScore:  g.state.Score.Left,
		RightScore: g.state.Score.Right,
		Started:    g.state.GameStarted,
		GameOver:   g.state.GameOver,
		Ticks:      g.ticks,
	}
}

// viewport maps canvas coordinates onto the screen below the HUD row.
type viewport struct {
	s          Settings
	cols, rows int
}

func (v viewport) col(x float64) int {
	return core.Clamp(int(math.Round(x/v.s.CanvasWidth*float64(v.cols-1))), 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(math.Round(y/v.s.CanvasHeight*float64(v.rows-1))), 0, v.rows-1)
}

func (v viewport) span(h float64) int {
	return core.Max(1, int(math.Round(h/v.s.CanvasHeight*float64(v.rows))))
}

// Render draws the current state into dst, scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 2 || dst.Height() < 3 {
		return
	}

	st := g.state
	vp := viewport{s: g.settings, cols: dst.Width(), rows: dst.Height() - 1}

	// Net
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	g.drawPaddle(dst, vp, st.LeftPaddle)
	g.drawPaddle(dst, vp, st.RightPaddle)

	if st.PowerUp.Active {
		k := st.PowerUp.Kind
		dst.SetColored(vp.col(st.PowerUp.Pos.X), vp.row(st.PowerUp.Pos.Y), k.Glyph(), k.Color())
	}

	if st.GameStarted {
		dst.SetColored(vp.col(st.Ball.Pos.X), vp.row(st.Ball.Pos.Y), BallChar, st.Ball.Colour)
	}

	// HUD
	hud := fmt.Sprintf("CPU %d : %d YOU", st.Score.Left, st.Score.Right)
	dst.DrawTextColored((dst.Width()-len(hud))/2, 0, hud, core.ColorBrightWhite)
	if st.BreakTicks > 0 {
		dst.DrawTextColored(1, 0, "serve", core.ColorCyan)
	}

	switch {
	case st.GameOver:
		title := "CPU WINS"
		if w, ok := st.Winner(g.settings.EndScore); ok && w == SideRight {
			title = "YOU WIN!"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("%d - %d  |  SPACE to play again", st.Score.Left, st.Score.Right))
	case !st.GameStarted:
		g.drawCenteredMessage(dst, "PONG", fmt.Sprintf("First to %d  |  SPACE to start", g.settings.EndScore))
	}
}

func (g *Game) drawPaddle(dst *core.Screen, vp viewport, p Paddle) {
	h := vp.span(g.settings.PaddleHeight)
	top := vp.row(p.Pos.Y) - h/2
	c := core.ColorWhite
	if p.PowerShotMode {
		c = core.ColorYellow
	}
	dst.DrawVLine(vp.col(p.Pos.X), core.Max(top, 1), h, PaddleChar, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// NewFromConfig loads the configuration at path (or the search path when
// empty) and creates a game from it.
func NewFromConfig(path string) (*Game, error) {
	cfg, err := config.LoadPong(path)
	if err != nil {
		return nil, err
	}
	kinds := make([]PowerUpKind, 0, len(cfg.PowerUps.Kinds))
	for _, name := range cfg.PowerUps.Kinds {
		k, err := ParsePowerUpKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return New(SettingsFromConfig(cfg), WithPowerUpKinds(kinds...)), nil
}

func init() {
	registry.Register("pong", func(opts registry.Options) (registry.Game, error) {
		g, err := NewFromConfig(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
