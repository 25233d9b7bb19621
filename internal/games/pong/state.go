package pong

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Settings are the immutable constants an Engine is built with.
// Distances are canvas pixels, speeds are pixels per tick.
type Settings struct {
	CanvasWidth  float64
	CanvasHeight float64

	BallRadius     float64
	BallStart      core.Vector
	LaunchVelocity core.Vector
	MaxSpeedBonus  float64

	PaddleWidth      float64
	PaddleHeight     float64
	PaddleEdgeOffset float64
	PaddleStep       float64
	FollowSpeed      float64

	MaxRotation float64 // degrees of rotation at the paddle edge
	MaxAngle    float64 // steepest outgoing angle from horizontal, degrees

	EndScore     int
	PauseTicks   int
	TickInterval time.Duration

	PowerUpsEnabled bool
	PowerUpChance   float64
	PowerUpRadius   float64
	GravityAcc      float64
}

// SettingsFromConfig converts a loaded configuration into engine settings.
func SettingsFromConfig(cfg config.PongConfig) Settings {
	startY := cfg.Ball.StartY
	if startY == 0 {
		startY = cfg.Playfield.Height / 2
	}
	return Settings{
		CanvasWidth:      cfg.Playfield.Width,
		CanvasHeight:     cfg.Playfield.Height,
		BallRadius:       cfg.Ball.Radius,
		BallStart:        core.Vec(cfg.Ball.StartX, startY),
		LaunchVelocity:   core.Vec(cfg.Ball.LaunchVX, cfg.Ball.LaunchVY),
		MaxSpeedBonus:    cfg.Ball.MaxSpeedBonus,
		PaddleWidth:      cfg.Paddles.Width,
		PaddleHeight:     cfg.Paddles.Height,
		PaddleEdgeOffset: cfg.Paddles.EdgeOffset,
		PaddleStep:       cfg.Paddles.Step,
		FollowSpeed:      cfg.Paddles.FollowSpeed,
		MaxRotation:      cfg.Rebound.MaxRotation,
		MaxAngle:         cfg.Rebound.MaxAngle,
		EndScore:         cfg.Rules.EndScore,
		PauseTicks:       cfg.Rules.BreakTicks,
		TickInterval:     time.Duration(cfg.Rules.TickMillis) * time.Millisecond,
		PowerUpsEnabled:  cfg.PowerUps.Enabled,
		PowerUpChance:    cfg.PowerUps.Chance,
		PowerUpRadius:    cfg.PowerUps.Radius,
		GravityAcc:       cfg.PowerUps.GravityAcc,
	}
}

// DefaultSettings returns the settings of config.DefaultPongConfig.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultPongConfig())
}

// LaunchSpeed is the speed of a freshly served ball.
func (s Settings) LaunchSpeed() float64 {
	return s.LaunchVelocity.Len()
}

// MaxSpeed is the fastest the ball may travel.
func (s Settings) MaxSpeed() float64 {
	return s.LaunchSpeed() + s.MaxSpeedBonus
}

// PaddleMinY and PaddleMaxY bound a paddle's centre.
func (s Settings) PaddleMinY() float64 {
	return 2*s.PaddleWidth + 5
}

func (s Settings) PaddleMaxY() float64 {
	return s.CanvasHeight - s.PaddleHeight/2
}

// Side identifies one half of the table.
type Side int

const (
	SideLeft  Side = iota // Built-in opponent
	SideRight             // Player
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Ball is one tick's snapshot of the ball.
type Ball struct {
	Pos    core.Vector
	Vel    core.Vector
	Acc    core.Vector
	Colour core.Color
}

// Paddle is one tick's snapshot of a paddle. FacingRight is true for the
// paddle the ball reaches while travelling rightward.
type Paddle struct {
	ID            Side
	Pos           core.Vector
	FacingRight   bool
	PowerShotMode bool
}

// Score holds points per side.
type Score struct {
	Left  int
	Right int
}

// GameState is the whole game. It is a plain value: every transition
// returns a new GameState and never mutates its input.
type GameState struct {
	LeftPaddle           Paddle
	RightPaddle          Paddle
	Ball                 Ball
	Score                Score
	BreakTicks           int
	GameOver             bool
	GameStarted          bool
	PowerUp              PowerUp
	PowerUpUsedThisRound bool
}

// Paddle returns the paddle on the given side.
func (st GameState) Paddle(side Side) Paddle {
	if side == SideLeft {
		return st.LeftPaddle
	}
	return st.RightPaddle
}

// withPaddle returns st with the paddle on p.ID replaced.
func (st GameState) withPaddle(p Paddle) GameState {
	if p.ID == SideLeft {
		st.LeftPaddle = p
	} else {
		st.RightPaddle = p
	}
	return st
}

// Winner returns the side that reached the end score, if any.
func (st GameState) Winner(endScore int) (Side, bool) {
	switch {
	case st.Score.Left >= endScore:
		return SideLeft, true
	case st.Score.Right >= endScore:
		return SideRight, true
	}
	return SideLeft, false
}

// InitialBall is the ball as served at the start of every round.
func InitialBall(s Settings) Ball {
	return Ball{
		Pos:    s.BallStart,
		Vel:    s.LaunchVelocity,
		Colour: core.ColorWhite,
	}
}

// InitialState is the state at process start and after a restart.
func InitialState(s Settings) GameState {
	midY := s.CanvasHeight / 2
	return GameState{
		LeftPaddle: Paddle{
			ID:  SideLeft,
			Pos: core.Vec(s.PaddleEdgeOffset, midY),
		},
		RightPaddle: Paddle{
			ID:          SideRight,
			Pos:         core.Vec(s.CanvasWidth-s.PaddleEdgeOffset, midY),
			FacingRight: true,
		},
		Ball: InitialBall(s),
	}
}
