package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat record of a GameState using primitive types only,
// for logs, YAML dumps and determinism checks.
type Snapshot struct {
	Tick        int     `yaml:"tick"`
	BallX       float64 `yaml:"ball_x"`
	BallY       float64 `yaml:"ball_y"`
	BallVX      float64 `yaml:"ball_vx"`
	BallVY      float64 `yaml:"ball_vy"`
	BallAY      float64 `yaml:"ball_ay"`
	LeftY       float64 `yaml:"left_y"`
	RightY      float64 `yaml:"right_y"`
	LeftPower   bool    `yaml:"left_power_shot,omitempty"`
	RightPower  bool    `yaml:"right_power_shot,omitempty"`
	ScoreLeft   int     `yaml:"score_left"`
	ScoreRight  int     `yaml:"score_right"`
	BreakTicks  int     `yaml:"break_ticks,omitempty"`
	Started     bool    `yaml:"started"`
	GameOver    bool    `yaml:"game_over"`
	PowerUp     string  `yaml:"power_up,omitempty"`
	PowerUpX    float64 `yaml:"power_up_x,omitempty"`
	PowerUpY    float64 `yaml:"power_up_y,omitempty"`
	PowerUpUsed bool    `yaml:"power_up_used,omitempty"`
}

// NewSnapshot flattens st. tick is the caller's tick counter.
func NewSnapshot(tick int, st GameState) Snapshot {
	snap := Snapshot{
		Tick:        tick,
		BallX:       st.Ball.Pos.X,
		BallY:       st.Ball.Pos.Y,
		BallVX:      st.Ball.Vel.X,
		BallVY:      st.Ball.Vel.Y,
		BallAY:      st.Ball.Acc.Y,
		LeftY:       st.LeftPaddle.Pos.Y,
		RightY:      st.RightPaddle.Pos.Y,
		LeftPower:   st.LeftPaddle.PowerShotMode,
		RightPower:  st.RightPaddle.PowerShotMode,
		ScoreLeft:   st.Score.Left,
		ScoreRight:  st.Score.Right,
		BreakTicks:  st.BreakTicks,
		Started:     st.GameStarted,
		GameOver:    st.GameOver,
		PowerUpUsed: st.PowerUpUsedThisRound,
	}
	if st.PowerUp.Active {
		snap.PowerUp = st.PowerUp.Kind.String()
		snap.PowerUpX = st.PowerUp.Pos.X
		snap.PowerUpY = st.PowerUp.Pos.Y
	}
	return snap
}

// Hash returns a 64-bit FNV-1a digest of every field except Tick.
// Two runs with the same seed and inputs produce the same sequence of hashes.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}
	writeF := func(f float64) { writeU(math.Float64bits(f)) }
	writeB := func(b bool) {
		if b {
			writeU(1)
		} else {
			writeU(0)
		}
	}

	writeF(s.BallX)
	writeF(s.BallY)
	writeF(s.BallVX)
	writeF(s.BallVY)
	writeF(s.BallAY)
	writeF(s.LeftY)
	writeF(s.RightY)
	writeB(s.LeftPower)
	writeB(s.RightPower)
	writeU(uint64(s.ScoreLeft))  //nolint:gosec // scores are small and non-negative
	writeU(uint64(s.ScoreRight)) //nolint:gosec // scores are small and non-negative
	writeU(uint64(s.BreakTicks)) //nolint:gosec // break ticks are non-negative
	writeB(s.Started)
	writeB(s.GameOver)
	h.Write([]byte(s.PowerUp)) //nolint:errcheck // hash.Hash never returns an error
	writeF(s.PowerUpX)
	writeF(s.PowerUpY)
	writeB(s.PowerUpUsed)
	return h.Sum64()
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return NewSnapshot(g.ticks, g.state)
}
