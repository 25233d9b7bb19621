package pong

import (
	"context"
	"math"
	"time"
)

// Bot plays the right paddle for headless runs. It tracks the ball while
// the ball approaches, meeting it above the paddle centre so returns are
// angled, and drifts back to the middle otherwise.
type Bot struct {
	settings Settings
}

// NewBot creates a bot for games played with s.
func NewBot(s Settings) *Bot {
	return &Bot{settings: s}
}

// Next returns the command the bot sends after observing st, if any.
// It starts the game whenever the game is not running.
func (b *Bot) Next(st GameState) (Event, bool) {
	if !st.GameStarted || st.GameOver {
		return Pause{}, true
	}

	target := b.settings.CanvasHeight / 2
	if st.Ball.Vel.X > 0 {
		target = st.Ball.Pos.Y + b.settings.PaddleHeight/4
	}

	step := b.settings.PaddleStep
	diff := target - st.RightPaddle.Pos.Y
	if math.Abs(diff) < step {
		return nil, false
	}
	delta := int(math.Round(step))
	if diff < 0 {
		delta = -delta
	}
	return MovePaddle{Delta: delta}, true
}

// Simulate plays n ticks through a Session with bot as the player, starting
// from the engine's initial state. observe is called after every tick with
// the tick number (from 1) and the resulting state. Timestamps are synthetic
// so the run is fully determined by the engine's seed.
func Simulate(ctx context.Context, engine *Engine, bot *Bot, n int, observe func(tick int, st GameState)) (GameState, error) {
	session := NewSession(engine, DefaultQueueSize)
	defer session.Close()

	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		clock := time.Unix(0, 0)
		for i := 0; i < n; i++ {
			select {
			case ticks <- clock:
			case <-ctx.Done():
				return
			case <-session.Done():
				return
			}
			clock = clock.Add(engine.Settings().TickInterval)
		}
	}()

	if ev, ok := bot.Next(engine.Initial()); ok {
		session.Send(ev)
	}

	count := 0
	return session.Run(ctx, engine.Initial(), ticks, func(ev Event, st GameState) {
		if _, isTick := ev.(Tick); !isTick {
			return
		}
		count++
		if observe != nil {
			observe(count, st)
		}
		if cmd, ok := bot.Next(st); ok {
			session.Send(cmd)
		}
	})
}
