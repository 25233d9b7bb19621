package pong

import (
	"context"
	"sync"
	"time"
)

// DefaultQueueSize is the command buffer used when NewSession gets a size below 1.
const DefaultQueueSize = 64

// Session owns the current state of one game and serialises every event
// through a single loop. Ticks come from a timer channel, commands from Send.
type Session struct {
	engine   *Engine
	commands chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewSession creates a session around engine. queueSize bounds the number
// of commands waiting for the loop.
func NewSession(engine *Engine, queueSize int) *Session {
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &Session{
		engine:   engine,
		commands: make(chan Event, queueSize),
		done:     make(chan struct{}),
	}
}

// Send queues a command. It never blocks: when the queue is full or the
// session is closed the command is dropped and Send reports false.
func (s *Session) Send(ev Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.commands <- ev:
		return true
	default:
		return false
	}
}

// Done returns a channel that closes when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close stops the loop. Safe to call multiple times.
func (s *Session) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// Run reduces events into state until ctx is cancelled, the session is
// closed or ticks is closed, and returns the last state. Commands queued
// before a tick arrives are applied before that tick. emit, if not nil, is
// called after every reduction on the loop goroutine.
func (s *Session) Run(ctx context.Context, initial GameState, ticks <-chan time.Time, emit func(Event, GameState)) (GameState, error) {
	state := initial
	var last time.Time

	apply := func(ev Event) {
		state = s.engine.Reduce(state, ev)
		if emit != nil {
			emit(ev, state)
		}
	}
	drain := func() {
		for {
			select {
			case ev := <-s.commands:
				apply(ev)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-s.done:
			return state, nil
		default:
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-s.done:
			return state, nil
		case ev := <-s.commands:
			apply(ev)
		case now, ok := <-ticks:
			if !ok {
				drain()
				return state, nil
			}
			drain()
			var elapsed time.Duration
			if !last.IsZero() {
				elapsed = now.Sub(last)
			}
			last = now
			apply(Tick{Elapsed: elapsed})
		}
	}
}
