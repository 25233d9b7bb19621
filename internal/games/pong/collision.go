package pong

import (
	"math"
)

// CollisionHandler inspects the state for one kind of contact and returns
// the state with that contact resolved, or unchanged.
type CollisionHandler func(GameState) GameState

// HandleCollisions folds handlers over st from left to right. Each handler
// sees the effects of the ones before it.
func HandleCollisions(handlers []CollisionHandler, st GameState) GameState {
	for _, h := range handlers {
		st = h(st)
	}
	return st
}

// collisionPipeline is the fixed handler order of a normal tick.
func collisionPipeline(s Settings, pickup CollisionHandler) []CollisionHandler {
	return []CollisionHandler{
		paddleCollision(s, SideLeft),
		paddleCollision(s, SideRight),
		floorCollision(s),
		roofCollision(s),
		wallCollision(s, SideLeft),
		wallCollision(s, SideRight),
		pickup,
	}
}

// between reports whether v lies strictly between a and b, in either order.
func between(v, a, b float64) bool {
	return v > math.Min(a, b) && v < math.Max(a, b)
}

// PaddleHit reports whether b is touching p while travelling toward it.
// The ball's centre must lie between the paddle face (pushed out by the
// ball radius) and the paddle's centreline, and within the paddle's height
// extended by the radius. A ball with no horizontal velocity never hits.
func PaddleHit(s Settings, p Paddle, b Ball) bool {
	if b.Vel.X == 0 || (b.Vel.X > 0) != p.FacingRight {
		return false
	}

	outward := 1.0
	if p.FacingRight {
		outward = -1
	}
	face := p.Pos.X + outward*(s.PaddleWidth/2+s.BallRadius)
	if !between(b.Pos.X, face, p.Pos.X) {
		return false
	}

	reach := s.PaddleHeight/2 + s.BallRadius
	return between(b.Pos.Y, p.Pos.Y-reach, p.Pos.Y+reach)
}

func paddleCollision(s Settings, side Side) CollisionHandler {
	return func(st GameState) GameState {
		p := st.Paddle(side)
		if !PaddleHit(s, p, st.Ball) {
			return st
		}
		st.Ball = ReboundVelocity(s, p, st.Ball)
		return st
	}
}

// floorCollision bounces a downward ball inside the bottom radius band.
func floorCollision(s Settings) CollisionHandler {
	return func(st GameState) GameState {
		b := st.Ball
		if b.Vel.Y > 0 && between(b.Pos.Y, s.CanvasHeight-s.BallRadius, s.CanvasHeight) {
			st.Ball.Vel.Y = -b.Vel.Y
		}
		return st
	}
}

// roofCollision bounces an upward ball inside the top radius band.
func roofCollision(s Settings) CollisionHandler {
	return func(st GameState) GameState {
		b := st.Ball
		if b.Vel.Y < 0 && between(b.Pos.Y, 0, s.BallRadius) {
			st.Ball.Vel.Y = -b.Vel.Y
		}
		return st
	}
}

// WallCrossed reports whether b has passed more than its radius beyond
// the wall behind side's paddle while still heading out.
func WallCrossed(s Settings, side Side, b Ball) bool {
	if side == SideLeft {
		return b.Vel.X < 0 && -b.Pos.X > s.BallRadius
	}
	return b.Vel.X > 0 && b.Pos.X-s.CanvasWidth > s.BallRadius
}

// wallCollision awards a point to the side opposite the wall and starts a break.
func wallCollision(s Settings, wall Side) CollisionHandler {
	return func(st GameState) GameState {
		if !WallCrossed(s, wall, st.Ball) {
			return st
		}
		if wall == SideLeft {
			st.Score.Right++
		} else {
			st.Score.Left++
		}
		st.BreakTicks = s.PauseTicks
		return st
	}
}

// PowerUpTouched reports whether the ball overlaps the live power-up.
func PowerUpTouched(s Settings, st GameState) bool {
	return st.PowerUp.Active &&
		st.PowerUp.Pos.Sub(st.Ball.Pos).Len() <= s.PowerUpRadius+s.BallRadius
}
