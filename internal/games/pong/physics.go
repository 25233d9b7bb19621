package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Advance moves the ball by one Euler step: position by velocity, velocity
// by acceleration. Speed is capped at s.MaxSpeed. There is no sub-stepping,
// so a fast ball can pass through a thin boundary between two ticks.
func Advance(s Settings, b Ball) Ball {
	vel := b.Vel.Add(b.Acc)
	// The cap rescales the whole vector, so once it bites the horizontal
	// component shrinks too and vel' is no longer exactly vel+acc.
	if maxSpeed, speed := s.MaxSpeed(), vel.Len(); speed > maxSpeed {
		vel = vel.Scale(maxSpeed / speed)
	}
	return Ball{
		Pos:    b.Pos.Add(b.Vel),
		Vel:    vel,
		Acc:    b.Acc,
		Colour: b.Colour,
	}
}

// OffCenterScore measures where the ball meets the paddle: 0 at the centre,
// towards 1 above it and towards -1 below it.
func OffCenterScore(s Settings, p Paddle, b Ball) float64 {
	yOffset := b.Pos.Y - p.Pos.Y
	return core.ClampF(-yOffset/(s.PaddleHeight/2+s.BallRadius), -1, 1)
}

// ReboundAngle returns the outgoing direction, in degrees, of a ball hitting
// p. The incoming velocity is reflected horizontally and rotated in
// proportion to the off-centre score, then clamped to s.MaxAngle from
// horizontal.
func ReboundAngle(s Settings, p Paddle, b Ball) float64 {
	rotation := OffCenterScore(s, p, b) * s.MaxRotation * core.Sign(b.Vel.X)
	deg := core.Vec(-b.Vel.X, b.Vel.Y).Rotate(rotation).Degrees()
	return clampRebound(deg, !p.FacingRight, s.MaxAngle)
}

// clampRebound keeps deg within maxAngle of the horizontal direction of
// travel. Leftward rebounds are mirrored, clamped as rightward and mirrored back.
func clampRebound(deg float64, outgoingRight bool, maxAngle float64) float64 {
	if !outgoingRight {
		deg = mirrorDegrees(deg)
	}
	switch {
	case deg > 90:
		deg = maxAngle
	case deg < -90:
		deg = -maxAngle
	}
	deg = core.ClampF(deg, -maxAngle, maxAngle)
	if !outgoingRight {
		deg = mirrorDegrees(deg)
	}
	return deg
}

// mirrorDegrees reflects a direction across the vertical axis, in (-180, 180].
func mirrorDegrees(deg float64) float64 {
	m := 180 - deg
	if m > 180 {
		m -= 360
	}
	return m
}

// ReboundVelocity returns the ball after bouncing off p. Centre hits are
// fastest; the bonus falls off with the square of the off-centre score
// unless the paddle is in power-shot mode. The vertical pull of any
// acceleration is reversed. Position is unchanged.
func ReboundVelocity(s Settings, p Paddle, b Ball) Ball {
	bonus := s.MaxSpeedBonus
	if !p.PowerShotMode {
		bonus *= math.Pow(1-math.Abs(OffCenterScore(s, p, b)), 2)
	}
	speed := s.LaunchSpeed() + bonus

	return Ball{
		Pos:    b.Pos,
		Vel:    core.UnitVecInDirection(ReboundAngle(s, p, b)).Scale(speed),
		Acc:    core.Vec(b.Acc.X, -b.Acc.Y),
		Colour: b.Colour,
	}
}

// FollowBall moves the opponent paddle FollowSpeed pixels toward the ball,
// unless the ball is already within half a paddle of its centre.
func FollowBall(s Settings, p Paddle, b Ball) Paddle {
	yOffset := p.Pos.Y - b.Pos.Y
	if math.Abs(yOffset) < s.PaddleHeight/2 {
		return p
	}
	p.Pos = core.Vec(p.Pos.X, clampPaddleY(s, p.Pos.Y-core.Sign(yOffset)*s.FollowSpeed))
	return p
}

// ShiftPaddle shifts p down by delta pixels (negative is up), clamped to the playfield.
func ShiftPaddle(s Settings, p Paddle, delta float64) Paddle {
	p.Pos = core.Vec(p.Pos.X, clampPaddleY(s, p.Pos.Y+delta))
	return p
}

func clampPaddleY(s Settings, y float64) float64 {
	return core.ClampF(y, s.PaddleMinY(), s.PaddleMaxY())
}
