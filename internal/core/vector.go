package core

import "math"

// Vector is an immutable 2D vector in canvas coordinates (y grows downward).
type Vector struct {
	X, Y float64
}

// Up is the unit vector pointing toward the top of the canvas.
var Up = Vector{X: 0, Y: -1}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return v.Add(o.Scale(-1))
}

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Ortho returns v rotated a quarter turn: (y, -x).
func (v Vector) Ortho() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// Rotate rotates v by deg degrees using the standard rotation matrix.
func (v Vector) Rotate(deg float64) Vector {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Degrees returns the direction of v in degrees, in (-180, 180].
// 0 points right, 90 points down the canvas.
func (v Vector) Degrees() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// UnitVecInDirection returns the unit vector at deg degrees, measured with
// the same convention as Degrees. It is Up rotated by deg+90.
func UnitVecInDirection(deg float64) Vector {
	return Up.Rotate(deg + 90)
}

// Sign returns -1, 0 or 1 for the sign of x.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
