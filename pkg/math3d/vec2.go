package math3d

import "math"

// Vec2 represents a 2D vector or screen-space point.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Wedge returns the 2D cross product a ∧ b = a.x*b.y - a.y*b.x.
// It is the signed area of the parallelogram spanned by a and b.
func (a Vec2) Wedge(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Min returns the component-wise minimum.
func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

// Len returns the Euclidean length.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length.
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector in the same direction, or the zero
// vector when the squared length is at or below machine epsilon.
func (a Vec2) Normalize() Vec2 {
	lsq := a.LenSq()
	if lsq <= Epsilon {
		return Vec2{}
	}
	l := math.Sqrt(lsq)
	return Vec2{a.X / l, a.Y / l}
}

// Epsilon is the float64 machine epsilon.
const Epsilon = 0x1p-52
