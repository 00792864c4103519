package math3d

// Vec2i is an integer pair, used for pixel coordinates.
type Vec2i struct {
	X, Y int
}

// V2i creates a new Vec2i.
func V2i(x, y int) Vec2i {
	return Vec2i{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2i) Add(b Vec2i) Vec2i {
	return Vec2i{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2i) Mul(b Vec2i) Vec2i {
	return Vec2i{a.X * b.X, a.Y * b.Y}
}

// Dot returns the dot product a · b.
func (a Vec2i) Dot(b Vec2i) int {
	return a.X*b.X + a.Y*b.Y
}

// Min returns the component-wise minimum.
func (a Vec2i) Min(b Vec2i) Vec2i {
	return Vec2i{min(a.X, b.X), min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vec2i) Max(b Vec2i) Vec2i {
	return Vec2i{max(a.X, b.X), max(a.Y, b.Y)}
}

// Vec2 converts to a floating point pair.
func (a Vec2i) Vec2() Vec2 {
	return Vec2{float64(a.X), float64(a.Y)}
}
