// Package math3d provides the vector and matrix primitives used by the cuboid
// renderer.
package math3d

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vec3 represents a 3D vector. Depending on context it holds a position, an
// extent, a direction or a set of Euler angles in degrees.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// One3 returns (1, 1, 1).
func One3() Vec3 {
	return Vec3{1, 1, 1}
}

// Forward returns the viewer forward direction (0, 0, 1).
func Forward() Vec3 {
	return Vec3{0, 0, 1}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
func (a Vec3) Normalize() Vec3 {
	lsq := a.LenSq()
	if lsq <= Epsilon {
		return Vec3{}
	}
	l := math.Sqrt(lsq)
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// XY drops the Z component (orthographic projection).
func (a Vec3) XY() Vec2 {
	return Vec2{a.X, a.Y}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RotateEuler rotates a around the origin by the Euler angles in degrees,
// first about X, then about Y, then about Z.
func (a Vec3) RotateEuler(angles Vec3) Vec3 {
	sx, cx := math.Sincos(Radians(angles.X))
	sy, cy := math.Sincos(Radians(angles.Y))
	sz, cz := math.Sincos(Radians(angles.Z))

	r := Vec3{
		a.X,
		a.Y*cx - a.Z*sx,
		a.Z*cx + a.Y*sx,
	}
	r = Vec3{
		r.X*cy + r.Z*sy,
		r.Y,
		r.Z*cy - r.X*sy,
	}
	return Vec3{
		r.X*cz - r.Y*sz,
		r.Y*cz + r.X*sz,
		r.Z,
	}
}

// String formats the vector as "x,y,z", the same form ParseVec3 accepts.
func (a Vec3) String() string {
	return strconv.FormatFloat(a.X, 'g', -1, 64) + "," +
		strconv.FormatFloat(a.Y, 'g', -1, 64) + "," +
		strconv.FormatFloat(a.Z, 'g', -1, 64)
}

// ParseVec3 parses "x,y,z". A single value "s" is expanded to "s,s,s".
func ParseVec3(s string) (Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		parts = []string{parts[0], parts[0], parts[0]}
	}
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("parse vec3 %q: want 3 components, got %d", s, len(parts))
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("parse vec3 %q: %w", s, err)
		}
		v[i] = f
	}
	return Vec3{v[0], v[1], v[2]}, nil
}
