package render

import (
	"fmt"
	"math"

	"github.com/taigrr/cuboid/pkg/math3d"
)

// InterpolationMode selects how a sample inside a quad is expressed as
// weights of its four corners.
type InterpolationMode int

const (
	// InterpWachspress uses Wachspress coordinates, which are exactly
	// bilinear on parallelograms and smooth on any convex quad.
	InterpWachspress InterpolationMode = iota
	// InterpTangent weights corner i by t(i-1)·t(i)/r(i), where t is the
	// half-angle tangent of the corner pair seen from the sample and r the
	// distance to the corner.
	InterpTangent
)

var interpNames = [...]string{"wachspress", "tangent"}

func (m InterpolationMode) String() string {
	if m < 0 || int(m) >= len(interpNames) {
		return "unknown"
	}
	return interpNames[m]
}

// Next returns the mode after m, wrapping around.
func (m InterpolationMode) Next() InterpolationMode {
	return InterpolationMode((int(m) + 1) % len(interpNames))
}

// ParseInterpolationMode returns the mode named s.
func ParseInterpolationMode(s string) (InterpolationMode, error) {
	for i, name := range interpNames {
		if s == name {
			return InterpolationMode(i), nil
		}
	}
	return InterpWachspress, fmt.Errorf("unknown interpolation mode %q", s)
}

// weightEpsilon is the tolerance for a sample lying on a corner or an edge.
const weightEpsilon = 1e-12

// quadUVs are the logical corner UVs in winding order.
var quadUVs = [4]math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// QuadWeights returns four weights summing to 1 that express p as a
// combination of the quad corners v (in winding order). Samples on a corner
// or on an edge get the exact vertex or linear weights. If no weights can be
// formed (a collapsed quad) all four are zero.
func QuadWeights(p math3d.Vec2, v [4]math3d.Vec2, mode InterpolationMode) [4]float64 {
	var (
		s [4]math3d.Vec2
		r [4]float64
		a [4]float64
		d [4]float64
	)
	for i := range 4 {
		s[i] = v[i].Sub(p)
		r[i] = s[i].Len()
		if r[i] <= weightEpsilon {
			var w [4]float64
			w[i] = 1
			return w
		}
	}
	for i := range 4 {
		j := (i + 1) % 4
		a[i] = s[i].Wedge(s[j])
		d[i] = s[i].Dot(s[j])
	}
	for i := range 4 {
		j := (i + 1) % 4
		if math.Abs(a[i]) <= weightEpsilon && d[i] < 0 {
			var w [4]float64
			w[i] = r[j] / (r[i] + r[j])
			w[j] = r[i] / (r[i] + r[j])
			return w
		}
	}

	var w [4]float64
	switch mode {
	case InterpTangent:
		var t [4]float64
		for i := range 4 {
			if a[i] == 0 {
				return [4]float64{}
			}
			t[i] = (r[i]*r[(i+1)%4] - d[i]) / a[i]
		}
		for i := range 4 {
			w[i] = t[(i+3)%4] * t[i] / r[i]
		}
	default:
		for i := range 4 {
			prev, next := v[(i+3)%4], v[(i+1)%4]
			c := math.Abs(prev.Sub(v[i]).Wedge(next.Sub(v[i])))
			denom := math.Abs(a[(i+3)%4] * a[i])
			if denom == 0 {
				return [4]float64{}
			}
			w[i] = c / denom
		}
	}
	return normalizeWeights(w)
}

func normalizeWeights(w [4]float64) [4]float64 {
	sum := w[0] + w[1] + w[2] + w[3]
	if !(sum > weightEpsilon) || math.IsInf(sum, 0) {
		return [4]float64{}
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// InterpolateUV returns the UV at the given corner weights.
func InterpolateUV(w [4]float64) math3d.Vec2 {
	var uv math3d.Vec2
	for i, c := range quadUVs {
		uv = uv.Add(c.Scale(w[i]))
	}
	return uv
}
