package models

import (
	"github.com/taigrr/cuboid/pkg/math3d"
)

// Cuboid is a box pose: centre position, half-extents along each local axis
// and orientation as X-Y-Z Euler angles in degrees.
type Cuboid struct {
	Position    math3d.Vec3
	HalfExtents math3d.Vec3
	Orientation math3d.Vec3
}

// UnitCuboid returns a cuboid centred at the origin with half-extents of 1
// and no rotation, so its corners are exactly (±1, ±1, ±1).
func UnitCuboid() Cuboid {
	return Cuboid{HalfExtents: math3d.One3()}
}

// Face indices into the array returned by Cuboid.Faces. Names describe where
// the face lies before rotation.
const (
	FaceTop    = iota // +Y
	FaceFront         // +Z
	FaceLeft          // -X
	FaceBack          // -Z
	FaceRight         // +X
	FaceBottom        // -Y
	FaceCount
)

// Quad is a face with four corners in a fixed winding order:
// top-left, top-right, bottom-right, bottom-left.
type Quad struct {
	TopLeft     math3d.Vec3
	TopRight    math3d.Vec3
	BottomRight math3d.Vec3
	BottomLeft  math3d.Vec3
}

// Corners returns the corners in winding order.
func (q Quad) Corners() [4]math3d.Vec3 {
	return [4]math3d.Vec3{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
}

// ScaledNormal returns (bottom-left - top-left) × (top-right - top-left).
// The result is not normalized. For faces built by Cuboid.Faces it points
// into the solid.
func (q Quad) ScaledNormal() math3d.Vec3 {
	return q.BottomLeft.Sub(q.TopLeft).Cross(q.TopRight.Sub(q.TopLeft))
}

// cornerSigns lists the eight corners as sign combinations. Indices 0-3 are
// the +Y corners, 4-7 the -Y corners directly below them.
var cornerSigns = [8]math3d.Vec3{
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
}

// faceCorners maps each face to indices into cornerSigns, in winding order.
// Every face runs counter-clockwise when seen from outside the solid.
var faceCorners = [FaceCount][4]int{
	FaceTop:    {3, 2, 1, 0},
	FaceFront:  {0, 1, 5, 4},
	FaceLeft:   {1, 2, 6, 5},
	FaceBack:   {2, 3, 7, 6},
	FaceRight:  {3, 0, 4, 7},
	FaceBottom: {4, 5, 6, 7},
}

// Corners returns the eight posed corners: p + (s ⊙ signs) rotated by o.
func (c Cuboid) Corners() [8]math3d.Vec3 {
	var out [8]math3d.Vec3
	for i, sign := range cornerSigns {
		out[i] = c.Position.Add(c.HalfExtents.Mul(sign).RotateEuler(c.Orientation))
	}
	return out
}

// Faces returns the six faces: top, the four sides, then bottom.
func (c Cuboid) Faces() [FaceCount]Quad {
	corners := c.Corners()
	var faces [FaceCount]Quad
	for i, idx := range faceCorners {
		faces[i] = Quad{
			TopLeft:     corners[idx[0]],
			TopRight:    corners[idx[1]],
			BottomRight: corners[idx[2]],
			BottomLeft:  corners[idx[3]],
		}
	}
	return faces
}

// Bounds returns the axis-aligned box around the posed corners.
func (c Cuboid) Bounds() AABB {
	corners := c.Corners()
	box := NewAABB(corners[0], corners[0])
	for _, p := range corners[1:] {
		box = box.Expand(p)
	}
	return box
}

// Transform returns the pose as a matrix: translate · rotate. Half-extents
// are not included; they are baked into NewCuboidMesh vertices.
func (c Cuboid) Transform() math3d.Mat4 {
	return math3d.Translate(c.Position).Mul(math3d.EulerXYZ(c.Orientation))
}
