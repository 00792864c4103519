// Package models provides the cuboid face builder and its mesh form for
// export.
package models

import (
	"image/color"

	"github.com/taigrr/cuboid/pkg/math3d"
)

// Mesh represents a triangle mesh with per-face materials.
type Mesh struct {
	Name      string
	Vertices  []MeshVertex
	Faces     []Face
	Materials []Material

	// Bounding box (calculated by CalculateBounds)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is a flat base colour.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// faceNames is used for material names, indexed like Cuboid.Faces.
var faceNames = [FaceCount]string{"top", "front", "left", "back", "right", "bottom"}

// quadUVs are the logical corner UVs in winding order.
var quadUVs = [4]math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// NewCuboidMesh triangulates the cuboid's faces in its local frame: the unit
// cuboid scaled by the half-extents, with position and orientation left to
// Cuboid.Transform. Each face gets its own four vertices, an outward normal
// and a material coloured from colors (cycled). With no colors the faces
// carry no material.
func NewCuboidMesh(c Cuboid, colors []color.RGBA) *Mesh {
	mesh := NewMesh("cuboid")
	for _, col := range colors {
		mesh.Materials = append(mesh.Materials, Material{
			BaseColor: [4]float64{
				float64(col.R) / 255,
				float64(col.G) / 255,
				float64(col.B) / 255,
				1,
			},
		})
	}

	scale := math3d.Scale(c.HalfExtents)
	for i, q := range UnitCuboid().Faces() {
		normal := q.ScaledNormal().Negate().Normalize()
		base := len(mesh.Vertices)
		for j, p := range q.Corners() {
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: scale.MulVec3(p),
				Normal:   normal,
				UV:       quadUVs[j],
			})
		}

		mat := -1
		if len(mesh.Materials) > 0 {
			mat = i % len(mesh.Materials)
			if mesh.Materials[mat].Name == "" {
				mesh.Materials[mat].Name = faceNames[i]
			}
		}
		mesh.Faces = append(mesh.Faces,
			Face{V: [3]int{base, base + 1, base + 2}, Material: mat},
			Face{V: [3]int{base, base + 2, base + 3}, Material: mat},
		)
	}

	mesh.CalculateBounds()
	return mesh
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Bounds returns the bounding box computed by CalculateBounds.
func (m *Mesh) Bounds() AABB {
	return NewAABB(m.BoundsMin, m.BoundsMax)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}
