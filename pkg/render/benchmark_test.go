package render

import (
	"testing"

	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

func benchCuboid() models.Cuboid {
	return models.Cuboid{HalfExtents: math3d.V3(0.6, 0.5, 0.4), Orientation: math3d.V3(30, 45, 10)}
}

func BenchmarkDrawCuboidSerial(b *testing.B) {
	fb := NewFramebuffer(200, 100)
	r := NewRasterizer(fb)
	c := benchCuboid()

	for b.Loop() {
		fb.Clear()
		r.DrawCuboid(c)
	}
}

func BenchmarkDrawCuboidParallel(b *testing.B) {
	fb := NewFramebuffer(200, 100)
	r := NewRasterizer(fb)
	r.Workers = 4
	c := benchCuboid()

	for b.Loop() {
		fb.Clear()
		r.DrawCuboid(c)
	}
}

func BenchmarkQuadWeightsWachspress(b *testing.B) {
	p := math3d.V2(0.3, 0.6)

	for b.Loop() {
		_ = QuadWeights(p, unitSquare, InterpWachspress)
	}
}

func BenchmarkQuadWeightsTangent(b *testing.B) {
	p := math3d.V2(0.3, 0.6)

	for b.Loop() {
		_ = QuadWeights(p, unitSquare, InterpTangent)
	}
}

func BenchmarkCull(b *testing.B) {
	faces := benchCuboid().Faces()
	forward := math3d.Forward()

	for b.Loop() {
		_ = Cull(faces[:], forward)
	}
}
