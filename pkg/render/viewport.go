package render

import (
	"math"

	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

// Viewport maps normalized screen coordinates to pixels. The square
// [-1, 1]² is centred on the buffer and scaled to its shorter side; x grows to
// the right and y grows downwards, like rows.
type Viewport struct {
	Width  int
	Height int
}

// Empty reports whether the viewport has no pixels.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// HalfSize returns the number of pixels per normalized unit.
func (v Viewport) HalfSize() float64 {
	return 0.5 * float64(min(v.Width, v.Height))
}

// Center returns the pixel the normalized origin maps to.
func (v Viewport) Center() math3d.Vec2 {
	return math3d.V2(float64(v.Width/2), float64(v.Height/2))
}

// maxPixel bounds projected coordinates so huge inputs stay representable
// as int.
const maxPixel = 1 << 30

func toPixel(f float64) int {
	return int(math.Floor(min(max(f, -maxPixel), maxPixel)))
}

// Project maps a normalized point to the pixel containing it. Coordinates
// are clamped to ±1<<30 pixels.
func (v Viewport) Project(p math3d.Vec2) math3d.Vec2i {
	c := v.Center()
	h := v.HalfSize()
	return math3d.V2i(toPixel(p.X*h+c.X), toPixel(p.Y*h+c.Y))
}

// Unproject maps a pixel back to normalized coordinates, the inverse of
// Project at integer pixels. An empty viewport maps everything to the origin.
func (v Viewport) Unproject(px math3d.Vec2i) math3d.Vec2 {
	h := v.HalfSize()
	if h == 0 {
		return math3d.Vec2{}
	}
	c := v.Center()
	return math3d.V2(
		(float64(px.X)-c.X)/h,
		(float64(px.Y)-c.Y)/h,
	)
}

// ProjectRect projects a normalized box and reports whether any of its
// pixels fall inside the viewport.
func (v Viewport) ProjectRect(lo, hi math3d.Vec2) (pxMin, pxMax math3d.Vec2i, visible bool) {
	pxMin, pxMax = v.Project(lo), v.Project(hi)
	visible = !v.Empty() &&
		pxMax.X >= 0 && pxMax.Y >= 0 &&
		pxMin.X < v.Width && pxMin.Y < v.Height
	return pxMin, pxMax, visible
}

// Rect returns the normalized rectangle covered by the viewport's pixels,
// from the top-left corner of the first pixel to the far edge of the last.
func (v Viewport) Rect() (lo, hi math3d.Vec2) {
	return v.Unproject(math3d.V2i(0, 0)), v.Unproject(math3d.V2i(v.Width, v.Height))
}

// Visible reports whether box, seen along Z, overlaps the viewport. A box
// only touching the far edge counts as visible.
func (v Viewport) Visible(box models.AABB) bool {
	if v.Empty() {
		return false
	}
	lo, hi := v.Rect()
	screen := models.NewAABB(
		math3d.V3(lo.X, lo.Y, box.Min.Z),
		math3d.V3(hi.X, hi.Y, box.Max.Z),
	)
	return screen.Intersects(box)
}
