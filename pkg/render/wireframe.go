package render

import (
	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

// cuboidEdges indexes models.Cuboid.Corners: the +Y square, the -Y square,
// then the four vertical edges.
var cuboidEdges = [12][2]int{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// Wireframe renders outlines under the same orthographic projection as the
// Rasterizer.
type Wireframe struct {
	fb *Framebuffer
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(fb *Framebuffer) *Wireframe {
	return &Wireframe{fb: fb}
}

func (w *Wireframe) viewport() Viewport {
	return Viewport{Width: w.fb.Width, Height: w.fb.Height}
}

// DrawLine3D draws a line between two points, dropping Z. The segment is
// clipped to the viewport first, so far-off endpoints cost nothing.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	vp := w.viewport()
	if vp.Empty() {
		return
	}
	lo, hi := vp.Rect()
	p, q, ok := clipSegment(p1.XY(), p2.XY(), lo, hi)
	if !ok {
		return
	}
	a, b := w.pixel(vp, p), w.pixel(vp, q)
	w.fb.DrawLine(a.X, a.Y, b.X, b.Y, color)
}

// pixel projects p and pulls points on the far edge back onto the last
// row or column.
func (w *Wireframe) pixel(vp Viewport, p math3d.Vec2) math3d.Vec2i {
	px := vp.Project(p)
	return math3d.V2i(min(max(px.X, 0), vp.Width-1), min(max(px.Y, 0), vp.Height-1))
}

// clipSegment clips the segment a-b to the rectangle [lo, hi] using the
// Liang-Barsky parametric form. It reports false when nothing is left.
func clipSegment(a, b, lo, hi math3d.Vec2) (math3d.Vec2, math3d.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - lo.X},
		{d.X, hi.X - a.X},
		{-d.Y, a.Y - lo.Y},
		{d.Y, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	p, q := a, b
	if t0 > 0 {
		p = a.Add(d.Scale(t0))
	}
	if t1 < 1 {
		q = a.Add(d.Scale(t1))
	}
	return p, q, true
}

// DrawCuboid draws the 12 edges of c.
func (w *Wireframe) DrawCuboid(c models.Cuboid, color Color) {
	corners := c.Corners()
	for _, e := range cuboidEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], color)
	}
}

// DrawFaceOutlines draws the outline of each face index in faces using its
// palette colour.
func (w *Wireframe) DrawFaceOutlines(c models.Cuboid, faces []int) {
	quads := c.Faces()
	for _, i := range faces {
		if i < 0 || i >= len(quads) {
			continue
		}
		corners := quads[i].Corners()
		for j := range corners {
			w.DrawLine3D(corners[j], corners[(j+1)%len(corners)], PaletteColor(i))
		}
	}
}

// DrawAxes draws the X and Y axes through the origin. Z points at the viewer
// and projects to a point.
func (w *Wireframe) DrawAxes(length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen)
}
