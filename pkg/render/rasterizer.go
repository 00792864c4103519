package render

import (
	"fmt"
	"sync"

	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

// ShadingMode controls how the interior of a face is coloured.
type ShadingMode int

const (
	ShadeUV      ShadingMode = iota // Half palette plus half the (u, v, 0) gradient
	ShadeFlat                       // Half palette only
	ShadeTexture                    // Texture sampled at UV, tinted by the palette
)

var shadingNames = [...]string{"uv", "flat", "texture"}

func (m ShadingMode) String() string {
	if m < 0 || int(m) >= len(shadingNames) {
		return "unknown"
	}
	return shadingNames[m]
}

// Next returns the mode after m, wrapping around.
func (m ShadingMode) Next() ShadingMode {
	return ShadingMode((int(m) + 1) % len(shadingNames))
}

// ParseShadingMode returns the mode named s.
func ParseShadingMode(s string) (ShadingMode, error) {
	for i, name := range shadingNames {
		if s == name {
			return ShadingMode(i), nil
		}
	}
	return ShadeUV, fmt.Errorf("unknown shading mode %q", s)
}

// Stats counts what the last DrawCuboid call did.
type Stats struct {
	FacesTested    int // Faces built
	FacesCulled    int // Faces rejected by backface culling
	FacesOffscreen int // Faces whose bounding box misses the buffer
	FacesDrawn     int // Faces rasterized
	PixelsFilled   int // Pixels written by face fills
}

// Rasterizer draws cuboid faces into a Framebuffer under orthographic
// projection. It keeps no state between calls apart from Stats.
type Rasterizer struct {
	fb *Framebuffer

	Forward                math3d.Vec3       // Viewer forward direction for culling
	Shading                ShadingMode       // Interior colouring
	Interpolation          InterpolationMode // Corner weight scheme
	Texture                *Texture          // Used by ShadeTexture
	Workers                int               // Row bands rasterized in parallel; <= 1 is serial
	DisableBackfaceCulling bool              // If true, draw all six faces
	Stats                  Stats             // Statistics for the last DrawCuboid
}

// NewRasterizer creates a rasterizer drawing into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{
		fb:      fb,
		Forward: math3d.Forward(),
	}
}

// RenderCuboid draws c into fb with default settings.
func RenderCuboid(fb *Framebuffer, c models.Cuboid) {
	NewRasterizer(fb).DrawCuboid(c)
}

// Viewport returns the projection for the current buffer size.
func (r *Rasterizer) Viewport() Viewport {
	if r.fb == nil {
		return Viewport{}
	}
	return Viewport{Width: r.fb.Width, Height: r.fb.Height}
}

// faceSetup holds the per-face values shared by every pixel.
type faceSetup struct {
	index   int
	corners [4]math3d.Vec2 // Normalized screen positions in winding order
	markers [4]math3d.Vec2i
	pxMin   math3d.Vec2i
	pxMax   math3d.Vec2i
	orient  float64 // +1 when interior edge wedges are <= 0, -1 otherwise
	fill    Color
	marker  Color
}

func newFaceSetup(q models.Quad, index int, vp Viewport) (faceSetup, bool) {
	fs := faceSetup{
		index:  index,
		orient: 1,
		marker: PaletteColor(index),
		fill:   HalfColor(PaletteColor(index)),
	}
	for i, p := range q.Corners() {
		fs.corners[i] = p.XY()
		fs.markers[i] = vp.Project(fs.corners[i])
	}
	if q.ScaledNormal().Z > 0 {
		fs.orient = -1
	}

	lo, hi := fs.corners[0], fs.corners[0]
	for _, p := range fs.corners[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	var visible bool
	fs.pxMin, fs.pxMax, visible = vp.ProjectRect(lo, hi)
	return fs, visible
}

// contains is the half-plane test against each edge in winding order.
func (fs *faceSetup) contains(p math3d.Vec2) bool {
	for i := range 4 {
		start, end := fs.corners[i], fs.corners[(i+1)%4]
		if fs.orient*p.Sub(start).Wedge(end.Sub(start)) > 0 {
			return false
		}
	}
	return true
}

// DrawCuboid builds the faces of c, culls those facing away and rasterizes
// the rest in face order.
func (r *Rasterizer) DrawCuboid(c models.Cuboid) {
	r.Stats = Stats{}
	vp := r.Viewport()
	faces := c.Faces()
	r.Stats.FacesTested = len(faces)

	if vp.Empty() || !vp.Visible(c.Bounds()) {
		r.Stats.FacesOffscreen = len(faces)
		return
	}

	setups := make([]faceSetup, 0, len(faces))
	for i, q := range faces {
		if !r.DisableBackfaceCulling && IsBackface(q, r.Forward) {
			r.Stats.FacesCulled++
			continue
		}
		fs, visible := newFaceSetup(q, i, vp)
		if !visible {
			r.Stats.FacesOffscreen++
			continue
		}
		setups = append(setups, fs)
	}
	r.Stats.FacesDrawn = len(setups)
	r.Stats.PixelsFilled = r.rasterize(setups, vp)
}

// DrawQuad rasterizes a single face with the colours of face index, without
// culling.
func (r *Rasterizer) DrawQuad(q models.Quad, index int) int {
	vp := r.Viewport()
	fs, visible := newFaceSetup(q, index, vp)
	if !visible {
		return 0
	}
	return r.rasterize([]faceSetup{fs}, vp)
}

// rasterize draws the faces either in one pass or in disjoint row bands.
// Each band replays every face in order, so the result does not depend on
// the number of workers.
func (r *Rasterizer) rasterize(setups []faceSetup, vp Viewport) int {
	if len(setups) == 0 {
		return 0
	}
	workers := min(r.Workers, vp.Height)
	if workers <= 1 {
		return r.drawBand(setups, vp, 0, vp.Height-1)
	}

	band := (vp.Height + workers - 1) / workers
	counts := make([]int, workers)
	var wg sync.WaitGroup
	for w := range workers {
		lo := w * band
		hi := min(lo+band, vp.Height) - 1
		if lo > hi {
			continue
		}
		wg.Go(func() {
			counts[w] = r.drawBand(setups, vp, lo, hi)
		})
	}
	wg.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// drawBand fills and marks every face restricted to rows [rowLo, rowHi].
func (r *Rasterizer) drawBand(setups []faceSetup, vp Viewport, rowLo, rowHi int) int {
	filled := 0
	for i := range setups {
		fs := &setups[i]
		filled += r.fillFace(fs, vp, rowLo, rowHi)
		for _, m := range fs.markers {
			if m.Y >= rowLo && m.Y <= rowHi {
				r.fb.SetColor(m.X, m.Y, fs.marker)
			}
		}
	}
	return filled
}

func (r *Rasterizer) fillFace(fs *faceSetup, vp Viewport, rowLo, rowHi int) int {
	filled := 0
	colLo, colHi := max(fs.pxMin.X, 0), min(fs.pxMax.X, vp.Width-1)
	for row := max(fs.pxMin.Y, rowLo); row <= min(fs.pxMax.Y, rowHi); row++ {
		for col := colLo; col <= colHi; col++ {
			p := vp.Unproject(math3d.V2i(col, row))
			if !fs.contains(p) {
				continue
			}
			uv := InterpolateUV(QuadWeights(p, fs.corners, r.Interpolation))
			r.fb.SetColor(col, row, r.shade(fs, uv))
			filled++
		}
	}
	return filled
}

func (r *Rasterizer) shade(fs *faceSetup, uv math3d.Vec2) Color {
	switch r.Shading {
	case ShadeFlat:
		return fs.fill
	case ShadeTexture:
		if r.Texture == nil {
			return fs.fill
		}
		return ModulateColor(r.Texture.Sample(uv.X, uv.Y), fs.marker)
	default:
		u := uint8(clamp01(uv.X) * 255)
		v := uint8(clamp01(uv.Y) * 255)
		return RGB(fs.fill.R+u/2, fs.fill.G+v/2, fs.fill.B)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
