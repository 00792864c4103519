package render

import (
	"bytes"
	"testing"

	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

// centredSquare is a front-facing quad covering the middle half of the
// normalized square.
func centredSquare() models.Quad {
	return models.Quad{
		TopLeft:     math3d.V3(-0.5, -0.5, 0),
		TopRight:    math3d.V3(0.5, -0.5, 0),
		BottomRight: math3d.V3(0.5, 0.5, 0),
		BottomLeft:  math3d.V3(-0.5, 0.5, 0),
	}
}

func TestDrawQuadCoverage(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	r := NewRasterizer(fb)

	if n := r.DrawQuad(centredSquare(), 0); n != 25 {
		t.Errorf("DrawQuad filled %d pixels, want 25", n)
	}

	for row := range 8 {
		for col := range 8 {
			inside := col >= 2 && col <= 6 && row >= 2 && row <= 6
			got := fb.GetColor(col, row)
			if inside && got == ColorBlack {
				t.Errorf("pixel (%d, %d) not filled", col, row)
			}
			if !inside && got != ColorBlack {
				t.Errorf("pixel (%d, %d) = %v outside the quad", col, row, got)
			}
		}
	}
}

func TestDrawQuadColours(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	r := NewRasterizer(fb)
	r.DrawQuad(centredSquare(), 0)

	// Corner markers use the full palette colour.
	for _, p := range [][2]int{{2, 2}, {6, 2}, {6, 6}, {2, 6}} {
		if got := fb.GetColor(p[0], p[1]); got != ColorRed {
			t.Errorf("corner (%d, %d) = %v, want red", p[0], p[1], got)
		}
	}

	// The centre has uv = (0.5, 0.5): half red plus half the UV gradient.
	if got, want := fb.GetColor(4, 4), RGB(127+63, 63, 0); got != want {
		t.Errorf("centre = %v, want %v", got, want)
	}

	// u grows to the right, v downwards.
	left, right := fb.GetColor(3, 4), fb.GetColor(5, 4)
	if left.R >= right.R {
		t.Errorf("red should grow with u: left %v, right %v", left, right)
	}
	top, bottom := fb.GetColor(4, 3), fb.GetColor(4, 5)
	if top.G >= bottom.G {
		t.Errorf("green should grow with v: top %v, bottom %v", top, bottom)
	}
}

func TestShadingModes(t *testing.T) {
	tests := []struct {
		name    string
		shading ShadingMode
		texture *Texture
		want    Color
	}{
		{"flat", ShadeFlat, nil, HalfColor(ColorGreen)},
		{"texture", ShadeTexture, NewCheckerTexture(2, 2, 1, ColorWhite, ColorWhite), ColorGreen},
		{"texture missing", ShadeTexture, nil, HalfColor(ColorGreen)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(8, 8)
			r := NewRasterizer(fb)
			r.Shading = tc.shading
			r.Texture = tc.texture
			r.DrawQuad(centredSquare(), 1)
			if got := fb.GetColor(4, 4); got != tc.want {
				t.Errorf("centre = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDrawQuadOrientation(t *testing.T) {
	// The same square wound the other way must still be filled.
	q := centredSquare()
	q.TopRight, q.BottomLeft = q.BottomLeft, q.TopRight

	fb := NewFramebuffer(8, 8)
	if n := NewRasterizer(fb).DrawQuad(q, 2); n != 25 {
		t.Errorf("reversed quad filled %d pixels, want 25", n)
	}
}

func TestDrawQuadOffscreen(t *testing.T) {
	q := centredSquare()
	for _, p := range []*math3d.Vec3{&q.TopLeft, &q.TopRight, &q.BottomRight, &q.BottomLeft} {
		p.X += 10
	}

	fb := NewFramebuffer(8, 8)
	if n := NewRasterizer(fb).DrawQuad(q, 0); n != 0 {
		t.Errorf("offscreen quad filled %d pixels", n)
	}
}

func TestDrawCuboidStats(t *testing.T) {
	tests := []struct {
		name      string
		cuboid    models.Cuboid
		noCull    bool
		culled    int
		drawn     int
		offscreen int
	}{
		{
			name:   "generic pose",
			cuboid: models.Cuboid{HalfExtents: math3d.V3(0.5, 0.5, 0.5), Orientation: math3d.V3(30, 45, 0)},
			culled: 3,
			drawn:  3,
		},
		{
			name:   "culling disabled",
			cuboid: models.Cuboid{HalfExtents: math3d.V3(0.5, 0.5, 0.5), Orientation: math3d.V3(30, 45, 0)},
			noCull: true,
			drawn:  6,
		},
		{
			name:      "whole cuboid offscreen",
			cuboid:    models.Cuboid{Position: math3d.V3(0, 9, 0), HalfExtents: math3d.V3(0.5, 0.5, 0.5)},
			offscreen: 6,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(32, 32)
			r := NewRasterizer(fb)
			r.DisableBackfaceCulling = tc.noCull
			r.DrawCuboid(tc.cuboid)

			s := r.Stats
			if s.FacesTested != models.FaceCount {
				t.Errorf("FacesTested = %d, want %d", s.FacesTested, models.FaceCount)
			}
			if s.FacesCulled != tc.culled || s.FacesDrawn != tc.drawn || s.FacesOffscreen != tc.offscreen {
				t.Errorf("stats = %+v, want culled %d drawn %d offscreen %d",
					s, tc.culled, tc.drawn, tc.offscreen)
			}
			if tc.drawn > 0 && s.PixelsFilled == 0 {
				t.Error("no pixels filled")
			}
			if tc.drawn == 0 && !bytes.Equal(fb.Pixels, make([]uint8, len(fb.Pixels))) {
				t.Error("buffer written although nothing was drawn")
			}
		})
	}
}

func TestDrawCuboidVisibleColours(t *testing.T) {
	fb := NewFramebuffer(48, 48)
	r := NewRasterizer(fb)
	r.Shading = ShadeFlat
	r.DrawCuboid(models.Cuboid{
		HalfExtents: math3d.V3(0.5, 0.5, 0.5),
		Orientation: math3d.V3(30, 45, 0),
	})

	seen := map[Color]bool{}
	for row := range fb.Height {
		for col := range fb.Width {
			seen[fb.GetColor(col, row)] = true
		}
	}
	for i := range models.FaceCount {
		fill := HalfColor(PaletteColor(i))
		visible := i <= models.FaceLeft
		if seen[fill] != visible {
			t.Errorf("face %d fill present = %v, want %v", i, seen[fill], visible)
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	poses := []models.Cuboid{
		{HalfExtents: math3d.V3(0.6, 0.4, 0.5), Orientation: math3d.V3(30, 45, 0)},
		{Position: math3d.V3(0.3, -0.2, 0), HalfExtents: math3d.V3(0.7, 0.3, 0.9), Orientation: math3d.V3(17, 203, 71)},
		{Position: math3d.V3(0.8, 0.8, 0), HalfExtents: math3d.One3(), Orientation: math3d.V3(-60, 10, 135)},
	}

	for _, c := range poses {
		serial := NewFramebuffer(61, 37)
		rs := NewRasterizer(serial)
		rs.DrawCuboid(c)

		for _, workers := range []int{2, 3, 8, 100} {
			parallel := NewFramebuffer(61, 37)
			rp := NewRasterizer(parallel)
			rp.Workers = workers
			rp.DrawCuboid(c)

			if !bytes.Equal(serial.Pixels, parallel.Pixels) {
				t.Errorf("pose %v with %d workers differs from serial", c.Orientation, workers)
			}
			if rp.Stats != rs.Stats {
				t.Errorf("pose %v with %d workers: stats %+v, want %+v", c.Orientation, workers, rp.Stats, rs.Stats)
			}
		}
	}
}

func TestRenderCuboidMatchesRasterizer(t *testing.T) {
	c := models.Cuboid{HalfExtents: math3d.V3(0.5, 0.5, 0.5), Orientation: math3d.V3(10, 20, 30)}

	a := NewFramebuffer(24, 24)
	RenderCuboid(a, c)

	b := NewFramebuffer(24, 24)
	NewRasterizer(b).DrawCuboid(c)

	if !bytes.Equal(a.Pixels, b.Pixels) {
		t.Error("RenderCuboid differs from a default Rasterizer")
	}
}

func TestDrawCuboidEmptyBuffer(t *testing.T) {
	r := NewRasterizer(NewFramebuffer(0, 0))
	r.DrawCuboid(models.UnitCuboid())
	if r.Stats.FacesDrawn != 0 {
		t.Errorf("FacesDrawn = %d on an empty buffer", r.Stats.FacesDrawn)
	}
}

func TestShadingModeString(t *testing.T) {
	for mode, want := range map[ShadingMode]string{
		ShadeUV:         "uv",
		ShadeFlat:       "flat",
		ShadeTexture:    "texture",
		ShadingMode(-1): "unknown",
	} {
		if got := mode.String(); got != want {
			t.Errorf("ShadingMode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}

func TestParseShadingMode(t *testing.T) {
	for _, mode := range []ShadingMode{ShadeUV, ShadeFlat, ShadeTexture} {
		got, err := ParseShadingMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseShadingMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseShadingMode("phong"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
	if ShadeTexture.Next() != ShadeUV || ShadeUV.Next() != ShadeFlat {
		t.Error("Next does not cycle through the modes")
	}
}

func TestDrawCuboidHuge(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	r := NewRasterizer(fb)
	r.DrawCuboid(models.Cuboid{HalfExtents: math3d.V3(1e19, 1e19, 1e19)})

	s := r.Stats
	if s.FacesCulled != 1 || s.FacesOffscreen != 4 || s.FacesDrawn != 1 {
		t.Errorf("stats = %+v, want culled 1 offscreen 4 drawn 1", s)
	}
	if s.PixelsFilled != 64 {
		t.Errorf("PixelsFilled = %d, want 64", s.PixelsFilled)
	}
	for row := range 8 {
		for col := range 8 {
			if fb.GetColor(col, row) == ColorBlack {
				t.Errorf("pixel (%d, %d) not filled", col, row)
			}
		}
	}
}
