package render

import (
	"path/filepath"
	"testing"
)

func TestNewFramebuffer(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 8, 4, 8, 4},
		{"empty", 0, 0, 0, 0},
		{"negative", -3, 5, 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(tc.width, tc.height)
			if fb.Width != tc.wantW || fb.Height != tc.wantH {
				t.Errorf("size = %dx%d, want %dx%d", fb.Width, fb.Height, tc.wantW, tc.wantH)
			}
			if len(fb.Pixels) != tc.wantW*tc.wantH*3 {
				t.Errorf("len(Pixels) = %d, want %d", len(fb.Pixels), tc.wantW*tc.wantH*3)
			}
		})
	}
}

func TestFramebufferSetGet(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	c := RGB(10, 20, 30)
	fb.SetColor(3, 2, c)

	if got := fb.GetColor(3, 2); got != c {
		t.Errorf("GetColor(3, 2) = %v, want %v", got, c)
	}
	i := (2*4 + 3) * 3
	if fb.Pixels[i] != 10 || fb.Pixels[i+1] != 20 || fb.Pixels[i+2] != 30 {
		t.Errorf("Pixels[%d:%d] = %v, want [10 20 30]", i, i+3, fb.Pixels[i:i+3])
	}

	// Out of range writes are ignored and reads return black.
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		fb.SetColor(p[0], p[1], ColorWhite)
		if got := fb.GetColor(p[0], p[1]); got != ColorBlack {
			t.Errorf("GetColor(%d, %d) = %v, want black", p[0], p[1], got)
		}
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.SetColor(1, 1, ColorWhite)
	fb.Clear()
	for i, b := range fb.Pixels {
		if b != 0 {
			t.Fatalf("Pixels[%d] = %d after Clear, want 0", i, b)
		}
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetColor(0, 0, ColorWhite)

	if fb.Resize(4, 4) {
		t.Error("Resize to the same size reported a change")
	}
	if got := fb.GetColor(0, 0); got != ColorWhite {
		t.Errorf("same size Resize cleared the buffer: got %v", got)
	}

	if !fb.Resize(2, 6) {
		t.Error("Resize to a new size reported no change")
	}
	if fb.Width != 2 || fb.Height != 6 || len(fb.Pixels) != 2*6*3 {
		t.Errorf("after Resize: %dx%d len %d", fb.Width, fb.Height, len(fb.Pixels))
	}
	if got := fb.GetColor(0, 0); got != ColorBlack {
		t.Errorf("Resize did not clear: got %v", got)
	}
}

func TestFramebufferDrawLine(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.DrawLine(0, 0, 4, 4, ColorGreen)
	for i := range 5 {
		if got := fb.GetColor(i, i); got != ColorGreen {
			t.Errorf("diagonal pixel %d = %v, want green", i, got)
		}
	}
	if got := fb.GetColor(4, 0); got != ColorBlack {
		t.Errorf("off-line pixel = %v, want black", got)
	}
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetColor(2, 1, ColorBlue)

	img := fb.ToImage()
	if got := img.RGBAAt(2, 1); got != ColorBlue {
		t.Errorf("ToImage pixel = %v, want blue", got)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := fb.SavePNG(path, 4); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Width != 12 || tex.Height != 8 {
		t.Errorf("saved size = %dx%d, want 12x8", tex.Width, tex.Height)
	}
	if got := tex.GetPixel(11, 7); got != ColorBlue {
		t.Errorf("scaled pixel = %v, want blue", got)
	}
}
