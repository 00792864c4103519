package render

import (
	"image"
	"image/color"
	"testing"
)

func TestTextureSampleNearest(t *testing.T) {
	tex := NewCheckerTexture(4, 4, 2, ColorWhite, ColorBlack)

	tests := []struct {
		name string
		u, v float64
		want Color
	}{
		{"top left", 0.1, 0.1, ColorWhite},
		{"top right", 0.9, 0.1, ColorBlack},
		{"bottom left", 0.1, 0.9, ColorBlack},
		{"bottom right", 0.9, 0.9, ColorWhite},
		{"repeat wraps", 1.1, 0.1, ColorWhite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tex.Sample(tc.u, tc.v); got != tc.want {
				t.Errorf("Sample(%v, %v) = %v, want %v", tc.u, tc.v, got, tc.want)
			}
		})
	}
}

func TestTextureWrapClamp(t *testing.T) {
	tex := NewCheckerTexture(4, 4, 2, ColorWhite, ColorBlack)
	tex.WrapU = WrapClamp
	tex.WrapV = WrapClamp

	if got := tex.Sample(-3, -3); got != ColorWhite {
		t.Errorf("Sample(-3, -3) = %v, want white", got)
	}
	if got := tex.Sample(5, 0.1); got != ColorBlack {
		t.Errorf("Sample(5, 0.1) = %v, want black", got)
	}
}

func TestTextureSampleBilinear(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetPixel(0, 0, RGB(0, 0, 0))
	tex.SetPixel(1, 0, RGB(200, 0, 0))
	tex.FilterMode = FilterBilinear
	tex.WrapU = WrapClamp

	got := tex.Sample(0.5, 0.5)
	if got.R < 90 || got.R > 110 {
		t.Errorf("bilinear midpoint R = %d, want about 100", got.R)
	}
}

func TestTextureEmpty(t *testing.T) {
	tex := NewTexture(0, 0)
	if got := tex.Sample(0.5, 0.5); got != (Color{}) {
		t.Errorf("empty texture Sample = %v, want zero", got)
	}
}

func TestTextureFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.Set(5, 5, color.NRGBA{R: 255, A: 255})
	img.Set(6, 5, color.NRGBA{B: 255, A: 255})

	tex := TextureFromImage(img)
	if tex.Width != 2 || tex.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", tex.Width, tex.Height)
	}
	if got := tex.GetPixel(0, 0); got != ColorRed {
		t.Errorf("pixel 0 = %v, want red", got)
	}
	if got := tex.GetPixel(1, 0); got != ColorBlue {
		t.Errorf("pixel 1 = %v, want blue", got)
	}
}

func TestLoadTextureMissing(t *testing.T) {
	if _, err := LoadTexture("does-not-exist.png"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestModulateColor(t *testing.T) {
	got := ModulateColor(RGB(255, 128, 0), RGB(255, 255, 255))
	if got != RGB(255, 128, 0) {
		t.Errorf("ModulateColor with white = %v", got)
	}
	if got := ModulateColor(ColorWhite, ColorBlack); got != ColorBlack {
		t.Errorf("ModulateColor with black = %v", got)
	}
}

func TestPaletteColor(t *testing.T) {
	for i := range 6 {
		if PaletteColor(i) != Palette[i] || PaletteColor(i+6) != Palette[i] {
			t.Errorf("PaletteColor(%d) does not wrap", i)
		}
	}
	if PaletteColor(-1) != Palette[5] {
		t.Errorf("PaletteColor(-1) = %v, want %v", PaletteColor(-1), Palette[5])
	}
	if got := HalfColor(ColorYellow); got != RGB(127, 127, 0) {
		t.Errorf("HalfColor(yellow) = %v", got)
	}
}

func TestParseTextureModes(t *testing.T) {
	for _, m := range []WrapMode{WrapRepeat, WrapClamp} {
		got, err := ParseWrapMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseWrapMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	for _, m := range []FilterMode{FilterNearest, FilterBilinear} {
		got, err := ParseFilterMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseFilterMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseWrapMode("mirror"); err == nil {
		t.Error("expected an error for an unknown wrap mode")
	}
	if _, err := ParseFilterMode("trilinear"); err == nil {
		t.Error("expected an error for an unknown filter")
	}
	if got := WrapMode(7).String(); got != "unknown" {
		t.Errorf("WrapMode(7).String() = %q", got)
	}
}
