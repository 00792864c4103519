package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"math"
	"os"
)

// WrapMode determines how texture coordinates outside [0,1] are handled.
type WrapMode int

const (
	WrapRepeat WrapMode = iota // Tile the texture
	WrapClamp                  // Clamp to edge
)

// FilterMode determines how texture sampling is performed.
type FilterMode int

const (
	FilterNearest  FilterMode = iota // Nearest-neighbor (pixelated)
	FilterBilinear                   // Bilinear interpolation (smooth)
)

var (
	wrapNames   = [...]string{"repeat", "clamp"}
	filterNames = [...]string{"nearest", "bilinear"}
)

func (m WrapMode) String() string {
	if m < 0 || int(m) >= len(wrapNames) {
		return "unknown"
	}
	return wrapNames[m]
}

// ParseWrapMode returns the wrap mode named s.
func ParseWrapMode(s string) (WrapMode, error) {
	for i, name := range wrapNames {
		if s == name {
			return WrapMode(i), nil
		}
	}
	return WrapRepeat, fmt.Errorf("unknown wrap mode %q", s)
}

func (m FilterMode) String() string {
	if m < 0 || int(m) >= len(filterNames) {
		return "unknown"
	}
	return filterNames[m]
}

// ParseFilterMode returns the filter named s.
func ParseFilterMode(s string) (FilterMode, error) {
	for i, name := range filterNames {
		if s == name {
			return FilterMode(i), nil
		}
	}
	return FilterNearest, fmt.Errorf("unknown filter mode %q", s)
}

// Texture holds a 2D image for texture mapping.
type Texture struct {
	Width      int
	Height     int
	Pixels     []Color    // Row-major pixel data
	WrapU      WrapMode   // Horizontal wrap mode
	WrapV      WrapMode   // Vertical wrap mode
	FilterMode FilterMode // Sampling filter mode
}

// NewTexture creates an empty texture with the given dimensions.
func NewTexture(width, height int) *Texture {
	width, height = max(width, 0), max(height, 0)
	return &Texture{
		Width:      width,
		Height:     height,
		Pixels:     make([]Color, width*height),
		WrapU:      WrapRepeat,
		WrapV:      WrapRepeat,
		FilterMode: FilterNearest,
	}
}

// LoadTexture loads a texture from a PNG or JPEG file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage creates a texture from an image.Image.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	tex := NewTexture(bounds.Dx(), bounds.Dy())
	for y := range tex.Height {
		for x := range tex.Width {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.SetPixel(x, y, Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
		}
	}
	return tex
}

// NewCheckerTexture creates a procedural checkerboard texture.
func NewCheckerTexture(width, height, checkSize int, c1, c2 Color) *Texture {
	checkSize = max(checkSize, 1)
	tex := NewTexture(width, height)
	for y := range height {
		for x := range width {
			cx := x / checkSize
			cy := y / checkSize
			if (cx+cy)%2 == 0 {
				tex.SetPixel(x, y, c1)
			} else {
				tex.SetPixel(x, y, c2)
			}
		}
	}
	return tex
}

// SetPixel sets a pixel in the texture.
func (t *Texture) SetPixel(x, y int, c Color) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

// GetPixel returns the pixel at (x, y) with bounds checking.
func (t *Texture) GetPixel(x, y int) Color {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return Color{}
	}
	return t.Pixels[y*t.Width+x]
}

// Sample samples the texture at UV coordinates. (0, 0) is the top left
// texel, matching the corner order of a face.
func (t *Texture) Sample(u, v float64) Color {
	if t.Width == 0 || t.Height == 0 {
		return Color{}
	}
	// Apply wrap mode
	u = t.wrapCoord(u, t.WrapU)
	v = t.wrapCoord(v, t.WrapV)

	switch t.FilterMode {
	case FilterBilinear:
		return t.sampleBilinear(u, v)
	default:
		return t.sampleNearest(u, v)
	}
}

// wrapCoord applies the wrap mode to a coordinate.
func (t *Texture) wrapCoord(coord float64, mode WrapMode) float64 {
	switch mode {
	case WrapRepeat:
		coord = coord - math.Floor(coord) // fmod to [0,1)
	case WrapClamp:
		coord = math.Max(0, math.Min(1, coord))
	}
	return coord
}

// sampleNearest returns the nearest pixel.
func (t *Texture) sampleNearest(u, v float64) Color {
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp to valid range
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.GetPixel(x, y)
}

// sampleBilinear returns bilinearly interpolated color.
func (t *Texture) sampleBilinear(u, v float64) Color {
	// Convert to pixel coordinates
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := x0 + 1
	y1 := y0 + 1

	// Fractional parts
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	// Wrap coordinates for sampling
	x0 = t.wrapPixelCoord(x0, t.Width, t.WrapU)
	x1 = t.wrapPixelCoord(x1, t.Width, t.WrapU)
	y0 = t.wrapPixelCoord(y0, t.Height, t.WrapV)
	y1 = t.wrapPixelCoord(y1, t.Height, t.WrapV)

	// Sample 4 pixels
	c00 := t.GetPixel(x0, y0)
	c10 := t.GetPixel(x1, y0)
	c01 := t.GetPixel(x0, y1)
	c11 := t.GetPixel(x1, y1)

	// Bilinear interpolation
	top := lerpColor(c00, c10, tx)
	bot := lerpColor(c01, c11, tx)
	return lerpColor(top, bot, ty)
}

// wrapPixelCoord wraps a pixel coordinate.
func (t *Texture) wrapPixelCoord(x, size int, mode WrapMode) int {
	switch mode {
	case WrapRepeat:
		x = x % size
		if x < 0 {
			x += size
		}
	case WrapClamp:
		if x < 0 {
			x = 0
		} else if x >= size {
			x = size - 1
		}
	}
	return x
}
