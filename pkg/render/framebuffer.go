// Package render rasterizes cuboid faces into a colour grid for terminal
// display.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Framebuffer is a grid of RGB cells stored row-major, three bytes per cell.
// len(Pixels) is always Width*Height*3.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint8
}

// NewFramebuffer creates a cleared framebuffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height*3),
	}
}

// Resize changes the dimensions and clears the buffer if they differ from the
// current ones. It reports whether anything changed.
func (fb *Framebuffer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == fb.Width && height == fb.Height {
		return false
	}
	n := width * height * 3
	if cap(fb.Pixels) >= n {
		fb.Pixels = fb.Pixels[:n]
	} else {
		fb.Pixels = make([]uint8, n)
	}
	fb.Width, fb.Height = width, height
	fb.Clear()
	return true
}

// Clear sets every cell to black.
func (fb *Framebuffer) Clear() {
	clear(fb.Pixels)
}

// SetColor sets the cell at (col, row). Out of range writes are ignored.
func (fb *Framebuffer) SetColor(col, row int, c Color) {
	if col < 0 || col >= fb.Width || row < 0 || row >= fb.Height {
		return
	}
	i := (row*fb.Width + col) * 3
	fb.Pixels[i] = c.R
	fb.Pixels[i+1] = c.G
	fb.Pixels[i+2] = c.B
}

// GetColor returns the cell at (col, row), or opaque black out of range.
func (fb *Framebuffer) GetColor(col, row int) Color {
	if col < 0 || col >= fb.Width || row < 0 || row >= fb.Height {
		return ColorBlack
	}
	i := (row*fb.Width + col) * 3
	return RGB(fb.Pixels[i], fb.Pixels[i+1], fb.Pixels[i+2])
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetColor(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, y, fb.GetColor(x, y))
		}
	}
	return img
}

// SavePNG writes the framebuffer as a PNG, each cell scaled up to a
// scale×scale block.
func (fb *Framebuffer) SavePNG(path string, scale int) error {
	img := fb.ToImage()
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
