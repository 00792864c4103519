package render

import "image/color"

// Color is an alias for color.RGBA for convenience. Alpha is always 255 for
// colours read back from a Framebuffer.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
)

// Palette is the per-face colour table, indexed by face index modulo its
// length.
var Palette = [6]Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
}

// PaletteColor returns the full intensity colour for face i.
func PaletteColor(i int) Color {
	return Palette[((i%len(Palette))+len(Palette))%len(Palette)]
}

// HalfColor halves each channel, used for face fills so the full intensity
// corner markers stand out.
func HalfColor(c Color) Color {
	return RGB(c.R/2, c.G/2, c.B/2)
}

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ModulateColor modulates one color by another (texture * face color).
func ModulateColor(a, b Color) Color {
	return Color{
		R: uint8((int(a.R) * int(b.R)) / 255),
		G: uint8((int(a.G) * int(b.G)) / 255),
		B: uint8((int(a.B) * int(b.B)) / 255),
		A: uint8((int(a.A) * int(b.A)) / 255),
	}
}

// lerpColor linearly interpolates between two colors.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}
