package render

import (
	"image"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells inside area. In half-block
// mode each terminal row shows two buffer rows using ▀ with fg=top and
// bg=bottom; otherwise one buffer cell maps to one blank terminal cell.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle, halfBlock bool) {
	rowsPerCell := 1
	if halfBlock {
		rowsPerCell = 2
	}

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * rowsPerCell
		if topY >= fb.Height {
			break
		}
		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{Content: " ", Width: 1}
			if halfBlock {
				cell.Content = "▀"
				cell.Style = uv.Style{
					Fg: fb.GetColor(x, topY),
					Bg: fb.GetColor(x, topY+1),
				}
			} else {
				cell.Style = uv.Style{Bg: fb.GetColor(x, topY)}
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// Display is a screen that can be flushed to the terminal.
type Display interface {
	uv.Screen
	Display() error
}

// TerminalRenderer draws framebuffers onto a terminal screen.
type TerminalRenderer struct {
	scr       Display
	width     int // Terminal columns
	height    int // Terminal rows
	halfBlock bool
}

// NewTerminalRenderer creates a renderer for a width x height terminal.
func NewTerminalRenderer(scr Display, width, height int, halfBlock bool) *TerminalRenderer {
	return &TerminalRenderer{
		scr:       scr,
		width:     max(width, 0),
		height:    max(height, 0),
		halfBlock: halfBlock,
	}
}

// FramebufferSize returns the buffer dimensions that fill the terminal.
func (t *TerminalRenderer) FramebufferSize() (int, int) {
	if t.halfBlock {
		return t.width, t.height * 2
	}
	return t.width, t.height
}

// Render draws fb over the whole terminal.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	area := uv.Rectangle(image.Rect(0, 0, t.width, t.height))
	fb.Draw(t.scr, area, t.halfBlock)
}

// Flush pushes the drawn cells to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.scr.Display()
}
