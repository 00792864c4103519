package main

import (
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/taigrr/cuboid/pkg/models"
	"github.com/taigrr/cuboid/pkg/render"
)

var (
	hudBase  = lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Padding(0, 1)
	hudFPS   = hudBase.Foreground(lipgloss.Color("#5fff87"))
	hudTitle = hudBase.Foreground(lipgloss.Color("#ffffff")).Bold(true)
	hudStats = hudBase.Foreground(lipgloss.Color("#5fd7ff")).Bold(true)
	hudModes = hudBase.Foreground(lipgloss.Color("#ffffff"))
	hudHint  = hudBase.Foreground(lipgloss.Color("#ffd75f")).Faint(true)
)

// viewState holds the interactive toggles of the view command.
type viewState struct {
	wireframe bool
	showHUD   bool
	shading   render.ShadingMode
	interp    render.InterpolationMode
}

// HUD renders an overlay with frame info and mode status.
type HUD struct {
	out       io.Writer
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD writing to out.
func NewHUD(out io.Writer) *HUD {
	return &HUD{out: out, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func moveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

const clearLine = "\x1b[2K"

// Render draws the HUD over the top and bottom terminal rows. The rows are
// always cleared so toggling the HUD off works.
func (h *HUD) Render(width, height int, fb *render.Framebuffer, stats render.Stats, pose models.Cuboid, vs viewState) {
	fmt.Fprint(h.out, moveTo(1, 1)+clearLine)
	fmt.Fprint(h.out, moveTo(height, 1)+clearLine)
	if !vs.showHUD {
		return
	}

	fps := hudFPS.Render(fmt.Sprintf("%.0f FPS", h.fps))
	fmt.Fprint(h.out, moveTo(1, 1)+fps)

	title := hudTitle.Render(fmt.Sprintf("%dx%d", fb.Width, fb.Height))
	fmt.Fprint(h.out, moveTo(1, max((width-lipgloss.Width(title))/2, 1))+title)

	faces := hudStats.Render(fmt.Sprintf("%d drawn %d culled", stats.FacesDrawn, stats.FacesCulled))
	fmt.Fprint(h.out, moveTo(1, max(width-lipgloss.Width(faces)+1, 1))+faces)

	check := func(on bool) string {
		if on {
			return "[✓]"
		}
		return "[ ]"
	}
	modes := hudModes.Render(fmt.Sprintf("%s X-Ray  shading: %s  interp: %s",
		check(vs.wireframe), vs.shading, vs.interp))
	fmt.Fprint(h.out, moveTo(height, 1)+modes)

	o := pose.Orientation
	hint := hudHint.Render(fmt.Sprintf("rot %.0f,%.0f,%.0f", o.X, o.Y, o.Z))
	fmt.Fprint(h.out, moveTo(height, max(width-lipgloss.Width(hint)+1, 1))+hint)
}
