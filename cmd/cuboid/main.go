// cuboid - Terminal cuboid renderer
// Draws a rotating box into a colour grid with backface culling and
// per-pixel corner interpolation.
//
// Controls (view):
//
//	Mouse drag  - Rotate (yaw/pitch)
//	Scroll      - Grow/shrink
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset pose
//	X           - Toggle wireframe mode (x-ray)
//	F           - Cycle shading (uv, flat, texture)
//	I           - Cycle interpolation (wachspress, tangent)
//	?           - Toggle HUD overlay
//	+/-         - Grow/shrink
//	Esc         - Quit
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cuboid",
		Short: "Render a rotating cuboid in the terminal",
		Long: "cuboid projects a box orthographically into a colour grid, culls the faces\n" +
			"pointing away and fills the rest with interpolated corner colours.",
		SilenceUsage: true,
	}
	root.AddCommand(newViewCmd(), newSnapshotCmd(), newExportCmd())
	return root
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
