package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/cuboid/pkg/render"
)

type snapshotConfig struct {
	scene  sceneFlags
	width  int
	height int
	scale  int
	output string
}

func newSnapshotCmd() *cobra.Command {
	cfg := &snapshotConfig{scene: defaultSceneFlags()}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, cfg)
		},
	}
	fs := cmd.Flags()
	cfg.scene.registerPose(fs)
	cfg.scene.registerRender(fs)
	fs.IntVar(&cfg.width, "width", 64, "Buffer width in cells")
	fs.IntVar(&cfg.height, "height", 32, "Buffer height in cells")
	fs.IntVar(&cfg.scale, "scale", 8, "Pixels per cell in the PNG")
	fs.StringVarP(&cfg.output, "output", "o", "cuboid.png", "Output PNG path")
	return cmd
}

func runSnapshot(cmd *cobra.Command, cfg *snapshotConfig) error {
	sc, err := cfg.scene.resolve()
	if err != nil {
		return err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("buffer size must be positive, got %dx%d", cfg.width, cfg.height)
	}

	fb := render.NewFramebuffer(cfg.width, cfg.height)
	r := sc.newRasterizer(fb)
	r.DrawCuboid(sc.cuboid)

	if err := fb.SavePNG(cfg.output, cfg.scale); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s := r.Stats
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d, %d faces drawn, %d culled, %d pixels)\n",
		cfg.output, cfg.width, cfg.height, s.FacesDrawn, s.FacesCulled, s.PixelsFilled)
	return nil
}
