package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/cuboid/pkg/models"
	"github.com/taigrr/cuboid/pkg/render"
)

func newExportCmd() *cobra.Command {
	var output string
	flags := defaultSceneFlags()
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the cuboid as a binary glTF (GLB) file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := flags.resolve()
			if err != nil {
				return err
			}
			if err := models.ExportCuboid(output, sc.cuboid, render.Palette[:]); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	flags.registerPose(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "cuboid.glb", "Output GLB path")
	return cmd
}
