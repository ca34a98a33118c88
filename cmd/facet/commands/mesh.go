package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/facet/internal/app"
)

func (c *CLI) newMeshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mesh [scene file]",
		Short: "Tessellate the objects of a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenePath := "facet.yaml"
			if len(args) == 1 {
				scenePath = args[0]
			}
			stlPath, _ := cmd.Flags().GetString("stl")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			passes, _ := cmd.Flags().GetInt("passes")

			return c.app.Run(cmd.Context(), app.Options{
				ScenePath: scenePath,
				STLPath:   stlPath,
				NoCache:   noCache,
				Passes:    passes,
			})
		},
	}
	cmd.Flags().String("stl", "", "Export all face grids to a binary STL file")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the caching session and recompute every pass")
	cmd.Flags().IntP("passes", "p", 1, "Number of redraw passes per object")
	return cmd
}
