package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antmst/construction"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print graph and construction-graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			s := g.Stats()
			printf(out, "graph:        nodes = %d, edges = %d, weight = %g, min = %g, max = %g\n",
				s.Nodes, s.Edges, s.TotalWeight, s.MinWeight, s.MaxWeight)

			cg, err := construction.Build(g)
			if err != nil {
				return err
			}
			printf(out, "construction: nodes = %d (%d + root), edges = %d\n",
				cg.NumNodes(), cg.NumEdgeNodes(), cg.NumEdges())
			printf(out, "pheromone:    initial = %g, floor = %g\n", cg.InitialPheromone(), cg.Floor())

			return nil
		},
	}
	addGraphFlag(cmd)

	return cmd
}
