package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antmst/mst"
)

var errMSTMismatch = errors.New("antmst: MST weight differs from the reference")

func newMSTCmd(a *app) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			tree, err := mst.Compute(g, a.cfg.MSTOptions()...)
			if err != nil {
				return err
			}
			if tree.Size() > 0 {
				printf(out, "%s\n", tree)
			}
			printf(out, "m = %d, n = %d, w = %g, connected = %t\n",
				tree.Size(), tree.NumNodes(), tree.TotalWeight(), tree.IsConnected())

			if !verify {
				return nil
			}
			_, want, err := mst.Reference(g)
			if err != nil {
				return err
			}
			if math.Abs(want-tree.TotalWeight()) > 1e-9*math.Max(1, want) {
				return fmt.Errorf("got %g, reference %g: %w", tree.TotalWeight(), want, errMSTMismatch)
			}
			printf(out, "reference: w = %g (match)\n", want)

			return nil
		},
	}
	addGraphFlag(cmd)
	cmd.Flags().Int64("mst-seed", 0, "tie-break seed")
	cmd.Flags().Int("mst-iterations", 0, "iteration bound (0 = default)")
	cmd.Flags().BoolVar(&verify, "verify", false, "compare with a union-find Kruskal")

	return cmd
}
