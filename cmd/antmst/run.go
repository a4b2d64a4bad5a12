package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antmst/aco"
	"github.com/katalvlaran/antmst/construction"
	"github.com/katalvlaran/antmst/metrics"
	"github.com/katalvlaran/antmst/mst"
	"github.com/katalvlaran/antmst/rng"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the MST, then run the ant colony against it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}
	addGraphFlag(cmd)
	cmd.Flags().Float64("alpha", aco.DefaultAlpha, "pheromone exponent α")
	cmd.Flags().Float64("beta", aco.DefaultBeta, "heuristic exponent β")
	cmd.Flags().Float64("rho", aco.DefaultRho, "deposit/decay rate ρ in (0,1]")
	cmd.Flags().IntP("iterations", "i", aco.DefaultMaxIterations, "maximum tours per run σ")
	cmd.Flags().Int64("seed", 0, "ACO seed (0 = default stream)")
	cmd.Flags().Int("runs", 1, "number of independent runs")
	cmd.Flags().Int64("mst-seed", 0, "MST tie-break seed")
	cmd.Flags().Int("mst-iterations", 0, "MST iteration bound (0 = default)")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	printf(out, "input: m = %d, n = %d\n", g.NumEdges(), g.NumNodes())

	tree, err := mst.Compute(g, a.cfg.MSTOptions()...)
	if err != nil {
		return err
	}
	printf(out, "mst:   m = %d, n = %d, w = %g, connected = %t\n",
		tree.Size(), tree.NumNodes(), tree.TotalWeight(), tree.IsConnected())
	if !tree.IsConnected() {
		printf(out, "aco:   skipped, no spanning tree to converge on\n")
		a.log.WithFields(logrus.Fields{
			"nodes":     tree.NumNodes(),
			"mst_edges": tree.Size(),
		}).Warn("graph is disconnected")

		return nil
	}

	cg, err := construction.Build(g)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder(a.cfg.Metrics.Namespace)
	converged := 0
	for i := 0; i < a.cfg.ACO.Runs; i++ {
		opts := a.cfg.ACOOptions()
		if a.cfg.ACO.Runs > 1 {
			opts.Seed = rng.DeriveSeed(a.cfg.ACO.Seed, uint64(i))
		}
		opts.Logger = a.log.WithField("run", i+1)
		opts.Observer = recorder

		eng, err := aco.New(cg, tree, opts)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		res, err := eng.Run(a.ctx)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		if res.Converged {
			converged++
		}
		printf(out, "aco:   %s\n", res)
	}

	if a.cfg.ACO.Runs > 1 {
		printf(out, "converged %d/%d\n", converged, a.cfg.ACO.Runs)
	}
	if path := a.cfg.Metrics.File; path != "" {
		if err := recorder.WriteTextfile(path); err != nil {
			return err
		}
		a.log.WithFields(logrus.Fields{"path": path}).Info("metrics written")
	}

	return nil
}
