package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antmst/builder"
	"github.com/katalvlaran/antmst/core"
)

var topologies = []string{"path", "cycle", "star", "wheel", "complete", "grid", "random"}

type generateFlags struct {
	n, rows    int
	p          float64
	seed       int64
	minW, maxW int
	labels     string
	out        string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:       "generate <path|cycle|star|wheel|complete|grid|random>",
		Short:     "Write a graph description in YAML",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: topologies,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := f.build(args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if f.out != "" {
				file, err := os.Create(f.out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			if err := core.EncodeDescription(w, desc); err != nil {
				return err
			}
			a.log.WithField("topology", args[0]).WithField("nodes", len(desc)).Debug("graph generated")

			return nil
		},
	}
	cmd.Flags().IntVarP(&f.n, "nodes", "n", 6, "number of nodes (columns for grid)")
	cmd.Flags().IntVar(&f.rows, "rows", 3, "grid rows")
	cmd.Flags().Float64VarP(&f.p, "probability", "p", 0.3, "extra edge probability for random")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "generator seed")
	cmd.Flags().IntVar(&f.minW, "min-weight", 1, "minimum integer weight")
	cmd.Flags().IntVar(&f.maxW, "max-weight", 9, "maximum integer weight")
	cmd.Flags().StringVar(&f.labels, "labels", "letters", "label scheme: letters|numbers")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func (f *generateFlags) build(topology string) (core.Description, error) {
	if f.minW < 1 || f.maxW < f.minW {
		return nil, fmt.Errorf("weights: require 1 ≤ min ≤ max, got %d..%d", f.minW, f.maxW)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithIntegerWeight(f.minW, f.maxW),
	}
	switch f.labels {
	case "letters":
		opts = append(opts, builder.WithExcelColumnIDs())
	case "numbers":
	default:
		return nil, fmt.Errorf("labels: unknown scheme %q", f.labels)
	}

	var cons []builder.Constructor
	switch topology {
	case "path":
		cons = append(cons, builder.Path(f.n))
	case "cycle":
		cons = append(cons, builder.Cycle(f.n))
	case "star":
		cons = append(cons, builder.Star(f.n))
	case "wheel":
		cons = append(cons, builder.Wheel(f.n))
	case "complete":
		cons = append(cons, builder.Complete(f.n))
	case "grid":
		cons = append(cons, builder.Grid(f.rows, f.n))
	case "random":
		cons = append(cons, builder.RandomTree(f.n), builder.RandomSparse(f.n, f.p))
	default:
		return nil, fmt.Errorf("unknown topology %q (want one of %v)", topology, topologies)
	}

	return builder.Build(opts, cons...)
}
