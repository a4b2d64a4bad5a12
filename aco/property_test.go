package aco_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/antmst/aco"
	"github.com/katalvlaran/antmst/construction"
	"github.com/katalvlaran/antmst/core"
	"github.com/katalvlaran/antmst/mst"
)

// chainPlus builds a connected graph: a chain over n nodes plus chords from flat.
func chainPlus(n int, flat []int) core.Description {
	desc := make(core.Description, n)
	for i := range desc {
		desc[i].Label = fmt.Sprintf("v%d", i)
	}
	seen := make(map[[2]int]bool)
	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		if a == b || seen[[2]int{a, b}] {
			return
		}
		seen[[2]int{a, b}] = true
		desc[a].Neighbors = append(desc[a].Neighbors, desc[b].Label)
		desc[a].Weights = append(desc[a].Weights, float64((a*3+b)%5+1))
	}
	for i := 1; i < n; i++ {
		add(i-1, i)
	}
	for i := 0; i+1 < len(flat); i += 2 {
		add(flat[i]%n, flat[i+1]%n)
	}

	return desc
}

// TestRunProperties checks, on random connected graphs, that the best tour
// spans the graph, never beats the reference MST, and that pheromones end in
// [floor, 1].
func TestRunProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("best tour is a spanning tree no lighter than the MST", prop.ForAll(
		func(n int, flat []int, seed int64) bool {
			g, err := core.New(chainPlus(n, flat))
			if err != nil {
				return false
			}
			_, ref, err := mst.Reference(g)
			if err != nil {
				return false
			}
			cg, err := construction.Build(g)
			if err != nil {
				return false
			}
			opts := aco.DefaultOptions()
			opts.Seed = seed
			eng, err := aco.NewWithTarget(cg, ref, opts)
			if err != nil {
				return false
			}
			res, err := eng.Run(context.Background())
			if err != nil {
				return false
			}
			if len(res.Tour) != n-1 || res.Weight < ref-1e-9 {
				return false
			}
			for _, e := range cg.Edges() {
				if e.Pheromone() < cg.Floor() || e.Pheromone() > 1 {
					return false
				}
			}

			return res.Converged == (res.Weight <= ref+1e-9)
		},
		gen.IntRange(2, 7),
		gen.SliceOf(gen.IntRange(0, 30)),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
