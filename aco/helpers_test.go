package aco_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antmst/aco"
	"github.com/katalvlaran/antmst/construction"
	"github.com/katalvlaran/antmst/core"
	"github.com/katalvlaran/antmst/mst"
)

func triangleDesc() core.Description {
	return core.Description{
		{Label: "A", Neighbors: []string{"B", "C"}, Weights: []float64{1, 3}},
		{Label: "B", Neighbors: []string{"C"}, Weights: []float64{2}},
		{Label: "C"},
	}
}

// completeDesc is K_n with weights (i+j)%4+1, dense enough for a positive
// pheromone floor once n ≥ 5.
func completeDesc(n int) core.Description {
	desc := make(core.Description, n)
	for i := 0; i < n; i++ {
		desc[i].Label = fmt.Sprintf("v%d", i)
		for j := i + 1; j < n; j++ {
			desc[i].Neighbors = append(desc[i].Neighbors, fmt.Sprintf("v%d", j))
			desc[i].Weights = append(desc[i].Weights, float64((i+j)%4+1))
		}
	}

	return desc
}

// fixture builds the graph, its MST and its construction graph.
func fixture(t testing.TB, desc core.Description) (*core.Graph, *mst.Tree, *construction.Graph) {
	t.Helper()
	g, err := core.New(desc)
	require.NoError(t, err)
	tree, err := mst.Compute(g, mst.WithSeed(1))
	require.NoError(t, err)
	cg, err := construction.Build(g)
	require.NoError(t, err)

	return g, tree, cg
}

// recorder is an Observer that keeps every notification.
type recorder struct {
	tours    []float64
	improved []int
	finished []int
}

func (r *recorder) TourCompleted(_ int, w float64) { r.tours = append(r.tours, w) }
func (r *recorder) BestImproved(it int, _ float64)  { r.improved = append(r.improved, it) }
func (r *recorder) RunFinished(res *aco.Result)     { r.finished = append(r.finished, res.Iterations) }
