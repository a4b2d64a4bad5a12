package aco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antmst/construction"
	"github.com/katalvlaran/antmst/core"
)

func buildK(t *testing.T, n int) *construction.Graph {
	t.Helper()
	desc := make(core.Description, n)
	for i := 0; i < n; i++ {
		desc[i].Label = string(rune('A' + i))
		for j := i + 1; j < n; j++ {
			desc[i].Neighbors = append(desc[i].Neighbors, string(rune('A'+j)))
			desc[i].Weights = append(desc[i].Weights, float64(j))
		}
	}
	g, err := core.New(desc)
	require.NoError(t, err)
	cg, err := construction.Build(g)
	require.NoError(t, err)

	return cg
}

// TestUpdatePheromones checks the deposit and evaporation formulas.
func TestUpdatePheromones(t *testing.T) {
	cg := buildK(t, 6) // m=15, n=6 ⇒ positive floor
	opts := DefaultOptions()
	opts.Rho = 0.5
	eng, err := NewWithTarget(cg, 0, opts)
	require.NoError(t, err)

	for _, e := range cg.Edges() {
		e.SetPheromone(0.4)
	}
	one, _ := cg.Node("1")
	two, _ := cg.Node("2")
	eng.updatePheromones(&Tour{Nodes: []*construction.Node{one, two}})

	floor := cg.Floor()
	require.Less(t, floor, 0.2)
	for _, e := range cg.Edges() {
		switch e.To {
		case "1", "2":
			assert.InDelta(t, 0.7, e.Pheromone(), 1e-12) // 0.5·0.4 + 0.5
		default:
			assert.InDelta(t, 0.2, e.Pheromone(), 1e-12) // 0.5·0.4
		}
	}

	// repeated evaporation bottoms out at the floor, deposit tops out at 1
	for i := 0; i < 200; i++ {
		eng.updatePheromones(&Tour{Nodes: []*construction.Node{one}})
	}
	for _, e := range cg.Edges() {
		if e.To == "1" {
			assert.InDelta(t, 1.0, e.Pheromone(), 1e-9)
			assert.LessOrEqual(t, e.Pheromone(), 1.0)
		} else {
			assert.Equal(t, floor, e.Pheromone())
		}
	}
}

// TestChoose_ZeroWheel picks the first edge when every weight is zero.
func TestChoose_ZeroWheel(t *testing.T) {
	cg := buildK(t, 3)
	eng, err := NewWithTarget(cg, 0, DefaultOptions())
	require.NoError(t, err)

	hood := cg.Root().Out()
	for _, e := range hood {
		e.SetPheromone(0)
	}
	assert.Same(t, hood[0], eng.choose(hood))
}

// TestChoose_Dominant checks that an overwhelming weight wins almost surely
// and that the draw never leaves the neighbourhood.
func TestChoose_Dominant(t *testing.T) {
	cg := buildK(t, 4)
	opts := DefaultOptions()
	opts.Beta = 0
	eng, err := NewWithTarget(cg, 0, opts)
	require.NoError(t, err)

	hood := cg.Root().Out()
	for _, e := range hood {
		e.SetPheromone(1e-12)
	}
	hood[2].SetPheromone(1)

	hits := 0
	for i := 0; i < 200; i++ {
		if eng.choose(hood) == hood[2] {
			hits++
		}
	}
	assert.GreaterOrEqual(t, hits, 199)
}

// TestWalk_Memoises checks that a tour on a tree graph takes every edge and a
// tour on a triangle stops after two.
func TestWalk_Memoises(t *testing.T) {
	cg := buildK(t, 3)
	eng, err := NewWithTarget(cg, 0, DefaultOptions())
	require.NoError(t, err)
	tour := eng.walk()
	assert.Len(t, tour.Nodes, 2)
	assert.Len(t, tour.Edges, 2)
	assert.Equal(t, construction.RootLabel, tour.Edges[0].From)
	for i := 1; i < len(tour.Edges); i++ {
		assert.Equal(t, tour.Nodes[i-1].Label, tour.Edges[i].From)
	}

	g, err := core.New(core.Description{
		{Label: "A", Neighbors: []string{"B", "C", "D"}, Weights: []float64{1, 2, 3}},
		{Label: "B"}, {Label: "C"}, {Label: "D"},
	})
	require.NoError(t, err)
	star, err := construction.Build(g)
	require.NoError(t, err)
	eng, err = NewWithTarget(star, 0, DefaultOptions())
	require.NoError(t, err)
	tour = eng.walk()
	assert.Len(t, tour.Nodes, 3)
	assert.InDelta(t, 6.0, tour.Weight, 1e-12)
}
