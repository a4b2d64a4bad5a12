package construction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antmst/construction"
	"github.com/katalvlaran/antmst/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New(core.Description{
		{Label: "A", Neighbors: []string{"B", "C"}, Weights: []float64{1, 3}},
		{Label: "B", Neighbors: []string{"C"}, Weights: []float64{2}},
		{Label: "C"},
	})
	require.NoError(t, err)

	return g
}

// TestBuild_Triangle checks sizes, labels and the initial pheromone.
func TestBuild_Triangle(t *testing.T) {
	g := triangle(t)
	cg, err := construction.Build(g)
	require.NoError(t, err)

	// m = 3 ⇒ 3·2 + 3 = 9 edges, τ₀ = 1/9.
	assert.Equal(t, 4, cg.NumNodes())
	assert.Equal(t, 3, cg.NumEdgeNodes())
	assert.Equal(t, 9, cg.NumEdges())
	assert.InDelta(t, 1.0/9, cg.InitialPheromone(), 1e-15)
	for _, e := range cg.Edges() {
		assert.InDelta(t, 1.0/9, e.Pheromone(), 1e-15)
	}

	// Edge-nodes follow the original edge order: A-B, A-C, B-C.
	labels := []string{}
	for _, n := range cg.EdgeNodes() {
		labels = append(labels, n.Label+":"+n.Original.String())
	}
	assert.Equal(t, []string{"1:A-B(1)", "2:A-C(3)", "3:B-C(2)"}, labels)
	assert.Same(t, g, cg.Original())
	assert.Equal(t, "1", g.EdgeBetween("A", "B").Label)
}

// TestBuild_Topology checks the root fans out to every edge-node, edge-nodes
// connect to each other but never back to the root, and η follows the target.
func TestBuild_Topology(t *testing.T) {
	cg, err := construction.Build(triangle(t))
	require.NoError(t, err)

	root := cg.Root()
	require.True(t, root.IsRoot())
	assert.Equal(t, construction.RootLabel, root.Label)
	assert.Len(t, root.Out(), 3)
	assert.Empty(t, cg.Incoming(construction.RootLabel))

	for _, n := range cg.EdgeNodes() {
		assert.False(t, n.IsRoot())
		assert.Len(t, n.Out(), 2)
		assert.Len(t, cg.Incoming(n.Label), 3)
		for _, e := range n.Out() {
			assert.NotEqual(t, n.Label, e.To)
			assert.NotEqual(t, construction.RootLabel, e.To)
		}
	}

	for _, e := range cg.Edges() {
		target, ok := cg.Node(e.To)
		require.True(t, ok)
		assert.Same(t, target, e.Target())
		assert.InDelta(t, 1/target.Original.Weight, e.Eta, 1e-15)
	}

	_, ok := cg.Node("42")
	assert.False(t, ok)
	assert.Nil(t, cg.Incoming("42"))
}

// TestBuild_EdgeCount verifies m·(m−1)+m on complete graphs of several sizes.
func TestBuild_EdgeCount(t *testing.T) {
	for n := 2; n <= 7; n++ {
		desc := make(core.Description, n)
		for i := 0; i < n; i++ {
			desc[i].Label = string(rune('A' + i))
			for j := i + 1; j < n; j++ {
				desc[i].Neighbors = append(desc[i].Neighbors, string(rune('A'+j)))
				desc[i].Weights = append(desc[i].Weights, float64(i+j))
			}
		}
		g, err := core.New(desc)
		require.NoError(t, err)
		cg, err := construction.Build(g)
		require.NoError(t, err)

		m := g.NumEdges()
		assert.Equal(t, m*(m-1)+m, cg.NumEdges(), "n=%d", n)
		assert.InDelta(t, 1/float64(m*(m-1)+m), cg.InitialPheromone(), 1e-15)
	}
}

// TestBuild_Errors covers nil and edgeless graphs.
func TestBuild_Errors(t *testing.T) {
	_, err := construction.Build(nil)
	assert.ErrorIs(t, err, construction.ErrNilGraph)

	g, err := core.New(core.Description{{Label: "A"}, {Label: "B"}})
	require.NoError(t, err)
	_, err = construction.Build(g)
	assert.ErrorIs(t, err, construction.ErrNoEdges)
}

// TestPheromoneFloor covers the formula and its degenerate cases.
func TestPheromoneFloor(t *testing.T) {
	// m=10, n=5: 1/(4·log2 5)
	assert.InDelta(t, 1/(4*math.Log2(5)), construction.PheromoneFloor(10, 5), 1e-15)
	// m=12, n=4: 1/(7·2)
	assert.InDelta(t, 1.0/14, construction.PheromoneFloor(12, 4), 1e-15)
	// triangle: m-n-1 < 0
	assert.Zero(t, construction.PheromoneFloor(3, 3))
	// tree: m = n-1
	assert.Zero(t, construction.PheromoneFloor(4, 5))
	assert.Zero(t, construction.PheromoneFloor(5, 1))
	// smallest positive denominator: 1·log2 2
	assert.Equal(t, 1.0, construction.PheromoneFloor(4, 2))
}

// TestResetPheromones restores τ₀ after manual writes.
func TestResetPheromones(t *testing.T) {
	cg, err := construction.Build(triangle(t))
	require.NoError(t, err)
	for _, e := range cg.Edges() {
		e.SetPheromone(0.5)
	}
	cg.ResetPheromones()
	for _, e := range cg.Edges() {
		assert.Equal(t, cg.InitialPheromone(), e.Pheromone())
	}
	assert.Zero(t, cg.Floor())
}
