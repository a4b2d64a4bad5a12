// Package core_test verifies graph construction, edge sharing and the
// fail-fast validation contract of core.New.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antmst/core"
)

// triangle is the canonical fixture A–B(1), B–C(2), A–C(3), declared from
// every endpoint.
func triangle() core.Description {
	return core.Description{
		{Label: "A", Neighbors: []string{"B", "C"}, Weights: []float64{1, 3}},
		{Label: "B", Neighbors: []string{"A", "C"}, Weights: []float64{1, 2}},
		{Label: "C", Neighbors: []string{"A", "B"}, Weights: []float64{3, 2}},
	}
}

// TestNew_Triangle checks sizes, edge sharing and adjacency.
func TestNew_Triangle(t *testing.T) {
	g, err := core.New(triangle())
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, []string{"A", "B", "C"}, g.Labels())

	a, err := g.Node("A")
	require.NoError(t, err)
	b, err := g.Node("B")
	require.NoError(t, err)

	// Both endpoints must reference the very same *Edge.
	ab := g.EdgeBetween("A", "B")
	require.NotNil(t, ab)
	assert.Same(t, ab, g.EdgeBetween("B", "A"))
	assert.Same(t, ab, a.Edges()[0])
	assert.Same(t, ab, b.Edges()[0])
	assert.Equal(t, 2, a.Degree())
	assert.Equal(t, 2, b.Degree())

	assert.True(t, ab.Contains("A"))
	assert.True(t, ab.Contains("B"))
	assert.False(t, ab.Contains("C"))
	assert.Equal(t, "B", ab.Other("A"))
	assert.Equal(t, "A", ab.Other("B"))
	assert.Equal(t, ab.Key(), (&core.Edge{From: "B", To: "A"}).Key())
}

// TestNew_ForwardReference allows neighbours declared later and one-sided
// declarations; the edge is still attached to both endpoints.
func TestNew_ForwardReference(t *testing.T) {
	g, err := core.New(core.Description{
		{Label: "A", Neighbors: []string{"B"}, Weights: []float64{5}},
		{Label: "B"},
	})
	require.NoError(t, err)

	edges, err := g.IncidentEdges("B")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, 5.0, edges[0].Weight)
}

// TestNew_Errors is a table of malformed descriptions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		desc core.Description
		want error
	}{
		{"empty label", core.Description{{Label: ""}}, core.ErrEmptyLabel},
		{"duplicate node", core.Description{{Label: "A"}, {Label: "A"}}, core.ErrDuplicateNode},
		{"length mismatch", core.Description{
			{Label: "A", Neighbors: []string{"B"}, Weights: nil}, {Label: "B"},
		}, core.ErrLengthMismatch},
		{"self loop", core.Description{
			{Label: "A", Neighbors: []string{"A"}, Weights: []float64{1}},
		}, core.ErrSelfLoop},
		{"zero weight", core.Description{
			{Label: "A", Neighbors: []string{"B"}, Weights: []float64{0}}, {Label: "B"},
		}, core.ErrBadWeight},
		{"negative weight", core.Description{
			{Label: "A", Neighbors: []string{"B"}, Weights: []float64{-2}}, {Label: "B"},
		}, core.ErrBadWeight},
		{"undeclared neighbour", core.Description{
			{Label: "A", Neighbors: []string{"Z"}, Weights: []float64{1}},
		}, core.ErrNodeNotFound},
		{"duplicate neighbour", core.Description{
			{Label: "A", Neighbors: []string{"B", "B"}, Weights: []float64{1, 1}}, {Label: "B"},
		}, core.ErrDuplicateEdge},
		{"conflicting weight", core.Description{
			{Label: "A", Neighbors: []string{"B"}, Weights: []float64{1}},
			{Label: "B", Neighbors: []string{"A"}, Weights: []float64{2}},
		}, core.ErrConflictingWeight},
		{"empty neighbour", core.Description{
			{Label: "A", Neighbors: []string{""}, Weights: []float64{1}},
		}, core.ErrEmptyLabel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.New(tc.desc)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNode_NotFound checks lookup failures.
func TestNode_NotFound(t *testing.T) {
	g, err := core.New(triangle())
	require.NoError(t, err)

	_, err = g.Node("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.IncidentEdges("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, g.HasNode("Z"))
	assert.Nil(t, g.EdgeBetween("A", "Z"))
}

// TestSortedEdges_StableTies keeps creation order among equal weights.
func TestSortedEdges_StableTies(t *testing.T) {
	g, err := core.New(core.Description{
		{Label: "A", Neighbors: []string{"B", "C", "D"}, Weights: []float64{2, 1, 2}},
		{Label: "B"}, {Label: "C"}, {Label: "D"},
	})
	require.NoError(t, err)

	sorted := g.SortedEdges()
	require.Len(t, sorted, 3)
	assert.Equal(t, "C", sorted[0].To)
	assert.Equal(t, "B", sorted[1].To)
	assert.Equal(t, "D", sorted[2].To)

	// Edges() itself is untouched by sorting.
	assert.Equal(t, "B", g.Edges()[0].To)
}

// TestAssignEdgeLabels labels "1".."m" in creation order and is idempotent.
func TestAssignEdgeLabels(t *testing.T) {
	g, err := core.New(triangle())
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.Empty(t, e.Label)
	}
	g.AssignEdgeLabels()
	g.AssignEdgeLabels()

	for i, e := range g.Edges() {
		assert.Equal(t, i, e.Index())
	}
	assert.Equal(t, "1", g.EdgeBetween("A", "B").Label)
	assert.Equal(t, "2", g.EdgeBetween("A", "C").Label)
	assert.Equal(t, "3", g.EdgeBetween("B", "C").Label)
}

// TestStats summarises sizes and weights.
func TestStats(t *testing.T) {
	g, err := core.New(triangle())
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, core.Stats{Nodes: 3, Edges: 3, TotalWeight: 6, MinWeight: 1, MaxWeight: 3}, s)

	empty, err := core.New(nil)
	require.NoError(t, err)
	assert.Equal(t, core.Stats{}, empty.Stats())
}
