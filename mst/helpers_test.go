package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antmst/core"
)

type wedge struct {
	a, b string
	w    float64
}

// graphOf builds a graph from an edge list; nodes are declared in order of
// first appearance and every edge is listed by its first endpoint.
func graphOf(t testing.TB, nodes []string, edges []wedge) *core.Graph {
	t.Helper()
	pos := make(map[string]int, len(nodes))
	desc := make(core.Description, len(nodes))
	for i, label := range nodes {
		pos[label] = i
		desc[i].Label = label
	}
	for _, e := range edges {
		i := pos[e.a]
		desc[i].Neighbors = append(desc[i].Neighbors, e.b)
		desc[i].Weights = append(desc[i].Weights, e.w)
	}
	g, err := core.New(desc)
	require.NoError(t, err)

	return g
}

func triangle(t testing.TB) *core.Graph {
	return graphOf(t, []string{"A", "B", "C"}, []wedge{
		{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3},
	})
}

// clrs is the nine-node textbook fixture whose MST weighs 37. It has two
// equal-weight ties (a-h/b-c at 8, c-f/a-b at 4) that exercise the shuffle.
func clrs(t testing.TB) *core.Graph {
	return graphOf(t,
		[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
		[]wedge{
			{"a", "b", 4}, {"a", "h", 8}, {"b", "c", 8}, {"b", "h", 11},
			{"c", "d", 7}, {"c", "f", 4}, {"c", "i", 2}, {"d", "e", 9},
			{"d", "f", 14}, {"e", "f", 10}, {"f", "g", 2}, {"g", "h", 1},
			{"g", "i", 6}, {"h", "i", 7},
		})
}
