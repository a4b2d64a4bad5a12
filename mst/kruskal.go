package mst

import (
	"fmt"

	"github.com/katalvlaran/antmst/core"
)

// Reference computes an MST with a textbook union-find Kruskal: stable sort by
// weight, then accept every edge joining two different components. Ties break
// by edge creation order, so the result is fully deterministic.
//
// Error conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not connected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Reference(g *core.Graph) ([]*core.Edge, float64, error) {
	if g == nil {
		return nil, 0, fmt.Errorf("Reference: %w", ErrNilGraph)
	}
	n := g.NumNodes()
	if n == 0 {
		return nil, 0, fmt.Errorf("Reference: %w", ErrDisconnected)
	}
	if n == 1 {
		return []*core.Edge{}, 0, nil
	}

	// Disjoint-set over node labels.
	parent := make(map[string]string, n)
	rank := make(map[string]int, n)
	for _, label := range g.Labels() {
		parent[label] = label
	}

	// Iterative find with path halving.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union by rank; false when u and v already share a root.
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	var (
		out   = make([]*core.Edge, 0, n-1)
		total float64
	)
	for _, e := range g.SortedEdges() {
		if !union(e.From, e.To) {
			continue
		}
		out = append(out, e)
		total += e.Weight
		if len(out) == n-1 {
			break
		}
	}

	if len(out) < n-1 {
		return nil, 0, fmt.Errorf("Reference: %d of %d edges: %w", len(out), n-1, ErrDisconnected)
	}

	return out, total, nil
}
