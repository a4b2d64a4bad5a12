package mst

import (
	"fmt"

	"github.com/katalvlaran/antmst/core"
	"github.com/katalvlaran/antmst/cycle"
	"github.com/katalvlaran/antmst/rng"
)

// Compute builds a minimum spanning tree of g with the randomized-tie greedy
// described in the package documentation.
//
// The default iteration bound is max(MinIterations, |E|); since every
// iteration removes at least one edge from the pool, the default never cuts a
// run short.
func Compute(g *core.Graph, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, fmt.Errorf("Compute: %w", ErrNilGraph)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	o.rnd = rng.Or(o.rnd)
	if o.maxIterations == 0 {
		o.maxIterations = g.NumEdges()
		if o.maxIterations < MinIterations {
			o.maxIterations = MinIterations
		}
	}

	tree := &Tree{numNodes: g.NumNodes()}
	pool := g.SortedEdges()
	target := g.NumNodes() - 1

	for tree.iterations < o.maxIterations && len(pool) > 0 && len(tree.edges) < target {
		tree.iterations++

		// 1) Partition the minimum-weight group at the head of the sorted pool.
		k := 1
		for k < len(pool) && pool[k].Weight == pool[0].Weight {
			k++
		}
		group := pool[:k]

		// 2) Try the group in shuffled order, each edge at most once.
		order := make([]int, k)
		for i := range order {
			order[i] = i
		}
		if k > 1 {
			o.rnd.Shuffle(k, func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		tried := make([]bool, k)
		for _, idx := range order {
			tried[idx] = true
			if !cycle.CausesCycle(tree.edges, group[idx]) {
				tree.edges = append(tree.edges, group[idx])
				break
			}
		}

		// 3) Drop accepted and rejected edges; untried ones keep their order.
		next := make([]*core.Edge, 0, len(pool))
		for i, e := range group {
			if !tried[i] {
				next = append(next, e)
			}
		}
		pool = append(next, pool[k:]...)
	}

	return tree, nil
}
