package aco

import (
	"math"

	"github.com/katalvlaran/antmst/construction"
	"github.com/katalvlaran/antmst/core"
	"github.com/katalvlaran/antmst/cycle"
)

// Tour is one ant walk from the root until no legal move remains.
type Tour struct {
	// Nodes are the visited construction nodes, root excluded.
	Nodes []*construction.Node
	// Edges are the traversed construction edges; Edges[i] leads to Nodes[i].
	Edges []*construction.Edge
	// Weight is the summed weight of the original edges bound to Nodes.
	Weight float64
}

// Originals maps the tour back to original edges.
func (t *Tour) Originals() []*core.Edge {
	out := make([]*core.Edge, len(t.Nodes))
	for i, n := range t.Nodes {
		out[i] = n.Original
	}

	return out
}

// Labels returns the construction labels of the visited nodes.
func (t *Tour) Labels() []string {
	out := make([]string, len(t.Nodes))
	for i, n := range t.Nodes {
		out[i] = n.Label
	}

	return out
}

// walk builds one tour. Pheromones are read, never written.
func (e *Engine) walk() *Tour {
	m := e.cg.NumEdgeNodes()
	t := &Tour{
		Nodes: make([]*construction.Node, 0, m),
		Edges: make([]*construction.Edge, 0, m),
	}
	visited := make(map[string]struct{}, m)
	excluded := make(map[string]struct{}) // proven cycle formers, tour-scoped
	chosen := make([]*core.Edge, 0, m)

	current := e.cg.Root()
	for {
		hood := e.neighbourhood(current, visited, excluded, chosen)
		if len(hood) == 0 {
			break
		}

		step := e.choose(hood)
		next := step.Target()
		t.Edges = append(t.Edges, step)
		t.Nodes = append(t.Nodes, next)
		t.Weight += next.Original.Weight
		chosen = append(chosen, next.Original)
		visited[next.Label] = struct{}{}
		current = next
	}

	return t
}

// neighbourhood returns the out-edges of current leading to available nodes,
// recording newly found cycle formers in excluded.
func (e *Engine) neighbourhood(
	current *construction.Node,
	visited, excluded map[string]struct{},
	chosen []*core.Edge,
) []*construction.Edge {
	out := current.Out()
	hood := make([]*construction.Edge, 0, len(out))
	for _, ce := range out {
		label := ce.To
		if _, ok := visited[label]; ok {
			continue
		}
		if _, ok := excluded[label]; ok {
			continue
		}
		if cycle.CausesCycle(chosen, ce.Target().Original) {
			excluded[label] = struct{}{}
			continue
		}
		hood = append(hood, ce)
	}

	return hood
}

// choose performs the roulette-wheel draw over hood (non-empty). The first
// edge whose cumulative weight meets the draw wins; rounding that leaves the
// draw unreached falls back to the last edge, and an all-zero wheel picks the
// first edge.
func (e *Engine) choose(hood []*construction.Edge) *construction.Edge {
	probs := e.probs[:0]
	var sum float64
	for _, ce := range hood {
		p := math.Pow(ce.Pheromone(), e.opts.Alpha) * math.Pow(ce.Eta, e.opts.Beta)
		probs = append(probs, p)
		sum += p
	}
	e.probs = probs

	if !(sum > 0) || math.IsInf(sum, 0) {
		return hood[0]
	}

	draw := e.rnd.Float64() * sum
	var acc float64
	for i, p := range probs {
		acc += p
		if acc >= draw {
			return hood[i]
		}
	}

	return hood[len(hood)-1]
}
