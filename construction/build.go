package construction

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antmst/core"
)

// Graph is the construction graph. Its topology is immutable after Build; the
// pheromone values of its edges are the only mutable state.
type Graph struct {
	original *core.Graph
	root     *Node
	nodes    []*Node // root first, then edge-nodes "1".."m"
	index    map[string]int
	edges    []*Edge
	tau0     float64
	floor    float64
}

// Build derives the construction graph of g. It labels the edges of g
// "1".."m" as a side effect (core.Graph.AssignEdgeLabels).
func Build(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilGraph)
	}
	m := g.NumEdges()
	if m == 0 {
		return nil, fmt.Errorf("Build: %d nodes: %w", g.NumNodes(), ErrNoEdges)
	}

	// 1) Number the original edges.
	g.AssignEdgeLabels()

	cg := &Graph{
		original: g,
		root:     &Node{Label: RootLabel},
		nodes:    make([]*Node, 0, m+1),
		index:    make(map[string]int, m+1),
		edges:    make([]*Edge, 0, m*m),
		tau0:     1 / float64(m*(m-1)+m),
		floor:    PheromoneFloor(m, g.NumNodes()),
	}
	cg.nodes = append(cg.nodes, cg.root)
	cg.index[RootLabel] = 0

	// 2) One node per original edge.
	for _, e := range g.Edges() {
		cg.index[e.Label] = len(cg.nodes)
		cg.nodes = append(cg.nodes, &Node{Label: e.Label, Original: e})
	}

	// 3) Root → every edge-node, then every ordered pair i≠j.
	for _, from := range cg.nodes {
		for _, to := range cg.nodes[1:] {
			if from == to {
				continue
			}
			cg.link(from, to)
		}
	}

	return cg, nil
}

// link adds the directed edge from→to with η from the destination's weight.
func (cg *Graph) link(from, to *Node) {
	e := &Edge{
		From:      from.Label,
		To:        to.Label,
		Eta:       1 / to.Original.Weight,
		target:    to,
		pheromone: cg.tau0,
	}
	from.out = append(from.out, e)
	to.in = append(to.in, e)
	cg.edges = append(cg.edges, e)
}

// PheromoneFloor returns the lower pheromone bound 1/((m−n−1)·log2 n) for an
// original graph with m edges and n nodes. When the denominator is not
// positive (trees, near-trees, n < 2) there is no floor and 0 is returned.
func PheromoneFloor(m, n int) float64 {
	if n < 2 {
		return 0
	}
	d := float64(m-n-1) * math.Log2(float64(n))
	if d <= 0 {
		return 0
	}

	return 1 / d
}

// Original returns the graph the construction graph was derived from.
func (cg *Graph) Original() *core.Graph { return cg.original }

// Root returns the synthetic start node.
func (cg *Graph) Root() *Node { return cg.root }

// Node looks a construction node up by label.
func (cg *Graph) Node(label string) (*Node, bool) {
	i, ok := cg.index[label]
	if !ok {
		return nil, false
	}

	return cg.nodes[i], true
}

// Nodes returns all nodes, root first. The slice is a copy.
func (cg *Graph) Nodes() []*Node {
	out := make([]*Node, len(cg.nodes))
	copy(out, cg.nodes)

	return out
}

// EdgeNodes returns the non-root nodes in label order. The slice is a copy.
func (cg *Graph) EdgeNodes() []*Node {
	out := make([]*Node, len(cg.nodes)-1)
	copy(out, cg.nodes[1:])

	return out
}

// NumNodes counts all nodes including the root.
func (cg *Graph) NumNodes() int { return len(cg.nodes) }

// NumEdgeNodes counts the nodes bound to an original edge.
func (cg *Graph) NumEdgeNodes() int { return len(cg.nodes) - 1 }

// Edges returns every construction edge. The slice is a copy; the edges are shared.
func (cg *Graph) Edges() []*Edge {
	out := make([]*Edge, len(cg.edges))
	copy(out, cg.edges)

	return out
}

// NumEdges returns m·(m−1)+m.
func (cg *Graph) NumEdges() int { return len(cg.edges) }

// Incoming returns the edges pointing at label; nil for the root or an unknown label.
func (cg *Graph) Incoming(label string) []*Edge {
	n, ok := cg.Node(label)
	if !ok {
		return nil
	}

	return n.in
}

// InitialPheromone returns τ₀ = 1/NumEdges().
func (cg *Graph) InitialPheromone() float64 { return cg.tau0 }

// Floor returns PheromoneFloor for the original graph's edge and node counts.
func (cg *Graph) Floor() float64 { return cg.floor }

// ResetPheromones sets every τ back to InitialPheromone.
func (cg *Graph) ResetPheromones() {
	for _, e := range cg.edges {
		e.pheromone = cg.tau0
	}
}
