// File: graph.go
// Role: Graph construction from a Description and read-only queries.
// Determinism:
//   - Nodes() follows declaration order; Edges() follows creation order.
//   - SortedEdges() is a stable sort by weight, so ties keep creation order.
// Concurrency:
//   - No locks: a Graph is immutable once New returns (labels aside).

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// New builds a Graph from desc.
//
// Steps:
//  1. Declare every node (rejecting empty and duplicate labels).
//  2. For each node, for each neighbour reference: if an edge for the unordered
//     pair already exists, reuse it (the neighbour declared it first);
//     otherwise create a new edge and attach it to both endpoints.
//  3. Reject neighbours that were never declared as nodes.
//
// Every error wraps a sentinel from types.go and names the offending node.
//
// Complexity: O(V + E) expected time, O(V + E) space.
func New(desc Description) (*Graph, error) {
	g := &Graph{
		nodes: make([]*Node, 0, len(desc)),
		index: make(map[string]int, len(desc)),
		pairs: make(map[string]int),
	}

	// 1) Declare nodes up front so forward references can be resolved.
	for _, spec := range desc {
		if spec.Label == "" {
			return nil, fmt.Errorf("New: %w", ErrEmptyLabel)
		}
		if _, dup := g.index[spec.Label]; dup {
			return nil, fmt.Errorf("New: node %q: %w", spec.Label, ErrDuplicateNode)
		}
		g.index[spec.Label] = len(g.nodes)
		g.nodes = append(g.nodes, &Node{Label: spec.Label, graph: g})
	}

	// 2) Create or reuse edges.
	for _, spec := range desc {
		if err := g.attach(spec); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// attach wires all neighbour references of a single node spec.
func (g *Graph) attach(spec NodeSpec) error {
	if len(spec.Neighbors) != len(spec.Weights) {
		return fmt.Errorf("New: node %q: %d neighbours, %d weights: %w",
			spec.Label, len(spec.Neighbors), len(spec.Weights), ErrLengthMismatch)
	}

	listed := make(map[string]struct{}, len(spec.Neighbors))
	for i, nbr := range spec.Neighbors {
		w := spec.Weights[i]
		switch {
		case nbr == "":
			return fmt.Errorf("New: node %q neighbour #%d: %w", spec.Label, i, ErrEmptyLabel)
		case nbr == spec.Label:
			return fmt.Errorf("New: node %q: %w", spec.Label, ErrSelfLoop)
		case w <= 0 || math.IsNaN(w) || math.IsInf(w, 0):
			return fmt.Errorf("New: edge %q-%q w=%g: %w", spec.Label, nbr, w, ErrBadWeight)
		}
		if !g.HasNode(nbr) {
			return fmt.Errorf("New: node %q references %q: %w", spec.Label, nbr, ErrNodeNotFound)
		}
		if _, dup := listed[nbr]; dup {
			return fmt.Errorf("New: node %q lists %q twice: %w", spec.Label, nbr, ErrDuplicateEdge)
		}
		listed[nbr] = struct{}{}

		key := pairKey(spec.Label, nbr)
		if idx, exists := g.pairs[key]; exists {
			// Undirected: the neighbour already created this edge, reuse it.
			if e := g.edges[idx]; e.Weight != w {
				return fmt.Errorf("New: edge %q-%q declared with %g and %g: %w",
					e.From, e.To, e.Weight, w, ErrConflictingWeight)
			}
			continue
		}

		e := &Edge{From: spec.Label, To: nbr, Weight: w, index: len(g.edges)}
		g.pairs[key] = e.index
		g.edges = append(g.edges, e)
		g.nodes[g.index[spec.Label]].edges = append(g.nodes[g.index[spec.Label]].edges, e.index)
		g.nodes[g.index[nbr]].edges = append(g.nodes[g.index[nbr]].edges, e.index)
	}

	return nil
}

// NumNodes returns |V|. Complexity: O(1).
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns |E| (unique undirected pairs). Complexity: O(1).
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Nodes returns all nodes in declaration order. The slice is a copy.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Labels returns all node labels in declaration order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Label
	}

	return out
}

// Node looks a node up by label.
func (g *Graph) Node(label string) (*Node, error) {
	idx, ok := g.index[label]
	if !ok {
		return nil, fmt.Errorf("Node(%q): %w", label, ErrNodeNotFound)
	}

	return g.nodes[idx], nil
}

// HasNode reports whether label was declared.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.index[label]

	return ok
}

// IncidentEdges returns the edges touching label.
func (g *Graph) IncidentEdges(label string) ([]*Edge, error) {
	n, err := g.Node(label)
	if err != nil {
		return nil, err
	}

	return n.Edges(), nil
}

// Edges returns all edges in creation order. The slice is a copy; the edges
// themselves are shared.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// SortedEdges returns all edges ordered by ascending weight; equal weights keep
// creation order.
//
// Complexity: O(E log E).
func (g *Graph) SortedEdges() []*Edge {
	out := g.Edges()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})

	return out
}

// Edge returns the i-th edge in creation order, or nil when i is out of range.
func (g *Graph) Edge(i int) *Edge {
	if i < 0 || i >= len(g.edges) {
		return nil
	}

	return g.edges[i]
}

// EdgeBetween returns the edge joining a and b in either orientation, or nil.
func (g *Graph) EdgeBetween(a, b string) *Edge {
	if idx, ok := g.pairs[pairKey(a, b)]; ok {
		return g.edges[idx]
	}

	return nil
}

// AssignEdgeLabels labels every edge "1".."m" in creation order. It is the one
// mutation allowed after New and is idempotent, so several construction
// graphs may be built from the same Graph.
func (g *Graph) AssignEdgeLabels() {
	for i, e := range g.edges {
		e.Label = strconv.Itoa(i + 1)
	}
}

// Stats returns a size and weight summary. Complexity: O(E).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	for i, e := range g.edges {
		s.TotalWeight += e.Weight
		if i == 0 || e.Weight < s.MinWeight {
			s.MinWeight = e.Weight
		}
		if e.Weight > s.MaxWeight {
			s.MaxWeight = e.Weight
		}
	}

	return s
}
