// Package core defines the undirected weighted graph model consumed by the MST
// builder, the cycle detector and the ACO construction graph.
//
// This file declares Node, Edge, NodeSpec, Description, Graph and the sentinel
// errors returned while building a Graph.
//
// Errors:
//
//	ErrEmptyLabel        - a node or neighbour label is the empty string.
//	ErrDuplicateNode     - the same node label is declared twice.
//	ErrLengthMismatch    - neighbour and weight lists differ in length.
//	ErrSelfLoop          - a node lists itself as a neighbour.
//	ErrBadWeight         - weight is not a finite positive number.
//	ErrConflictingWeight - both endpoints declare the same edge with different weights.
//	ErrDuplicateEdge     - one node lists the same neighbour twice.
//	ErrNodeNotFound      - lookup of, or reference to, an undeclared node.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyLabel indicates that a node or neighbour label is empty.
	ErrEmptyLabel = errors.New("core: empty node label")

	// ErrDuplicateNode indicates that a node label was declared more than once.
	ErrDuplicateNode = errors.New("core: duplicate node label")

	// ErrLengthMismatch indicates len(Neighbors) != len(Weights) in a NodeSpec.
	ErrLengthMismatch = errors.New("core: neighbour/weight length mismatch")

	// ErrSelfLoop indicates that a node references itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and positive")

	// ErrConflictingWeight indicates that the two endpoints of an edge disagree on its weight.
	ErrConflictingWeight = errors.New("core: conflicting weights for the same edge")

	// ErrDuplicateEdge indicates that a node lists the same neighbour twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is a weighted undirected edge between two node labels.
//
// A single *Edge is owned by the Graph's edge store and shared by both of its
// endpoints; it is never duplicated for the reverse direction.
type Edge struct {
	// From is the label of the node that first declared the edge.
	From string

	// To is the label of the other endpoint.
	To string

	// Weight is the positive cost of the edge.
	Weight float64

	// Label is the construction-graph key assigned by Graph.AssignEdgeLabels.
	// Empty until labels are assigned.
	Label string

	// index is the position of the edge in the owning Graph's store.
	index int
}

// Contains reports whether either endpoint of e is the given node label.
func (e *Edge) Contains(label string) bool {
	return e.From == label || e.To == label
}

// Other returns the endpoint opposite to label. If label is not an endpoint,
// From is returned.
func (e *Edge) Other(label string) string {
	if e.From == label {
		return e.To
	}

	return e.From
}

// Key returns an orientation-independent identifier of the endpoint pair.
// Two edges connecting the same nodes always share a Key.
func (e *Edge) Key() string {
	return pairKey(e.From, e.To)
}

// Index returns the position of e in its graph's edge store (creation order).
func (e *Edge) Index() int {
	return e.index
}

// String renders the edge as "A-B(w)".
func (e *Edge) String() string {
	return e.From + "-" + e.To + "(" + strconv.FormatFloat(e.Weight, 'g', -1, 64) + ")"
}

// Node is a labelled vertex holding non-owning references (store indices)
// to its incident edges.
type Node struct {
	// Label uniquely identifies the node within its Graph.
	Label string

	edges []int
	graph *Graph
}

// Degree returns the number of incident edges.
func (n *Node) Degree() int {
	return len(n.edges)
}

// Edges returns the incident edges in the order they were attached.
func (n *Node) Edges() []*Edge {
	out := make([]*Edge, len(n.edges))
	for i, idx := range n.edges {
		out[i] = n.graph.edges[idx]
	}

	return out
}

// NodeSpec describes one node of a graph description: its label and the
// weighted neighbour references, paired positionally.
type NodeSpec struct {
	Label     string    `yaml:"label" json:"label"`
	Neighbors []string  `yaml:"neighbors" json:"neighbors"`
	Weights   []float64 `yaml:"weights" json:"weights"`
}

// Description is an ordered sequence of NodeSpec used to build a Graph.
type Description []NodeSpec

// Stats is a read-only snapshot of graph sizes for display collaborators.
type Stats struct {
	Nodes       int
	Edges       int
	TotalWeight float64
	MinWeight   float64
	MaxWeight   float64
}

// Graph is an immutable-after-build undirected weighted graph.
//
// Nodes are kept in declaration order; edges are kept in creation order in a
// single store, and every unordered node pair maps to at most one edge.
// The only mutation after New is the idempotent AssignEdgeLabels hand-off.
//
// A Graph is safe for concurrent reads once built. AssignEdgeLabels must not
// race with readers of Edge.Label.
type Graph struct {
	nodes []*Node
	index map[string]int // node label → position in nodes
	edges []*Edge
	pairs map[string]int // pairKey → position in edges
}

// pairKey builds the unordered endpoint key used for edge deduplication.
// Labels are ordered before joining so (a,b) and (b,a) share a key.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "\x00" + b
}
