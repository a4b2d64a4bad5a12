package construction

import (
	"errors"

	"github.com/katalvlaran/antmst/core"
)

var (
	// ErrNilGraph is returned when Build receives a nil graph.
	ErrNilGraph = errors.New("construction: nil graph")

	// ErrNoEdges is returned when the original graph has no edges to choose from.
	ErrNoEdges = errors.New("construction: graph has no edges")
)

// RootLabel is the label of the synthetic start node.
const RootLabel = "0"

// Node is a construction node: the root, or the choice of one original edge.
type Node struct {
	// Label is RootLabel or the label assigned to Original.
	Label string

	// Original is the bound edge of the original graph; nil for the root.
	Original *core.Edge

	out []*Edge
	in  []*Edge
}

// IsRoot reports whether n is the synthetic start node.
func (n *Node) IsRoot() bool { return n.Original == nil }

// Out returns the outgoing construction edges in destination label order.
// The returned slice must not be modified.
func (n *Node) Out() []*Edge { return n.out }

// Edge is a directed construction edge.
type Edge struct {
	From, To string

	// Eta is the static heuristic desirability 1/weight(To's original edge).
	Eta float64

	target    *Node
	pheromone float64
}

// Target returns the destination node.
func (e *Edge) Target() *Node { return e.target }

// Pheromone returns the current τ.
func (e *Edge) Pheromone() float64 { return e.pheromone }

// SetPheromone overwrites τ. Only the pheromone update between tours calls it.
func (e *Edge) SetPheromone(tau float64) { e.pheromone = tau }
