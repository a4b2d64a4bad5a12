package mst

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/antmst/core"
	"github.com/katalvlaran/antmst/rng"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("mst: nil graph")

	// ErrDisconnected is returned by Reference when no spanning tree exists.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// MinIterations is the lower bound of the default iteration budget.
const MinIterations = 30

// Option configures Compute.
type Option func(*options)

type options struct {
	rnd           *rand.Rand
	maxIterations int // 0 ⇒ max(MinIterations, |E|)
}

// WithSeed makes tie-breaking deterministic for the given seed (0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rnd = rng.FromSeed(seed) }
}

// WithRand uses r for tie-breaking. r must not be shared across goroutines.
// A nil r selects the default stream.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rnd = rng.Or(r) }
}

// WithMaxIterations bounds the number of greedy iterations.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("mst: WithMaxIterations(n<1)")
	}

	return func(o *options) { o.maxIterations = n }
}

// Tree is the result of Compute. It is read-only once returned.
type Tree struct {
	edges      []*core.Edge
	numNodes   int
	iterations int
}

// Edges returns the selected edges in the order they were accepted.
func (t *Tree) Edges() []*core.Edge {
	out := make([]*core.Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// Size returns the number of selected edges.
func (t *Tree) Size() int { return len(t.edges) }

// NumNodes returns |V| of the graph the tree was computed for.
func (t *Tree) NumNodes() int { return t.numNodes }

// Iterations returns how many greedy iterations Compute consumed.
func (t *Tree) Iterations() int { return t.iterations }

// IsConnected reports whether the tree spans the graph (Size == NumNodes-1).
// TotalWeight is only meaningful as an MST weight when this holds.
func (t *Tree) IsConnected() bool {
	return t.numNodes > 0 && len(t.edges) == t.numNodes-1
}

// TotalWeight sums the weights of the selected edges.
func (t *Tree) TotalWeight() float64 {
	var sum float64
	for _, e := range t.edges {
		sum += e.Weight
	}

	return sum
}

// String lists one edge per line as "A <=> B w=1".
func (t *Tree) String() string {
	var sb strings.Builder
	for i, e := range t.edges {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.From)
		sb.WriteString(" <=> ")
		sb.WriteString(e.To)
		sb.WriteString(" w=")
		sb.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return sb.String()
}
