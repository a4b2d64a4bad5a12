package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antmst/core"
)

// draft accumulates nodes and undirected edges in insertion order. Each edge
// is recorded once, on the node that was added first.
type draft struct {
	desc  core.Description
	index map[string]int
	pairs map[[2]string]struct{}
}

func newDraft() *draft {
	return &draft{
		index: make(map[string]int),
		pairs: make(map[[2]string]struct{}),
	}
}

// addNode records label; re-adding an existing label is a no-op.
func (d *draft) addNode(label string) error {
	if label == "" {
		return fmt.Errorf("addNode: empty label: %w", ErrConstructFailed)
	}
	if _, ok := d.index[label]; ok {
		return nil
	}
	d.index[label] = len(d.desc)
	d.desc = append(d.desc, core.NodeSpec{Label: label})

	return nil
}

// addEdge records a-b with weight w. Both endpoints must exist. A pair that is
// already present is skipped.
func (d *draft) addEdge(a, b string, w float64) error {
	ia, okA := d.index[a]
	ib, okB := d.index[b]
	if !okA || !okB || a == b {
		return fmt.Errorf("addEdge(%s-%s): %w", a, b, ErrConstructFailed)
	}
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("addEdge(%s-%s, w=%g): %w", a, b, w, ErrBadWeight)
	}

	key := [2]string{a, b}
	if b < a {
		key = [2]string{b, a}
	}
	if _, dup := d.pairs[key]; dup {
		return nil
	}
	d.pairs[key] = struct{}{}

	owner := ia
	other := b
	if ib < ia {
		owner, other = ib, a
	}
	spec := &d.desc[owner]
	spec.Neighbors = append(spec.Neighbors, other)
	spec.Weights = append(spec.Weights, w)

	return nil
}

// addNodes records idFn(0..n-1) and returns the labels.
func (d *draft) addNodes(n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := d.addNode(ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}
