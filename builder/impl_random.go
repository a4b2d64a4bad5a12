package builder

import "fmt"

// RandomTree builds a uniformly attached random tree: vertex i (i ≥ 1) joins a
// vertex drawn from 0..i-1. Requires an RNG (n ≥ 1).
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomTree, n, MinTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: %w", MethodRandomTree, ErrNeedRandSource)
		}
		ids, err := d.addNodes(n, cfg.idFn)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomTree, err)
		}
		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			if err = d.addEdge(ids[parent], ids[i], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", MethodRandomTree, err)
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n,p) graph: every pair i<j is kept
// with probability p. p ∈ {0,1} needs no RNG; anything in between does.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		ids, err := d.addNodes(n, cfg.idFn)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = d.addEdge(ids[i], ids[j], cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", MethodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
