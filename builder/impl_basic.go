package builder

import "fmt"

// Path builds P_n: idFn(0)–idFn(1)–…–idFn(n-1) (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		ids, err := d.addNodes(n, cfg.idFn)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodPath, err)
		}
		for i := 1; i < n; i++ {
			if err = d.addEdge(ids[i-1], ids[i], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", MethodPath, err)
			}
		}

		return nil
	}
}

// Cycle builds C_n: a path closed by idFn(n-1)–idFn(0) (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids, err := d.addNodes(n, cfg.idFn)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}
		for i := 0; i < n; i++ {
			if err = d.addEdge(ids[i], ids[(i+1)%n], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", MethodCycle, err)
			}
		}

		return nil
	}
}

// Star builds a hub CenterVertexID with n-1 leaves idFn(0..n-2) (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := d.addNode(CenterVertexID); err != nil {
			return fmt.Errorf("%s: %w", MethodStar, err)
		}
		leaves, err := d.addNodes(n-1, cfg.idFn)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodStar, err)
		}
		for _, leaf := range leaves {
			if err = d.addEdge(CenterVertexID, leaf, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", MethodStar, err)
			}
		}

		return nil
	}
}

// Wheel builds W_n = C_{n-1} plus hub CenterVertexID joined to every rim
// vertex (n ≥ 4). Rim edges come first, then spokes in rim order.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		if err := d.addNode(CenterVertexID); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := d.addEdge(CenterVertexID, cfg.idFn(i), cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", MethodWheel, err)
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1), edges in lexicographic index order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodComplete, n, ErrTooFewVertices)
		}
		ids, err := d.addNodes(n, cfg.idFn)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = d.addEdge(ids[i], ids[j], cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", MethodComplete, err)
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with sides "L0.." and "R0.." (n1, n2 ≥ 1).
// The label scheme is fixed so both sides stay distinguishable.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w",
				MethodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		left, err := d.addNodes(n1, SymbolNumberIDFn(LeftPrefix))
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCompleteBipartite, err)
		}
		right, err := d.addNodes(n2, SymbolNumberIDFn(RightPrefix))
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCompleteBipartite, err)
		}
		for _, u := range left {
			for _, v := range right {
				if err = d.addEdge(u, v, cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", MethodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
