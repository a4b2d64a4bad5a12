package builder

import (
	"fmt"
	"strconv"
)

// gridID is the fixed "r,c" coordinate label of Grid.
func gridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid builds a rows×cols 4-neighbourhood lattice labelled "r,c" (row-major).
// For each cell the right edge is emitted before the bottom edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := d.addNode(gridID(r, c)); err != nil {
					return fmt.Errorf("%s: %w", MethodGrid, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridID(r, c)
				if c+1 < cols {
					if err := d.addEdge(u, gridID(r, c+1), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
				if r+1 < rows {
					if err := d.addEdge(u, gridID(r+1, c), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
