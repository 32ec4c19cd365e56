package builder

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// Grid builds a rows×cols 4-neighborhood lattice labeled "r,c".
// Nodes are added row-major, so cell (r, c) receives the r*cols+c-th index
// the constructor hands out. For every cell the right edge precedes the
// down edge; both are mirrored in directed graphs.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cells, err := addNodes(g, methodGrid, rows*cols, func(i int) string {
			return fmt.Sprintf(gridIDFmt, i/cols, i%cols)
		})
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					if err = addEdge(g, cfg, methodGrid, u, cells[r*cols+c+1], true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(g, cfg, methodGrid, u, cells[(r+1)*cols+c], true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
