package builder

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse builds an Erdős–Rényi G(n, p) graph. Each candidate pair is
// kept with probability p, in ascending (i, j) order: unordered pairs i<j
// for undirected graphs, ordered pairs for directed ones, plus i==j when
// loops are allowed. p of exactly 0 or 1 needs no rng.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addNodes(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}

		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		directed, loops := g.Directed(), g.Looped()
		for i, u := range ids {
			for j, v := range ids {
				switch {
				case i == j && !loops:
					continue
				case !directed && j < i:
					continue
				}
				if !keep() {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, u, v, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
