package builder

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
)

// addNodes adds n nodes labeled label(0..n-1) and returns their indices.
func addNodes(g *core.Graph, method string, n int, label IDFn) ([]core.NodeIdx, error) {
	ids := make([]core.NodeIdx, n)
	for i := range ids {
		id, err := g.AddNode(label(i))
		if err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, label(i), err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addEdge adds u→v with the next configured weight. When mirror is set and
// g is directed, v→u is added with the same weight.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v core.NodeIdx, mirror bool) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%v→%v, w=%d): %w", method, u, v, w, err)
	}
	if mirror && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%v→%v, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}

func tooFew(method string, n, floor int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, floor, ErrTooFewVertices)
}
