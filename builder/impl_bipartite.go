package builder

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite builds K_{n1,n2}: left nodes "<left>0.." then right nodes
// "<right>0..", with every left node joined to every right node (mirrored in
// directed graphs). Prefixes come from WithPartitionPrefix.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left, err := addNodes(g, methodCompleteBipartite, n1, PrefixIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addNodes(g, methodCompleteBipartite, n2, PrefixIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, cfg, methodCompleteBipartite, u, v, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
