// SPDX-License-Identifier: MIT
//
// impl_classic.go - Path, Cycle, Star, Wheel and Complete.
// Node order: labels idFn(0..n-1), then "Center" where documented.
// Edge order: ascending by the first endpoint, then the second.
// Path and Cycle edges point forward in directed graphs; spokes and
// Complete edges are mirrored.

package builder

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
)

const (
	// CenterLabel is the hub label of Star and Wheel.
	CenterLabel = "Center"

	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// Path builds P_n: n nodes joined 0-1-...-(n-1). n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		ids, err := addNodes(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}

		return chain(g, cfg, methodPath, ids, false)
	}
}

// Cycle builds C_n: a path closed by the edge (n-1)-0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		ids, err := addNodes(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}

		return chain(g, cfg, methodCycle, ids, true)
	}
}

// Star builds a hub "Center" joined to n-1 leaves. n ≥ 2 counts the hub.
// The hub is added first.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		center, err := g.AddNode(CenterLabel)
		if err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterLabel, err)
		}
		leaves, err := addNodes(g, methodStar, n-1, cfg.idFn)
		if err != nil {
			return err
		}

		return spokes(g, cfg, methodStar, center, leaves)
	}
}

// Wheel builds a rim C_{n-1} plus a hub "Center" joined to every rim node.
// n ≥ 4 counts the hub. Rim nodes are added first, then the hub; rim edges
// precede spokes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		rim, err := addNodes(g, methodWheel, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		if err = chain(g, cfg, methodWheel, rim, true); err != nil {
			return err
		}
		center, err := g.AddNode(CenterLabel)
		if err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodWheel, CenterLabel, err)
		}

		return spokes(g, cfg, methodWheel, center, rim)
	}
}

// Complete builds K_n: every pair of distinct nodes is joined. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		ids, err := addNodes(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i, u := range ids {
			for _, v := range ids[i+1:] {
				if err = addEdge(g, cfg, methodComplete, u, v, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// chain joins consecutive ids, and the last to the first when closed.
func chain(g *core.Graph, cfg builderConfig, method string, ids []core.NodeIdx, closed bool) error {
	for i := 1; i < len(ids); i++ {
		if err := addEdge(g, cfg, method, ids[i-1], ids[i], false); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, cfg, method, ids[len(ids)-1], ids[0], false)
	}

	return nil
}

func spokes(g *core.Graph, cfg builderConfig, method string, center core.NodeIdx, leaves []core.NodeIdx) error {
	for _, leaf := range leaves {
		if err := addEdge(g, cfg, method, center, leaf, true); err != nil {
			return err
		}
	}

	return nil
}
