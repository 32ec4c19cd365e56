// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction-time policy and a Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph; reads still take mu for a
//     consistent view next to concurrent mutation.

package core

// GraphStats is a point-in-time summary of a Graph's policy and size.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	NodeCount   int
	EdgeCount   int
	LoopCount   int
}

// Directed reports whether edges are one-way.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Notes:
//   - This reports a policy flag, not whether any stored edge has Weight != 0.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats returns a snapshot of the graph's flags and counts.
//
// Implementation:
//   - Stage 1: Capture flags and table sizes under the read lock.
//   - Stage 2: Count self-loops in one pass over the edge table.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		NodeCount:   g.nodes.Len(),
		EdgeCount:   g.edges.Len(),
	}
	for e := range g.edges.All() {
		if e.From == e.To {
			stats.LoopCount++
		}
	}

	return &stats
}

// options reconstructs the GraphOption list that reproduces g's policy.
// Caller must hold mu.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed), WithNodeCapacity(g.nodes.Len())}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
