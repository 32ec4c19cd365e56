// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones keep every NodeIdx and EdgeIdx of the source.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

import (
	"maps"
	"slices"

	"github.com/katalvlaran/indexvec/vec"
)

// CloneEmpty returns a new Graph with identical configuration and nodes,
// but no edges. Node indices are preserved.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.options()...)
	clone.nodes.ExtendFromSlice(g.nodes.Raw)
	clone.inc.Resize(g.nodes.Len(), nil)
	maps.Copy(clone.byLabel, g.byLabel)

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, edges and
// incidence lists. Node metadata maps are shared.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.options()...)
	clone.nodes.ExtendFromSlice(g.nodes.Raw)
	clone.edges = *g.edges.Clone()
	for list := range g.inc.All() {
		clone.inc.Push(slices.Clone(list))
	}
	maps.Copy(clone.byLabel, g.byLabel)

	return clone
}

// Clear resets the graph to an empty state while preserving configuration
// flags. Indices handed out before Clear must not be reused afterwards.
//
// Complexity: O(V + E) to release the tables.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes.Clear()
	g.edges.Clear()
	g.inc.Clear()
	clear(g.byLabel)
}

// snapshotEdges copies the edge table. Caller must hold mu.
func (g *Graph) snapshotEdges() *vec.Vec[EdgeIdx, Edge] {
	return g.edges.Clone()
}
