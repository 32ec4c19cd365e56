// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/OutEdges/Degree.
// Determinism:
//   - Neighbors() is sorted by NodeIdx and deduplicated.
//   - OutEdges() follows edge insertion order.
// Concurrency:
//   - Read lock only; results are fresh slices owned by the caller.

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns the distinct nodes reachable from n over one edge,
// sorted by index. In undirected graphs both endpoints see each other.
// A self-loop lists n as its own neighbor.
//
// Returns ErrNodeNotFound if n is not a node of g.
// Complexity: O(d log d) where d = Degree(n).
func (g *Graph) Neighbors(n NodeIdx) ([]NodeIdx, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.inc.Get(n)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}
	out := make([]NodeIdx, 0, len(list))
	for _, e := range list {
		out = append(out, g.edges.At(e).Other(n))
	}
	slices.SortFunc(out, NodeIdx.Compare)

	return slices.Compact(out), nil
}

// OutEdges returns the edges leaving n, in insertion order. In undirected
// graphs this is every edge incident to n.
//
// Returns ErrNodeNotFound if n is not a node of g.
// Complexity: O(d).
func (g *Graph) OutEdges(n NodeIdx) ([]EdgeIdx, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.inc.Get(n)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}

	return slices.Clone(list), nil
}

// Degree returns the number of edges leaving n (incident to n when
// undirected). A self-loop counts once.
// Complexity: O(1).
func (g *Graph) Degree(n NodeIdx) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.inc.Get(n)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}

	return len(list), nil
}
