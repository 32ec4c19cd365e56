// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/HasEdge/Edges/EdgeCount/FilterEdges.
// Determinism:
//   - EdgeIdx values are assigned densely in insertion order, starting at 0.
//   - Edges() yields edges in EdgeIdx order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/indexvec/vec"
)

// AddEdge creates a new edge from→to and returns its index.
//
// Steps:
//  1. Validate weight and loop policy.
//  2. Lock mu; check both endpoints exist.
//  3. If multi-edges are disabled, reject a second from→to edge.
//  4. Push the edge; record it in the incidence list of from, and of to
//     when the graph is undirected and from != to.
//
// On failure it returns NoEdge and an error wrapping ErrNodeNotFound,
// ErrBadWeight, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Panics with idx.ErrOverflow once the EdgeIdx space is exhausted.
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to NodeIdx, weight int64) (EdgeIdx, error) {
	none := NoEdge
	if !g.weighted && weight != 0 {
		return none, fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if from == to && !g.allowLoops {
		return none, fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNode(from) {
		return none, fmt.Errorf("%w: from %v", ErrNodeNotFound, from)
	}
	if !g.hasNode(to) {
		return none, fmt.Errorf("%w: to %v", ErrNodeNotFound, to)
	}
	if !g.allowMulti && g.hasEdge(from, to) {
		return none, fmt.Errorf("%w: %v->%v", ErrMultiEdgeNotAllowed, from, to)
	}

	e := g.edges.Push(Edge{From: from, To: to, Weight: weight})
	g.link(from, e)
	if !g.directed && from != to {
		g.link(to, e)
	}

	return e, nil
}

func (g *Graph) link(n NodeIdx, e EdgeIdx) {
	list := g.inc.Ref(n)
	*list = append(*list, e)
}

// Edge returns the edge at e, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(e EdgeIdx) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edge, ok := g.edges.Get(e)
	if !ok {
		return Edge{}, fmt.Errorf("%w: %v", ErrEdgeNotFound, e)
	}

	return edge, nil
}

// HasEdge reports whether at least one edge from→to exists. In undirected
// graphs the direction is ignored.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to NodeIdx) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(from) || !g.hasNode(to) {
		return false
	}

	return g.hasEdge(from, to)
}

// hasEdge assumes from is a valid node and mu is held.
func (g *Graph) hasEdge(from, to NodeIdx) bool {
	return slices.ContainsFunc(g.inc.At(from), func(e EdgeIdx) bool {
		return g.edges.At(e).Other(from) == to
	})
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Len()
}

// Edges yields every edge with its index, in index order, over a snapshot
// taken when Edges is called.
func (g *Graph) Edges() iter.Seq2[EdgeIdx, Edge] {
	g.mu.RLock()
	snap := vec.SliceOf[EdgeIdx](slices.Clone(g.edges.Raw))
	g.mu.RUnlock()

	return snap.Enumerate()
}

// FilterEdges returns the indices of the edges for which keep returns true,
// in index order.
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(EdgeIdx, Edge) bool) []EdgeIdx {
	var out []EdgeIdx
	for e, edge := range g.Edges() {
		if keep(e, edge) {
			out = append(out, e)
		}
	}

	return out
}
