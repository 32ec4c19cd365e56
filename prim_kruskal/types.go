// Package prim_kruskal computes a Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph with Prim's or Kruskal's algorithm.
//
// Both return the tree as a list of core.EdgeIdx into the input graph plus
// the total weight, so callers can read endpoints and metadata back from the
// graph instead of receiving copies.
//
//   - Kruskal(g): stable-sorts edges by weight and merges components with a
//     union-find keyed by core.NodeIdx. O(E log E).
//   - Prim(g, root): grows one tree from root with a min-heap of candidate
//     edges. O(E log E).
//
// Self-loops never join a tree. With ties both algorithms prefer the lower
// EdgeIdx, so results are deterministic.
//
// Errors:
//
//	ErrInvalidGraph  - nil, directed or unweighted graph.
//	ErrRootNotFound  - Prim root is not a node of the graph.
//	ErrDisconnected  - the graph is empty or has more than one component.
//	ErrUnknownMethod - Compute called with an unrecognized Method.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/indexvec/core"
)

// ErrInvalidGraph is returned when the input graph is nil, directed or
// unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrRootNotFound is returned when Prim's root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// ErrDisconnected is returned when no spanning tree exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for an unrecognized method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MSTOptions selects the algorithm and, for Prim, the root.
type MSTOptions struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is Prim's starting node. core.NoNode starts at the first node.
	Root core.NodeIdx
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets Prim's starting node.
func WithRoot(root core.NodeIdx) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions selects Kruskal with no explicit root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   core.NoNode,
	}
}

// Compute runs the configured algorithm on graph.
func Compute(graph *core.Graph, opts ...Option) ([]core.EdgeIdx, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate applies the checks shared by both algorithms.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}
	if graph.NodeCount() == 0 {
		return ErrDisconnected
	}

	return nil
}
