// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// color represents the DFS visitation state of a node.
type color uint8

const (
	White color = iota // White: the node has not been visited yet.
	Gray               // Gray: the node is in the recursion stack (visiting).
	Black              // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist in the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates TopologicalSort was called on an undirected graph.
	ErrUndirected = errors.New("dfs: graph is undirected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, and full-graph mode.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n core.NodeIdx) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before appending to Result.Order.
	// Returning an error aborts traversal.
	OnExit func(n core.NodeIdx) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(n core.NodeIdx) bool

	// FullTraversal, if true, runs DFS from every unvisited node in index
	// order, covering disconnected components (forest traversal).
	FullTraversal bool

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(n core.NodeIdx) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(n core.NodeIdx) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; a negative limit is
// rejected with ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(n) == false, that neighbor is skipped and counted in
// Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(n core.NodeIdx) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal. Depth and Parent
// are indexed by core.NodeIdx and cover every node of the graph at the time
// of the call.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeIdx

	// Depth is the tree depth of each visited node, or -1 if unvisited.
	Depth vec.Vec[core.NodeIdx, int]

	// Parent is the node from which each node was first discovered, or
	// core.NoNode for tree roots and unvisited nodes.
	Parent vec.Vec[core.NodeIdx, core.NodeIdx]

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, across all trees.
	SkippedNeighbors int
}

// Visited reports whether the traversal reached n.
func (r *Result) Visited(n core.NodeIdx) bool {
	d, ok := r.Depth.Get(n)

	return ok && d >= 0
}
