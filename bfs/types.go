// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start node is not in the graph.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrNoPath is returned by PathTo for a node the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Unreached is the Depth of a node the search did not reach.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(n core.NodeIdx, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n core.NodeIdx, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n core.NodeIdx, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.NodeIdx) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.NodeIdx, int) {},
		OnDequeue:      func(core.NodeIdx, int) {},
		OnVisit:        func(core.NodeIdx, int) error { return nil },
		FilterNeighbor: func(_, _ core.NodeIdx) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n core.NodeIdx, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(n core.NodeIdx, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n core.NodeIdx, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeIdx) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal. Depth and Parent are indexed
// by core.NodeIdx and cover every node of the graph at the time of the call:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance in edges from Start, or Unreached.
//   - Parent: predecessor in the BFS tree, or core.NoNode for Start and
//     unreached nodes.
type Result struct {
	Start  core.NodeIdx
	Order  []core.NodeIdx
	Depth  vec.Vec[core.NodeIdx, int]
	Parent vec.Vec[core.NodeIdx, core.NodeIdx]
}

// Reached reports whether the search reached n.
func (r *Result) Reached(n core.NodeIdx) bool {
	d, ok := r.Depth.Get(n)

	return ok && d != Unreached
}

// PathTo reconstructs the path from Start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.NodeIdx) ([]core.NodeIdx, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := make([]core.NodeIdx, 0, r.Depth.At(dest)+1)
	for cur := dest; cur != core.NoNode; cur = r.Parent.At(cur) {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
