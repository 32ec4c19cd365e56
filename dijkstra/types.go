// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted core graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrSourceNotFound  if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrNoPath          from Result.PathTo for an unreached node.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	// Use bfs for hop counts on unweighted graphs.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrSourceNotFound indicates that the source node is not in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would wall off every edge.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo for a node the search did not reach.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Inf is the distance of an unreached node.
const Inf int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes farther than this stay unreached. Default Inf (no cap).
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default Inf (no walls).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no walls.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value is recorded and reported as ErrBadMaxDistance.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold marks every edge with weight ≥ t as impassable.
// A value ≤ 0 is recorded and reported as ErrBadInfThreshold.
func WithInfEdgeThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadInfThreshold, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// Result holds the shortest-path tree rooted at Source. Dist, Prev and Via
// are indexed by core.NodeIdx and cover every node present when the search
// started:
//   - Dist: total weight from Source, or Inf.
//   - Prev: predecessor on the shortest path, or core.NoNode.
//   - Via:  edge taken from Prev, or core.NoEdge.
type Result struct {
	Source core.NodeIdx
	Dist   vec.Vec[core.NodeIdx, int64]
	Prev   vec.Vec[core.NodeIdx, core.NodeIdx]
	Via    vec.Vec[core.NodeIdx, core.EdgeIdx]
}

// Reached reports whether the search found a path to n.
func (r *Result) Reached(n core.NodeIdx) bool {
	d, ok := r.Dist.Get(n)

	return ok && d != Inf
}

// PathTo returns the nodes on the shortest path from Source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.NodeIdx) ([]core.NodeIdx, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	var path []core.NodeIdx
	for cur := dest; cur != core.NoNode; cur = r.Prev.At(cur) {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// EdgesTo returns the edges on the shortest path from Source to dest, in
// travel order. It is empty for dest == Source.
// Returns ErrNoPath if dest was not reached.
func (r *Result) EdgesTo(dest core.NodeIdx) ([]core.EdgeIdx, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	var edges []core.EdgeIdx
	for cur := dest; cur != r.Source; cur = r.Prev.At(cur) {
		edges = append(edges, r.Via.At(cur))
	}
	slices.Reverse(edges)

	return edges, nil
}
