// Package flow computes maximum flows and minimum cuts on core graphs with
// the Edmonds–Karp and Dinic algorithms.
//
// Capacities are edge weights. In unweighted graphs every edge has capacity
// 1, so the max flow counts edge-disjoint paths. An undirected edge carries
// its capacity in both directions.
//
// Both algorithms run on a residual network whose arcs are addressed by a
// private index type: edge e owns arcs 2e (From→To) and 2e+1 (To→From), so
// an arc's twin and its source edge are one bit operation away.
//
// Errors:
//
//	ErrGraphNil       - nil graph.
//	ErrSourceNotFound - source is not a node of the graph.
//	ErrSinkNotFound   - sink is not a node of the graph.
//	ErrSourceIsSink   - source and sink coincide.
//	EdgeError         - an edge has negative capacity.
//	ctx.Err()         - the context was cancelled mid-run.
package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Sentinel errors for flow computations.
var (
	ErrGraphNil       = errors.New("flow: graph is nil")
	ErrSourceNotFound = errors.New("flow: source node not found")
	ErrSinkNotFound   = errors.New("flow: sink node not found")
	ErrSourceIsSink   = errors.New("flow: source and sink are the same node")
)

// EdgeError reports an edge with negative capacity.
type EdgeError struct {
	Edge     core.EdgeIdx
	From, To core.NodeIdx
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %v (%v→%v): %d", e.Edge, e.From, e.To, e.Cap)
}

// FlowOptions tunes a flow run. A nil *FlowOptions uses the defaults.
type FlowOptions struct {
	// OnAugment, if set, is called after each augmenting path with the
	// graph edges it crossed, in order, and the amount pushed.
	OnAugment func(path []core.EdgeIdx, amount int64)
}

// Result is the outcome of a max-flow run.
//   - MaxFlow: total flow from source to sink.
//   - Flow: net flow on each edge from its From to its To endpoint.
//     Negative values on undirected edges mean the flow runs To→From.
//   - SourceSide: true for nodes still reachable from the source in the
//     final residual network. These nodes form the source side of a
//     minimum cut.
type Result struct {
	MaxFlow    int64
	Flow       vec.Vec[core.EdgeIdx, int64]
	SourceSide vec.Vec[core.NodeIdx, bool]

	cut []core.EdgeIdx
}

// MinCut returns the edges crossing from the source side to the sink side,
// in index order. Their capacities sum to MaxFlow.
func (r *Result) MinCut() []core.EdgeIdx {
	return r.cut
}
