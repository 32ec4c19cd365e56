package flow

import (
	"context"
	"math"
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// EdmondsKarp computes a maximum flow from source to sink by repeatedly
// augmenting along a shortest (fewest-arc) residual path.
//
// Complexity: O(V * E^2).
// Cancellation: ctx is checked once per BFS dequeue; on cancellation the
// context error is returned with no Result.
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink core.NodeIdx, opts *FlowOptions) (*Result, error) {
	nw, err := newNetwork(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	var total int64
	for {
		parent := *vec.Repeat[core.NodeIdx](noArc, nw.nodes)
		if _, err = nw.levels(ctx, &parent); err != nil {
			return nil, err
		}
		if parent.At(sink) == noArc {
			break
		}

		// walk back from the sink collecting arcs and the bottleneck
		var path []arcIdx
		bottle := int64(math.MaxInt64)
		for v := sink; v != source; {
			a := parent.At(v)
			path = append(path, a)
			bottle = min(bottle, nw.arcs.At(a).res)
			v = nw.arcs.At(twin(a)).to
		}
		slices.Reverse(path)
		nw.augment(path, bottle)
		total += bottle
	}

	return nw.result(ctx, total)
}
