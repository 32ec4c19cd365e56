package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Dinic computes a maximum flow from source to sink with blocking flows on
// BFS level graphs.
//
// Complexity: O(V^2 * E) in general, O(E * sqrt(V)) on unit-capacity graphs.
// Cancellation: ctx is checked during each level BFS and before each
// augmenting DFS.
func Dinic(ctx context.Context, g *core.Graph, source, sink core.NodeIdx, opts *FlowOptions) (*Result, error) {
	nw, err := newNetwork(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	d := &dinic{nw: nw}
	var total int64
	for {
		if d.level, err = nw.levels(ctx, nil); err != nil {
			return nil, err
		}
		if d.level.At(sink) < 0 {
			break
		}
		d.next = *vec.Repeat[core.NodeIdx](0, nw.nodes)
		for {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			d.path = d.path[:0]
			f := d.push(source, math.MaxInt64)
			if f == 0 {
				break
			}
			nw.augment(d.path, f)
			total += f
		}
	}

	return nw.result(ctx, total)
}

// dinic is the per-phase state of a blocking-flow search.
type dinic struct {
	nw    *network
	level vec.Vec[core.NodeIdx, int]
	next  vec.Vec[core.NodeIdx, int] // first arc of out[u] not yet exhausted
	path  []arcIdx
}

// push finds one path from u to the sink along level-increasing arcs and
// returns its bottleneck, leaving the arcs in d.path. Residuals are not
// modified; the caller augments.
func (d *dinic) push(u core.NodeIdx, limit int64) int64 {
	if u == d.nw.sink {
		return limit
	}
	out := d.nw.arcsFrom(u)
	for next := d.next.Ref(u); *next < len(out); *next++ {
		a := out[*next]
		ar := d.nw.arcs.At(a)
		if ar.res <= 0 || d.level.At(ar.to) != d.level.At(u)+1 {
			continue
		}
		d.path = append(d.path, a)
		if f := d.push(ar.to, min(limit, ar.res)); f > 0 {
			return f
		}
		d.path = d.path[:len(d.path)-1]
	}

	return 0
}
