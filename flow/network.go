// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: residual network shared by Edmonds–Karp and Dinic.
// Policy:
//   - Arcs live in one vec.Vec keyed by arcIdx; edge e owns arcs 2e and 2e+1.
//   - out[n] lists the arcs leaving n in edge order, forward arc first.
//   - Self-loops get arcs (to keep the pairing) but are never linked.
//   - Nodes and edges added to the graph after the snapshot are ignored.

package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

type arcDomain struct{}

func (arcDomain) Limit() (uint, bool) { return math.MaxUint32 - 1, true }
func (arcDomain) Checked() bool       { return true }
func (arcDomain) DefaultIndex() uint  { return math.MaxUint32 }

// arcIdx addresses a residual arc.
type arcIdx = idx.Of[uint32, arcDomain]

var noArc = idx.Default[arcIdx]()

// twin returns the reverse arc of a.
func twin(a arcIdx) arcIdx { return idx.New[arcIdx](a.Index() ^ 1) }

// edgeOf returns the graph edge that owns a.
func edgeOf(a arcIdx) core.EdgeIdx { return idx.New[core.EdgeIdx](a.Index() / 2) }

// arc is one direction of an edge in the residual network.
type arc struct {
	to  core.NodeIdx
	res int64 // residual capacity
}

type network struct {
	source, sink core.NodeIdx
	nodes        int
	directed     bool
	arcs         vec.Vec[arcIdx, arc]
	out          vec.Vec[core.NodeIdx, []arcIdx]
	capacity     vec.Vec[core.EdgeIdx, int64]
	opts         FlowOptions
}

// newNetwork validates the inputs and snapshots g into a residual network.
func newNetwork(g *core.Graph, source, sink core.NodeIdx, opts *FlowOptions) (*network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	weighted, directed := g.Weighted(), g.Directed()
	nw := &network{source: source, sink: sink, directed: directed}
	if opts != nil {
		nw.opts = *opts
	}
	for e, edge := range g.Edges() {
		c := edge.Weight
		if !weighted {
			c = 1
		}
		if c < 0 {
			return nil, EdgeError{Edge: e, From: edge.From, To: edge.To, Cap: c}
		}
		back := c
		if directed {
			back = 0
		}
		nw.capacity.Push(c)
		fwd := nw.arcs.Push(arc{to: edge.To, res: c})
		rev := nw.arcs.Push(arc{to: edge.From, res: back})
		if edge.From == edge.To {
			continue
		}
		nw.link(edge.From, fwd)
		nw.link(edge.To, rev)
	}
	// counted after the edge snapshot so every endpoint is covered
	nw.nodes = g.NodeCount()

	return nw, nil
}

func (nw *network) link(n core.NodeIdx, a arcIdx) {
	if n.Index() >= uint(nw.out.Len()) {
		nw.out.Resize(int(n.Index())+1, nil)
	}
	list := nw.out.Ref(n)
	*list = append(*list, a)
}

// arcsFrom returns the arcs leaving n; nodes without arcs have none.
func (nw *network) arcsFrom(n core.NodeIdx) []arcIdx {
	list, _ := nw.out.Get(n)

	return list
}

// push moves amount along a and back-credits its twin.
func (nw *network) push(a arcIdx, amount int64) {
	nw.arcs.Ref(a).res -= amount
	nw.arcs.Ref(twin(a)).res += amount
}

// augment pushes amount along path and reports it to OnAugment.
func (nw *network) augment(path []arcIdx, amount int64) {
	for _, a := range path {
		nw.push(a, amount)
	}
	if nw.opts.OnAugment == nil {
		return
	}
	edges := make([]core.EdgeIdx, len(path))
	for i, a := range path {
		edges[i] = edgeOf(a)
	}
	nw.opts.OnAugment(edges, amount)
}

// levels runs a BFS from the source over arcs with residual capacity and
// returns each node's distance, or -1. When parent is non-nil it records the
// arc that reached each node and stops as soon as the sink is reached.
func (nw *network) levels(ctx context.Context, parent *vec.Vec[core.NodeIdx, arcIdx]) (vec.Vec[core.NodeIdx, int], error) {
	level := *vec.Repeat[core.NodeIdx](-1, nw.nodes)
	level.Set(nw.source, 0)
	queue := []core.NodeIdx{nw.source}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return level, err
		}
		u := queue[0]
		queue = queue[1:]
		for _, a := range nw.arcsFrom(u) {
			ar := nw.arcs.At(a)
			if ar.res <= 0 || level.At(ar.to) >= 0 {
				continue
			}
			level.Set(ar.to, level.At(u)+1)
			if parent != nil {
				parent.Set(ar.to, a)
				if ar.to == nw.sink {
					return level, nil
				}
			}
			queue = append(queue, ar.to)
		}
	}

	return level, nil
}

// result reads flows and the minimum cut off the final residual network.
func (nw *network) result(ctx context.Context, total int64) (*Result, error) {
	level, err := nw.levels(ctx, nil)
	if err != nil {
		return nil, err
	}
	res := &Result{
		MaxFlow:    total,
		SourceSide: *vec.WithCapacity[core.NodeIdx, bool](nw.nodes),
	}
	for l := range level.All() {
		res.SourceSide.Push(l >= 0)
	}
	for e, c := range nw.capacity.Enumerate() {
		fwd := idx.New[arcIdx](2 * e.Index())
		res.Flow.Push(c - nw.arcs.At(fwd).res)
		if c == 0 {
			continue
		}
		from, to := res.SourceSide.At(nw.arcs.At(twin(fwd)).to), res.SourceSide.At(nw.arcs.At(fwd).to)
		if (from && !to) || (!nw.directed && to && !from) {
			res.cut = append(res.cut, e)
		}
	}

	return res, nil
}
