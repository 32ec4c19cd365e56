// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap holds up to E stale entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) rejects negative weights.
//   - Any edge with weight ≥ InfEdgeThreshold is a wall.
//   - Exploration stops once the smallest queued distance exceeds MaxDistance.
//   - Stale heap entries are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Dijkstra computes shortest distances from source to every node of the
// weighted graph g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. opts must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain source (ErrSourceNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Nodes added to g while the search runs are ignored.
func Dijkstra(g *core.Graph, source core.NodeIdx, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	for e, edge := range g.Edges() {
		if edge.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v (%v→%v) weight=%d",
				ErrNegativeWeight, e, edge.From, edge.To, edge.Weight)
		}
	}

	n := g.NodeCount()
	r := &runner{
		g:    g,
		opts: cfg,
		res: &Result{
			Source: source,
			Dist:   *vec.Repeat[core.NodeIdx](Inf, n),
			Prev:   *vec.Repeat[core.NodeIdx](core.NoNode, n),
			Via:    *vec.Repeat[core.NodeIdx](core.NoEdge, n),
		},
		done: *vec.Repeat[core.NodeIdx](false, n),
	}
	r.res.Dist.Set(source, 0)
	heap.Push(&r.pq, nodeItem{node: source, dist: 0})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *core.Graph
	opts Options
	res  *Result
	done vec.Vec[core.NodeIdx, bool] // distance finalized
	pq   nodePQ
}

// process pops the closest unfinished node and relaxes its edges until the
// heap is empty or the frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.done.At(item.node) {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.done.Set(item.node, true)
		if err := r.relax(item.node); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every node one edge away from u.
// Assumes Dist[u] is final.
func (r *runner) relax(u core.NodeIdx) error {
	out, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %v: %w", u, err)
	}
	du := r.res.Dist.At(u)
	for _, e := range out {
		edge, err := r.g.Edge(e)
		if err != nil {
			return fmt.Errorf("dijkstra: edge %v: %w", e, err)
		}
		if edge.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		v := edge.Other(u)
		dv, ok := r.res.Dist.Get(v)
		if !ok {
			continue // node added after the search started
		}
		nd := du + edge.Weight
		if nd > r.opts.MaxDistance || nd >= dv {
			continue
		}
		r.res.Dist.Set(v, nd)
		r.res.Prev.Set(v, u)
		r.res.Via.Set(v, e)
		heap.Push(&r.pq, nodeItem{node: v, dist: nd})
	}

	return nil
}

// nodeItem is a queued node and the distance it was queued with.
type nodeItem struct {
	node core.NodeIdx
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, ties broken by node
// index so runs are deterministic.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node.Less(pq[j].node)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
