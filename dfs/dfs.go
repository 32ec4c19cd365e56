// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
// It supports directed and undirected graphs, cancellation,
// pre‑ and post‑order hooks, depth and neighbor limits, full‑graph traversal, and diagnostics.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and the Depth/Parent tables.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components and start is ignored; otherwise, it
// starts only from start.
// On abort (context or hook) the partial Result is returned with the error.
func DFS(g *core.Graph, start core.NodeIdx, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]core.NodeIdx, 0, n),
		Depth:  *vec.Repeat[core.NodeIdx](-1, n),
		Parent: *vec.Repeat[core.NodeIdx](core.NoNode, n),
	}
	w := &dfsWalker{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.traverse(start, 0)
	}
	for v := range res.Depth.Indices() {
		if res.Visited(v) {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits n at the given depth, recursing to neighbors.
func (w *dfsWalker) traverse(n core.NodeIdx, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth.Set(n, depth)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(n)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%v): %w", n, err)
		}
		for _, nbr := range nbs {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			// Nodes added after the call began have no slot and are skipped.
			d, ok := w.res.Depth.Get(nbr)
			if !ok || d >= 0 {
				continue
			}
			w.res.Parent.Set(nbr, n)
			if err = w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", n, err)
		}
	}
	w.res.Order = append(w.res.Order, n)

	return nil
}
