// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state table)
package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state vec.Vec[core.NodeIdx, color]
	order []core.NodeIdx // post-order
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Among valid orderings it returns the one produced by visiting roots and
// out-edges in index order.
//
// Returns ErrGraphNil, ErrUndirected, ErrCycleDetected (wrapped with the
// node that closed the cycle), or the context error.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]core.NodeIdx, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.NodeCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: *vec.Repeat[core.NodeIdx](White, n),
		order: make([]core.NodeIdx, 0, n),
	}
	for v, c := range sorter.state.Enumerate() {
		if c != White {
			continue
		}
		if err := sorter.visit(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from n, marking states and detecting back-edges.
func (t *topoSorter) visit(n core.NodeIdx) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch c, ok := t.state.Get(n); {
	case !ok:
		// added after the sort began
		return nil
	case c == Gray:
		return fmt.Errorf("%w at node %v", ErrCycleDetected, n)
	case c == Black:
		return nil
	}
	t.state.Set(n, Gray)

	nbs, err := t.graph.Neighbors(n)
	if err != nil {
		return err
	}
	for _, nbr := range nbs {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state.Set(n, Black)
	t.order = append(t.order, n)

	return nil
}
