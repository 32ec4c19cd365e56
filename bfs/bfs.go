// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.NodeIdx
	depth int
}

// walker encapsulates mutable BFS state. res.Depth doubles as the visited set.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
// On error the partial Result is returned alongside it.
func BFS(g *core.Graph, start core.NodeIdx, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeIdx, 0, n),
			Depth:  *vec.Repeat[core.NodeIdx](Unreached, n),
			Parent: *vec.Repeat[core.NodeIdx](core.NoNode, n),
		},
	}

	w.enqueue(start, 0, core.NoNode)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(n core.NodeIdx, d int, parent core.NodeIdx) {
	w.res.Depth.Set(n, d)
	w.res.Parent.Set(n, parent)
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in ascending NodeIdx order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.node)
	if err != nil {
		return err
	}
	for _, nbr := range neighbors {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// Nodes added to g after the search began have no slot in Depth.
		d, ok := w.res.Depth.Get(nbr)
		if !ok || d != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.node)
	}

	return nil
}
