package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Prim computes an MST of graph by growing a tree from root, always adding
// the cheapest edge that reaches a node outside the tree.
//
// root == core.NoNode starts at the first node. Returns the tree edges in
// the order they were added and their total weight.
func Prim(graph *core.Graph, root core.NodeIdx) ([]core.EdgeIdx, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	if root == core.NoNode {
		root = core.NodeIdx{}
	}
	if !graph.HasNode(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}

	numNodes := graph.NodeCount()
	p := &primState{
		g:       graph,
		inTree:  *vec.Repeat[core.NodeIdx](false, numNodes),
		mst:     make([]core.EdgeIdx, 0, numNodes-1),
		pending: edgePQ{},
	}
	if err := p.enter(root); err != nil {
		return nil, 0, err
	}
	for p.pending.Len() > 0 && len(p.mst) < numNodes-1 {
		c := heap.Pop(&p.pending).(candidate)
		if p.inTree.At(c.to) {
			continue
		}
		p.mst = append(p.mst, c.id)
		p.total += c.weight
		if err := p.enter(c.to); err != nil {
			return nil, 0, err
		}
	}

	if len(p.mst) < numNodes-1 {
		return nil, 0, ErrDisconnected
	}

	return p.mst, p.total, nil
}

// primState is the tree grown so far and its frontier.
type primState struct {
	g       *core.Graph
	inTree  vec.Vec[core.NodeIdx, bool]
	mst     []core.EdgeIdx
	total   int64
	pending edgePQ
}

// enter adds u to the tree and queues every edge from u to an outside node.
func (p *primState) enter(u core.NodeIdx) error {
	p.inTree.Set(u, true)
	out, err := p.g.OutEdges(u)
	if err != nil {
		return err
	}
	for _, id := range out {
		e, err := p.g.Edge(id)
		if err != nil {
			return err
		}
		v := e.Other(u)
		in, ok := p.inTree.Get(v)
		if !ok || in {
			continue
		}
		heap.Push(&p.pending, candidate{id: id, to: v, weight: e.Weight})
	}

	return nil
}

// candidate is a frontier edge leading to the node to.
type candidate struct {
	id     core.EdgeIdx
	to     core.NodeIdx
	weight int64
}

// edgePQ is a min-heap of candidates by weight, then by EdgeIdx.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].id.Less(pq[j].id)
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
