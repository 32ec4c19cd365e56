package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Kruskal computes an MST of graph by scanning edges in ascending weight
// and keeping each one that joins two components.
//
// Returns the tree edges in the order they were accepted and their total
// weight. A single-node graph yields an empty tree.
func Kruskal(graph *core.Graph) ([]core.EdgeIdx, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	type ranked struct {
		id   core.EdgeIdx
		edge core.Edge
	}
	var cands []ranked
	for id, e := range graph.Edges() {
		if e.From == e.To {
			continue
		}
		cands = append(cands, ranked{id: id, edge: e})
	}
	// Edges() yields ascending EdgeIdx; a stable sort keeps that as tiebreak.
	slices.SortStableFunc(cands, func(a, b ranked) int {
		return cmp.Compare(a.edge.Weight, b.edge.Weight)
	})

	numNodes := graph.NodeCount()
	ds := newDisjointSet(numNodes)
	mst := make([]core.EdgeIdx, 0, numNodes-1)
	var total int64
	for _, c := range cands {
		if len(mst) == numNodes-1 {
			break
		}
		if !ds.union(c.edge.From, c.edge.To) {
			continue
		}
		mst = append(mst, c.id)
		total += c.edge.Weight
	}

	if len(mst) < numNodes-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find over node indices with path halving and
// union by rank.
type disjointSet struct {
	parent vec.Vec[core.NodeIdx, core.NodeIdx]
	rank   vec.Vec[core.NodeIdx, uint8]
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{rank: *vec.Repeat[core.NodeIdx, uint8](0, n)}
	ds.parent.Reserve(n)
	for i := 0; i < n; i++ {
		ds.parent.Push(ds.parent.NextIdx())
	}

	return ds
}

func (ds *disjointSet) find(u core.NodeIdx) core.NodeIdx {
	for p := ds.parent.At(u); p != u; p = ds.parent.At(u) {
		gp := ds.parent.At(p)
		ds.parent.Set(u, gp)
		u = gp
	}

	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v core.NodeIdx) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch cmp.Compare(ds.rank.At(ru), ds.rank.At(rv)) {
	case -1:
		ds.parent.Set(ru, rv)
	case 1:
		ds.parent.Set(rv, ru)
	default:
		ds.parent.Set(rv, ru)
		*ds.rank.Ref(ru)++
	}

	return true
}
