package gridgraph

import (
	"container/list"
	"fmt"
	"math"

	"github.com/katalvlaran/indexvec/vec"
)

// ExpandIsland finds the cheapest chain of cells joining island src to
// island dst, where stepping onto water costs 1 and onto land costs 0.
// It returns the chain from a src cell to the first dst cell reached, and
// the number of water cells that must be converted.
//
// Implementation: 0-1 BFS seeded with every src cell.
func (gg *GridGraph) ExpandIsland(src, dst CompIdx) (path []CellIdx, cost int, err error) {
	cs := gg.ConnectedComponents()
	srcCells, ok := cs.Cells.Get(src)
	if !ok {
		return nil, 0, fmt.Errorf("%w: src %v", ErrComponentIndex, src)
	}
	if _, ok = cs.Cells.Get(dst); !ok {
		return nil, 0, fmt.Errorf("%w: dst %v", ErrComponentIndex, dst)
	}

	dist := *vec.Repeat[CellIdx](math.MaxInt, gg.Values.Len())
	prev := *vec.Repeat[CellIdx](NoCell, gg.Values.Len())
	dq := list.New()
	for _, c := range srcCells {
		dist.Set(c, 0)
		dq.PushBack(c)
	}

	target := NoCell
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(CellIdx)
		if cs.Of.At(u) == dst {
			target = u
			break
		}
		for _, v := range gg.Neighbors(u) {
			step := 1
			if gg.IsLand(v) {
				step = 0
			}
			if nd := dist.At(u) + step; nd < dist.At(v) {
				dist.Set(v, nd)
				prev.Set(v, u)
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target == NoCell {
		return nil, 0, fmt.Errorf("%w: %v→%v", ErrNoPath, src, dst)
	}

	for at := target; at != NoCell; at = prev.At(at) {
		path = append(path, at)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, dist.At(target), nil
}
