package gridgraph

import (
	"github.com/katalvlaran/indexvec/vec"
)

// ConnectedComponents labels the islands of land cells.
//
// Islands are numbered in row-major order of their first cell; each
// island's cells are listed in BFS order from that cell.
func (gg *GridGraph) ConnectedComponents() *Components {
	cs := &Components{
		Of: *vec.Repeat[CellIdx](NoComp, gg.Values.Len()),
	}
	for start := range gg.Values.Indices() {
		if !gg.IsLand(start) || cs.Of.At(start) != NoComp {
			continue
		}
		k := cs.Cells.NextIdx()
		cs.Of.Set(start, k)
		queue := []CellIdx{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range gg.Neighbors(queue[qi]) {
				if gg.IsLand(nb) && cs.Of.At(nb) == NoComp {
					cs.Of.Set(nb, k)
					queue = append(queue, nb)
				}
			}
		}
		cs.Cells.Push(queue)
	}

	return cs
}
