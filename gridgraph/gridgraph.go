package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph validates values and copies them row-major into a GridGraph.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if uint64(w)*uint64(h) > math.MaxUint32-1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrGridTooLarge, w, h)
	}

	gg := &GridGraph{
		Width:         w,
		Height:        h,
		Values:        *vec.WithCapacity[CellIdx, int](w * h),
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets4,
	}
	if opts.Conn == Conn8 {
		gg.offsets = offsets8
	}
	for _, row := range values {
		gg.Values.ExtendFromSlice(row)
	}

	return gg, nil
}

// From2D is NewGridGraph with LandThreshold 1 and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x, y) lies inside the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// CellAt returns the cell at (x, y), or NoCell and false when out of bounds.
func (gg *GridGraph) CellAt(x, y int) (CellIdx, bool) {
	if !gg.InBounds(x, y) {
		return NoCell, false
	}

	return idx.New[CellIdx](uint(y*gg.Width + x)), true
}

// Coordinate converts a cell back to (x, y).
func (gg *GridGraph) Coordinate(c CellIdx) (x, y int) {
	i := int(c.Index())

	return i % gg.Width, i / gg.Width
}

// IsLand reports whether c holds a value ≥ LandThreshold.
func (gg *GridGraph) IsLand(c CellIdx) bool {
	v, ok := gg.Values.Get(c)

	return ok && v >= gg.LandThreshold
}

// Neighbors returns the in-bounds neighbors of c, clockwise from north.
func (gg *GridGraph) Neighbors(c CellIdx) []CellIdx {
	x, y := gg.Coordinate(c)
	out := make([]CellIdx, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		if nb, ok := gg.CellAt(x+d[0], y+d[1]); ok {
			out = append(out, nb)
		}
	}

	return out
}

// Label returns the node label ToCoreGraph gives c: "x,y".
func (gg *GridGraph) Label(c CellIdx) string {
	x, y := gg.Coordinate(c)

	return fmt.Sprintf("%d,%d", x, y)
}

// NodeOf maps a cell to its node in the graph returned by ToCoreGraph.
func NodeOf(c CellIdx) core.NodeIdx { return idx.New[core.NodeIdx](c.Index()) }

// CellOf maps a node of the graph returned by ToCoreGraph back to its cell.
func CellOf(n core.NodeIdx) CellIdx { return idx.New[CellIdx](n.Index()) }

// ToCoreGraph builds an undirected, unweighted graph with one node per cell
// (water included) and one edge per neighboring pair. Node n corresponds to
// CellOf(n).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithNodeCapacity(gg.Values.Len()))
	for c := range gg.Values.Indices() {
		if _, err := g.AddNode(gg.Label(c)); err != nil {
			return nil, err
		}
	}
	for c := range gg.Values.Indices() {
		for _, nb := range gg.Neighbors(c) {
			if nb.Less(c) {
				continue
			}
			if _, err := g.AddEdge(NodeOf(c), NodeOf(nb), 0); err != nil {
				return nil, fmt.Errorf("gridgraph: edge %s-%s: %w", gg.Label(c), gg.Label(nb), err)
			}
		}
	}

	return g, nil
}
