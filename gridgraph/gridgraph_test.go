package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indexvec/bfs"
	"github.com/katalvlaran/indexvec/gridgraph"
	"github.com/katalvlaran/indexvec/idx"
)

func cell(i uint) gridgraph.CellIdx { return idx.New[gridgraph.CellIdx](i) }

func comp(i uint) gridgraph.CompIdx { return idx.New[gridgraph.CompIdx](i) }

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCells checks bounds, row-major addressing and neighbor order on 3×2.
func TestCells(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
		_, ok := gg.CellAt(xy[0], xy[1])
		assert.False(t, ok)
	}

	c, ok := gg.CellAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, cell(5), c)
	x, y := gg.Coordinate(c)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
	assert.Equal(t, "2,1", gg.Label(c))
	assert.True(t, gg.IsLand(c))
	assert.False(t, gg.IsLand(cell(0)))
	assert.False(t, gg.IsLand(gridgraph.NoCell))

	// north, east, south, west
	assert.Equal(t, []gridgraph.CellIdx{cell(1), cell(5), cell(3)}, gg.Neighbors(cell(4)))

	gg8, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Len(t, gg8.Neighbors(cell(0)), 3)
}

func TestLandThreshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 5
	gg, err := gridgraph.NewGridGraph([][]int{{4, 5, 9}}, opts)
	require.NoError(t, err)
	assert.False(t, gg.IsLand(cell(0)))
	assert.True(t, gg.IsLand(cell(1)))
	assert.Equal(t, 1, gg.ConnectedComponents().Len())
}

// TestConnectedComponents covers Conn4 against Conn8 on a diagonal pattern.
//
//	1 0 1
//	0 1 0
//	0 0 1
func TestConnectedComponents(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{0, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	cs := gg.ConnectedComponents()
	assert.Equal(t, 4, cs.Len())
	assert.Equal(t, comp(1), cs.Of.At(cell(2)))
	assert.Equal(t, gridgraph.NoComp, cs.Of.At(cell(1)))

	gg, err = gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	cs = gg.ConnectedComponents()
	require.Equal(t, 1, cs.Len())
	assert.Equal(t, []gridgraph.CellIdx{cell(0), cell(4), cell(2), cell(8)}, cs.Cells.At(comp(0)))
}

// TestExpandIsland bridges two islands separated by two water cells.
//
//	1 0 0 1
//	1 0 0 1
func TestExpandIsland(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 0, 0, 1},
		{1, 0, 0, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(comp(0), comp(1))
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	require.Len(t, path, 4)
	cs := gg.ConnectedComponents()
	assert.Equal(t, comp(0), cs.Of.At(path[0]))
	assert.Equal(t, comp(1), cs.Of.At(path[3]))
	for _, c := range path[1:3] {
		assert.False(t, gg.IsLand(c))
	}

	path, cost, err = gg.ExpandIsland(comp(1), comp(1))
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Len(t, path, 1)

	_, _, err = gg.ExpandIsland(comp(0), comp(2))
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(gridgraph.NoComp, comp(0))
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

// TestToCoreGraph checks node alignment and that BFS hop counts on the
// converted graph match grid distances.
func TestToCoreGraph(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 0, 0},
		{0, 0, 0},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 7, g.EdgeCount())

	c, _ := gg.CellAt(1, 1)
	n := gridgraph.NodeOf(c)
	node, err := g.Node(n)
	require.NoError(t, err)
	assert.Equal(t, "1,1", node.Label)
	assert.Equal(t, c, gridgraph.CellOf(n))

	res, err := bfs.BFS(g, gridgraph.NodeOf(cell(0)))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth.At(gridgraph.NodeOf(cell(5))))

	gg8, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn8)
	require.NoError(t, err)
	g, err = gg8.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount(), "K4 with diagonals")
}
