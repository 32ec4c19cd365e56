package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/dfs"
)

// TestDetectCycles_Directed finds a triangle reported in canonical rotation.
func TestDetectCycles_Directed(t *testing.T) {
	g := graph(t, 4, [][2]uint{{1, 2}, {2, 3}, {3, 1}, {0, 1}}, core.WithDirected(true))
	found, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]core.NodeIdx{{n(1), n(2), n(3), n(1)}}, cycles)
}

// TestDetectCycles_Undirected verifies trees are acyclic and a square is one cycle.
func TestDetectCycles_Undirected(t *testing.T) {
	tree := graph(t, 3, [][2]uint{{0, 1}, {1, 2}})
	has, err := dfs.HasCycle(tree)
	require.NoError(t, err)
	assert.False(t, has)

	sq := graph(t, 4, [][2]uint{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	found, cycles, err := dfs.DetectCycles(sq)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]core.NodeIdx{{n(0), n(1), n(2), n(3), n(0)}}, cycles)
}

// TestDetectCycles_ParallelAndLoop verifies 2-cycles from parallel edges and self-loops.
func TestDetectCycles_ParallelAndLoop(t *testing.T) {
	multi := graph(t, 2, [][2]uint{{0, 1}, {0, 1}}, core.WithMultiEdges())
	found, cycles, err := dfs.DetectCycles(multi)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]core.NodeIdx{{n(0), n(1), n(0)}}, cycles)

	loop := graph(t, 1, [][2]uint{{0, 0}}, core.WithLoops())
	has, err := dfs.HasCycle(loop)
	require.NoError(t, err)
	assert.True(t, has)

	_, _, err = dfs.DetectCycles(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestMinimalRotation checks Booth's algorithm on small inputs.
func TestMinimalRotation(t *testing.T) {
	cmpInt := func(a, b int) int { return a - b }
	assert.Equal(t, []int{1, 2, 3}, dfs.MinimalRotation([]int{2, 3, 1}, cmpInt))
	assert.Equal(t, []int{1, 1, 2}, dfs.MinimalRotation([]int{1, 2, 1}, cmpInt))
	assert.Equal(t, []int{}, dfs.MinimalRotation([]int{}, cmpInt))
	assert.Equal(t, "0,1,2", dfs.JoinSig([]core.NodeIdx{n(0), n(1), n(2)}))
}
