// SPDX-License-Identifier: MIT
// Package core_test: shared fixtures for graph tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indexvec/core"
)

// Canonical labels used across tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"
)

// MustNodes ADDS each label to g and returns the indices in order.
func MustNodes(t *testing.T, g *core.Graph, labels ...string) []core.NodeIdx {
	t.Helper()
	out := make([]core.NodeIdx, 0, len(labels))
	for _, l := range labels {
		n, err := g.AddNode(l)
		require.NoError(t, err, "AddNode(%q)", l)
		out = append(out, n)
	}

	return out
}

// MustEdge ADDS from→to and fails the test on error.
func MustEdge(t *testing.T, g *core.Graph, from, to core.NodeIdx, w int64) core.EdgeIdx {
	t.Helper()
	e, err := g.AddEdge(from, to, w)
	require.NoError(t, err, "AddEdge(%v,%v,%d)", from, to, w)

	return e
}

// Square BUILDS the 4-cycle A-B-C-D-A with the given options.
func Square(t *testing.T, opts ...core.GraphOption) (*core.Graph, []core.NodeIdx) {
	t.Helper()
	g := core.NewGraph(opts...)
	n := MustNodes(t, g, LabelA, LabelB, LabelC, LabelD)
	for i := range n {
		MustEdge(t, g, n[i], n[(i+1)%len(n)], 0)
	}

	return g, n
}
