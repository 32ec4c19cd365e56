// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Adjacency matrix built from, and convertible back to, a core.Graph.
// Policy:
//   - Cell [u][v] holds the lightest u→v edge weight, or NoLink.
//   - Unweighted edges count as weight 1.
//   - Undirected graphs fill both [u][v] and [v][u].
//   - Row and column order is the graph's NodeIdx order.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// NoLink marks an absent edge in an Adjacency.
const NoLink int64 = math.MaxInt64

// Adjacency holds a fixed-size, 2D representation of a graph.
//
// Time complexity:
//   - Weight: O(1)
//   - Neighbors: O(V)
//   - NewAdjacency, ToGraph: O(V² + E)
type Adjacency struct {
	// Labels[n] is the label of node n in the source graph.
	Labels vec.Vec[core.NodeIdx, string]

	// Rows[u][v] is the weight of u→v, or NoLink.
	Rows vec.Vec[core.NodeIdx, vec.Vec[core.NodeIdx, int64]]

	directed bool
	weighted bool
}

// NewAdjacency builds the adjacency matrix of g.
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// edges first: nodes only grow, so the label table covers every endpoint
	var edges []core.Edge
	for _, e := range g.Edges() {
		edges = append(edges, e)
	}
	labels := g.Labels()
	n := labels.Len()

	am := &Adjacency{
		Labels:   *labels,
		Rows:     *vec.WithCapacity[core.NodeIdx, vec.Vec[core.NodeIdx, int64]](n),
		directed: g.Directed(),
		weighted: g.Weighted(),
	}
	for i := 0; i < n; i++ {
		am.Rows.Push(*vec.Repeat[core.NodeIdx](NoLink, n))
	}
	for _, e := range edges {
		w := e.Weight
		if !am.weighted {
			w = 1
		}
		am.lighten(e.From, e.To, w)
		if !am.directed {
			am.lighten(e.To, e.From, w)
		}
	}

	return am, nil
}

func (am *Adjacency) lighten(u, v core.NodeIdx, w int64) {
	cell := am.Rows.Ref(u).Ref(v)
	*cell = min(*cell, w)
}

// Len returns the number of rows (and columns).
func (am *Adjacency) Len() int { return am.Rows.Len() }

// Directed reports whether the source graph was directed.
func (am *Adjacency) Directed() bool { return am.directed }

// Weight returns the weight of u→v and whether such an edge exists.
// Out-of-range nodes report false.
func (am *Adjacency) Weight(u, v core.NodeIdx) (int64, bool) {
	row, ok := am.Rows.Get(u)
	if !ok {
		return 0, false
	}
	w, ok := row.Get(v)
	if !ok || w == NoLink {
		return 0, false
	}

	return w, true
}

// Neighbors returns the nodes v with an edge u→v, in index order.
func (am *Adjacency) Neighbors(u core.NodeIdx) ([]core.NodeIdx, error) {
	row, ok := am.Rows.GetRef(u)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	var out []core.NodeIdx
	for v, w := range row.Enumerate() {
		if w != NoLink {
			out = append(out, v)
		}
	}

	return out, nil
}

// ToGraph rebuilds a graph with the same labels, node indices and
// directedness, one edge per non-NoLink cell. Undirected matrices emit each
// pair once (u ≤ v). The result is weighted if the source was, and allows
// loops if any diagonal cell is set.
func (am *Adjacency) ToGraph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(am.directed), core.WithNodeCapacity(am.Len())}
	if am.weighted {
		opts = append(opts, core.WithWeighted())
	}
	loops := false
	for u, row := range am.Rows.Enumerate() {
		if row.At(u) != NoLink {
			loops = true
			break
		}
	}
	if loops {
		opts = append(opts, core.WithLoops())
	}

	g := core.NewGraph(opts...)
	for label := range am.Labels.All() {
		if _, err := g.AddNode(label); err != nil {
			return nil, err
		}
	}
	for u, row := range am.Rows.Enumerate() {
		for v, w := range row.Enumerate() {
			if w == NoLink || (!am.directed && v.Less(u)) {
				continue
			}
			if !am.weighted {
				w = 0
			}
			if _, err := g.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("matrix: AddEdge(%v→%v): %w", u, v, err)
			}
		}
	}

	return g, nil
}

// MetricClosure replaces every cell with the shortest-path distance between
// its nodes (Floyd–Warshall). The diagonal becomes 0. Unreachable pairs stay
// NoLink. Returns ErrNegativeCycle, leaving the matrix partially updated, if
// some diagonal drops below zero.
//
// Complexity: O(V³).
func MetricClosure(am *Adjacency) error {
	n := am.Len()
	for i, row := range am.Rows.EnumerateRef() {
		*row.Ref(i) = min(row.At(i), 0)
	}
	for k := 0; k < n; k++ {
		rowK := am.Rows.AtPos(k)
		for _, row := range am.Rows.EnumerateRef() {
			ik := row.AtPos(k)
			if ik == NoLink {
				continue
			}
			for j, kj := range rowK.Enumerate() {
				if kj == NoLink {
					continue
				}
				if d := ik + kj; d < row.At(j) {
					row.Set(j, d)
				}
			}
		}
	}
	for i, row := range am.Rows.Enumerate() {
		if row.At(i) < 0 {
			return fmt.Errorf("%w through %v", ErrNegativeCycle, i)
		}
	}

	return nil
}
