// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: dispatcher and validation for the TSP solvers.
// Policy:
//   - Every solver sees a validated matrix: no negative cell.
//   - Heuristics additionally require every off-diagonal cell.
//   - Context cancellation is checked on entry, per DP mask and per 2-opt pass.

package tsp

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/matrix"
)

// SolveWithGraph builds the metric closure of g and solves on it. The
// tour lists the stops in visiting order; consecutive stops may be joined
// by multi-edge shortest paths in g.
func SolveWithGraph(ctx context.Context, g *core.Graph, opts Options) (*TSResult, error) {
	am, err := matrix.NewAdjacency(g)
	if err != nil {
		return nil, err
	}
	if err = matrix.MetricClosure(am); err != nil {
		return nil, err
	}

	return SolveWithMatrix(ctx, am, opts)
}

// SolveWithMatrix validates am and routes to opts.Algo.
func SolveWithMatrix(ctx context.Context, am *matrix.Adjacency, opts Options) (*TSResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := am.Len()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	start := opts.StartVertex
	if start == core.NoNode {
		start = idx.New[core.NodeIdx](0)
	}
	if !start.LessUsize(uint(n)) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertex, start)
	}
	complete, err := validate(am)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return &TSResult{Tour: []core.NodeIdx{start, start}}, nil
	}

	var tour []core.NodeIdx
	switch opts.Algo {
	case Exact:
		tour, err = heldKarp(ctx, am, start)
	case NearestNeighbor, TwoOpt:
		if !complete {
			return nil, ErrIncompleteGraph
		}
		tour = nearestNeighbor(am, start)
		if opts.Algo == TwoOpt {
			tour, err = twoOpt(ctx, am, tour, opts.TwoOptMaxIters)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, opts.Algo)
	}
	if err != nil {
		return nil, err
	}
	if !am.Directed() {
		canonicalize(tour)
	}

	return &TSResult{Tour: tour, Cost: TourCost(am, tour)}, nil
}

// validate rejects negative cells and reports whether every off-diagonal
// cell is present.
func validate(am *matrix.Adjacency) (complete bool, err error) {
	complete = true
	for u, row := range am.Rows.Enumerate() {
		for v, w := range row.Enumerate() {
			switch {
			case w == matrix.NoLink:
				if u != v {
					complete = false
				}
			case w < 0:
				return false, fmt.Errorf("%w: %v→%v = %d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return complete, nil
}

// TourCost sums the cells along a closed tour. Missing cells count as
// matrix.NoLink, so a broken tour never looks cheap.
func TourCost(am *matrix.Adjacency, tour []core.NodeIdx) int64 {
	var cost int64
	for i := 1; i < len(tour); i++ {
		w, ok := am.Weight(tour[i-1], tour[i])
		if !ok {
			return matrix.NoLink
		}
		cost += w
	}

	return cost
}

// canonicalize reverses the interior of an undirected tour so that the
// smaller of the start's two neighbors comes first.
func canonicalize(tour []core.NodeIdx) {
	if len(tour) > 3 && tour[len(tour)-2].Less(tour[1]) {
		slices.Reverse(tour[1 : len(tour)-1])
	}
}
