package tsp

import (
	"context"
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/matrix"
	"github.com/katalvlaran/indexvec/vec"
)

// nearestNeighbor walks from start to the closest unvisited node, smallest
// index first on ties. The matrix must be complete.
func nearestNeighbor(am *matrix.Adjacency, start core.NodeIdx) []core.NodeIdx {
	n := am.Len()
	visited := *vec.Repeat[core.NodeIdx](false, n)
	visited.Set(start, true)
	tour := make([]core.NodeIdx, 0, n+1)
	tour = append(tour, start)

	for cur := start; len(tour) < n; {
		next, best := core.NoNode, matrix.NoLink
		for v, w := range am.Rows.At(cur).Enumerate() {
			if !visited.At(v) && w < best {
				next, best = v, w
			}
		}
		visited.Set(next, true)
		tour = append(tour, next)
		cur = next
	}

	return append(tour, start)
}

// twoOpt applies first-improvement 2-opt moves, reversing tour[i..k],
// until no move helps or maxIters moves were accepted.
func twoOpt(ctx context.Context, am *matrix.Adjacency, tour []core.NodeIdx, maxIters int) ([]core.NodeIdx, error) {
	w := func(u, v core.NodeIdx) int64 { return am.Rows.At(u).At(v) }
	n := len(tour) - 1
	cost := TourCost(am, tour)
	accepted := 0

	for improved := true; improved; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		improved = false
	search:
		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				var delta int64
				if am.Directed() {
					cand := slices.Clone(tour)
					slices.Reverse(cand[i : k+1])
					delta = TourCost(am, cand) - cost
				} else {
					a, b, c, d := tour[i-1], tour[i], tour[k], tour[k+1]
					delta = w(a, c) + w(b, d) - w(a, b) - w(c, d)
				}
				if delta >= 0 {
					continue
				}
				slices.Reverse(tour[i : k+1])
				cost += delta
				accepted++
				improved = true
				if maxIters > 0 && accepted >= maxIters {
					return tour, nil
				}

				break search
			}
		}
	}

	return tour, nil
}
