package tsp

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/matrix"
)

// heldKarp solves the tour exactly.
//
// dp[mask][j] is the cheapest path from start through exactly the nodes of
// mask, ending at j. Masks always contain start. Ties keep the smaller
// predecessor, so the result is deterministic.
func heldKarp(ctx context.Context, am *matrix.Adjacency, start core.NodeIdx) ([]core.NodeIdx, error) {
	n := am.Len()
	if n > MaxExactNodes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxExactNodes)
	}
	s := int(start.Index())
	full := 1<<n - 1
	w := func(u, v int) int64 {
		return am.Rows.AtPos(u).AtPos(v)
	}

	dp := make([][]int64, 1<<n)
	parent := make([][]int8, 1<<n)
	for mask := range dp {
		dp[mask] = make([]int64, n)
		parent[mask] = make([]int8, n)
		for j := range dp[mask] {
			dp[mask][j] = math.MaxInt64
			parent[mask][j] = -1
		}
	}
	dp[1<<s][s] = 0

	for mask := 1; mask <= full; mask++ {
		if mask&(1<<s) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			if j == s || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ 1<<j
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || dp[prev][k] == math.MaxInt64 || w(k, j) == matrix.NoLink {
					continue
				}
				if c := dp[prev][k] + w(k, j); c < dp[mask][j] {
					dp[mask][j] = c
					parent[mask][j] = int8(k)
				}
			}
		}
	}

	best, last := int64(math.MaxInt64), -1
	for j := 0; j < n; j++ {
		if j == s || dp[full][j] == math.MaxInt64 || w(j, s) == matrix.NoLink {
			continue
		}
		if c := dp[full][j] + w(j, s); c < best {
			best, last = c, j
		}
	}
	if last < 0 {
		return nil, ErrIncompleteGraph
	}

	tour := make([]core.NodeIdx, n+1)
	tour[0], tour[n] = start, start
	for pos, mask, j := n-1, full, last; pos > 0; pos-- {
		tour[pos] = idx.New[core.NodeIdx](uint(j))
		mask, j = mask^1<<j, int(parent[mask][j])
	}

	return tour, nil
}
