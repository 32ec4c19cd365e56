package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Recurrence over the (n+1)×(m+1) matrix D:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j-1],
//	                                   D[i-1][j] + SlopePenalty,
//	                                   D[i][j-1] + SlopePenalty)
//
// Cells outside the window are +Inf, so a window narrower than |n-m|
// yields distance +Inf and no path. When ReturnPath is set the path runs
// from (0, 0) to (n-1, m-1); ties prefer the diagonal, then a step in a.
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix.
func DTW[A idx.Idx[A], B idx.Idx[B]](a vec.Slice[A, float64], b vec.Slice[B, float64], opts *DTWOptions) (float64, []Coord[A, B], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if o.Window < NoWindow || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, fmt.Errorf("%w: window %d, penalty %v", ErrBadInput, o.Window, o.SlopePenalty)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	row := func(i int) []float64 { return dp[i%rows] }

	for i := 1; i <= n; i++ {
		cur, prev := row(i), row(i-1)
		cur[0] = inf
		ai := a.AtPos(i - 1)
		for j := 1; j <= m; j++ {
			if o.Window != NoWindow && abs(i-j) > o.Window {
				cur[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+o.SlopePenalty, cur[j-1]+o.SlopePenalty)
			cur[j] = math.Abs(ai-b.AtPos(j-1)) + best
		}
	}
	dist := row(n)[m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack[A, B](dp, n, m, o.SlopePenalty), nil
}

// backtrack walks the full matrix from (n, m) to (1, 1).
func backtrack[A idx.Idx[A], B idx.Idx[B]](dp [][]float64, n, m int, penalty float64) []Coord[A, B] {
	path := make([]Coord[A, B], 0, n+m)
	i, j := n, m
	for {
		path = append(path, Coord[A, B]{I: idx.New[A](uint(i - 1)), J: idx.New[B](uint(j - 1))})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
