// Package dfs provides common helper functions used across DFS and cycle detection.
// These utilities offer cycle signatures and Booth's minimal-rotation algorithm.
package dfs

import (
	"strings"

	"github.com/katalvlaran/indexvec/core"
)

// JoinSig renders a node sequence as a comma-separated signature.
// Time Complexity: O(n).
func JoinSig(c []core.NodeIdx) string {
	var b strings.Builder
	for i, n := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(n.String())
	}

	return b.String()
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s under cmp. It returns a new slice of length len(s).
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// 4. After scanning, extract the rotation starting at index k.
// Time Complexity: O(n).
func MinimalRotation[T any](s []T, cmp func(a, b T) int) []T {
	n := len(s)
	if n == 0 {
		return []T{}
	}
	doubled := make([]T, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && cmp(doubled[j], doubled[k+i+1]) != 0 {
			if cmp(doubled[j], doubled[k+i+1]) < 0 {
				k = j - i - 1
			}
			i = f[i]
		}
		if cmp(doubled[j], doubled[k+i+1]) != 0 { // i == -1
			if cmp(doubled[j], doubled[k]) < 0 {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]T, n)
	copy(out, doubled[k:k+n])

	return out
}
