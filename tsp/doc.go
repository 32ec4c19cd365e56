// Package tsp provides Travelling Salesman Problem solvers over
// matrix.Adjacency distances. Tours are closed lists of core.NodeIdx.
//
//   - Exact: Held–Karp dynamic programming.
//     Complexity O(n²·2ⁿ), memory O(n·2ⁿ); limited to MaxExactNodes.
//     Missing edges (matrix.NoLink) are allowed; no tour gives ErrIncompleteGraph.
//   - NearestNeighbor: greedy construction, O(n²). Needs a complete matrix.
//   - TwoOpt: NearestNeighbor followed by 2-opt local search. Directed
//     matrices are handled by re-costing each candidate tour.
//
// SolveWithGraph runs matrix.MetricClosure first, so the solver sees
// shortest-path distances and any connected graph yields a complete matrix.
package tsp
