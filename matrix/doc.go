// Package matrix offers dense matrix views of core graphs.
//
//   - Adjacency: a V×V table of edge weights. Rows and columns are both
//     addressed by core.NodeIdx, so the matrix lines up with the graph it
//     came from and with any other per-node table.
//   - Incidence: a V×E table whose rows are core.NodeIdx and whose columns
//     are core.EdgeIdx. Swapping the two is a compile error.
//   - MetricClosure: all-pairs shortest paths (Floyd–Warshall) in place on
//     an Adjacency.
//
// Memory is O(V²) for Adjacency and O(V·E) for Incidence; use them on
// small or dense graphs.
package matrix
