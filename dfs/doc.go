// Package dfs provides depth-first traversal, topological sorting and
// cycle detection over a core.Graph.
//
// What
//
//   - DFS(g, start, opts...): pre-/post-order hooks, MaxDepth, neighbor
//     filtering, forest traversal (WithFullTraversal) and cancellation.
//     Result.Depth and Result.Parent are vec.Vec tables indexed by
//     core.NodeIdx; Parent uses core.NoNode for roots.
//   - TopologicalSort(g, opts...): reverse post-order of a directed graph;
//     ErrCycleDetected on a back-edge, ErrUndirected for undirected graphs.
//   - DetectCycles(g) / HasCycle(g): canonical cycles closed by back-edges.
//
// Determinism
//
//	Roots are tried in NodeIdx order and neighbors come from
//	core.Graph.Neighbors (sorted), so every result is reproducible.
//
// Errors
//
//   - ErrGraphNil         if g is nil.
//   - ErrStartNotFound    if start is not a node of g.
//   - ErrOptionViolation  for a negative MaxDepth.
//   - ErrCycleDetected    from TopologicalSort.
//   - ErrUndirected       from TopologicalSort.
//   - context errors and wrapped hook errors.
package dfs
