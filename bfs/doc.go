// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vec.Vec[core.NodeIdx, int], distance from start or Unreached
//   - Parent: vec.Vec[core.NodeIdx, core.NodeIdx], predecessor or core.NoNode
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why typed tables
//
//	Depth and Parent are dense tables indexed by core.NodeIdx rather than
//	maps keyed by label: lookups are O(1) slice reads and cannot be made
//	with an EdgeIdx or a plain int by accident.
//
// Determinism
//
//	core.Graph.Neighbors returns nodes sorted by NodeIdx, and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E log d)   (neighbors are sorted per node)
//   - Memory: O(V)             (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr core.NodeIdx) bool { return nbr != blocked }),
//	)
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start node does not exist.
//   - ErrWeightedGraph    if run on a weighted graph (see core.UnweightedView).
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo for an unreached node.
//   - Context errors and wrapped OnVisit errors.
package bfs
