// File: view.go
// Role: Non-mutating graph views (new graphs derived from a source).
// Determinism:
//   - UnweightedView preserves every index.
//   - InducedSubgraph renumbers densely in source order and reports the
//     renumbering as a NodeIdx→NodeIdx table.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "github.com/katalvlaran/indexvec/vec"

// UnweightedView returns a new Graph with identical topology but with all
// edge weights set to zero and the weighted flag turned off. The input
// graph is not mutated. Node and edge indices are preserved.
//
// Complexity: O(V + E).
func UnweightedView(g *Graph) *Graph {
	out := g.CloneEmpty()
	out.weighted = false

	g.mu.RLock()
	edges := g.snapshotEdges()
	g.mu.RUnlock()

	for _, edge := range edges.Enumerate() {
		// Policy checks already passed on the source; only the weight changes.
		_, _ = out.AddEdge(edge.From, edge.To, 0)
	}

	return out
}

// InducedSubgraph returns the subgraph of g on the nodes for which keep
// returns true, with every edge whose endpoints are both kept. The input
// graph is not mutated.
//
// Kept nodes are renumbered densely in source order. The returned table
// maps each source NodeIdx to its index in the subgraph, or NoNode when
// the node was dropped.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep func(NodeIdx, Node) bool) (*Graph, *vec.Vec[NodeIdx, NodeIdx]) {
	g.mu.RLock()
	out := NewGraph(g.options()...)
	remap := vec.Repeat[NodeIdx](NoNode, g.nodes.Len())
	for n, node := range g.nodes.Enumerate() {
		if !keep(n, node) {
			continue
		}
		nn := out.nodes.Push(node)
		out.inc.Push(nil)
		out.byLabel[node.Label] = nn
		remap.Set(n, nn)
	}
	edges := g.snapshotEdges()
	g.mu.RUnlock()

	for _, edge := range edges.Enumerate() {
		from, to := remap.At(edge.From), remap.At(edge.To)
		if from == NoNode || to == NoNode {
			continue
		}
		_, _ = out.AddEdge(from, to, edge.Weight)
	}

	return out, remap
}
