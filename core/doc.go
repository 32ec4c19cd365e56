// Package core provides a thread-safe, append-only in-memory Graph whose
// nodes and edges are addressed by typed indices.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Dense storage: vec.Vec[NodeIdx, Node], vec.Vec[EdgeIdx, Edge] and a
//     per-node incidence list vec.Vec[NodeIdx, []EdgeIdx]
//   - A single sync.RWMutex guarding all tables
//
// Why typed indices?
//
//	NodeIdx and EdgeIdx are distinct types over the same uint32
//	representation. Passing an EdgeIdx where a NodeIdx is expected does not
//	compile, and per-node side tables built by algorithms
//	(vec.Vec[core.NodeIdx, int] for BFS depth, for example) can only be read
//	with node indices.
//
//	NodeIdx reserves its largest value as NoNode, the default index. It is
//	used for "no parent" and "dropped" links and is never a valid node.
//	EdgeIdx reserves NoEdge the same way.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs record an edge only at its source.
//	    Undirected graphs record it at both endpoints.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows parallel edges. Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithNodeCapacity(n int)
//	    Preallocates node tables.
//
// Core Methods:
//
//	// Nodes
//	AddNode(label string) (NodeIdx, error)   // O(1)
//	Node(n NodeIdx) (Node, error)            // O(1)
//	Lookup(label string) (NodeIdx, bool)     // O(1)
//	HasNode(n NodeIdx) bool                  // O(1)
//	Nodes() iter.Seq2[NodeIdx, Node]         // O(V) snapshot
//	Labels() *vec.Vec[NodeIdx, string]       // O(V)
//
//	// Edges
//	AddEdge(from, to NodeIdx, weight int64) (EdgeIdx, error) // O(1)†
//	Edge(e EdgeIdx) (Edge, error)            // O(1)
//	HasEdge(from, to NodeIdx) bool           // O(deg(from))
//	Edges() iter.Seq2[EdgeIdx, Edge]         // O(E) snapshot
//	FilterEdges(keep func(EdgeIdx, Edge) bool) []EdgeIdx
//
//	// Adjacency
//	Neighbors(n NodeIdx) ([]NodeIdx, error)  // sorted, unique
//	OutEdges(n NodeIdx) ([]EdgeIdx, error)   // insertion order
//	Degree(n NodeIdx) (int, error)           // O(1)
//
//	// Counts, cloning, views
//	NodeCount(), EdgeCount(), Stats()
//	CloneEmpty(), Clone(), Clear()
//	UnweightedView(g), InducedSubgraph(g, keep)
//
// † O(deg(from)) when multi-edges are disabled.
//
// Errors:
//
//	ErrEmptyLabel          – zero-length node label
//	ErrDuplicateLabel      – label already in use
//	ErrNodeNotFound        – NodeIdx out of range (including NoNode)
//	ErrEdgeNotFound        – EdgeIdx out of range
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
