// Package indexvec is a toolkit for addressing contiguous storage with typed
// indices instead of bare ints.
//
// What is inside
//
//	idx/          - the Idx capability and the generic index newtype Of[R, D]
//	vec/          - Vec and Slice: a growable vector and its view, keyed by an Idx
//	core/         - a thread-safe graph whose node and edge tables are Vecs
//	bfs/          - breadth-first search over core graphs
//	dfs/          - depth-first search, topological sort and cycle detection
//	dijkstra/     - single-source shortest paths on weighted graphs
//	prim_kruskal/ - minimum spanning trees
//	flow/         - maximum flow and minimum cut (Edmonds–Karp, Dinic)
//	matrix/       - adjacency and incidence matrices, metric closure
//	tsp/          - travelling salesman tours (Held–Karp, 2-opt)
//	builder/      - generators for classic graph shapes
//	gridgraph/    - tile grids: islands, causeways, grid-to-graph
//	dtw/          - dynamic time warping between two typed series
//
// Why
//
//	Code that keeps several parallel tables (nodes, edges, stations, lines)
//	tends to mix up their positions. Giving every table its own index type
//	turns that mistake into a compile error, at the cost of nothing at run
//	time: an index is a single unsigned integer.
//
// Quick example:
//
//	type nodeDomain struct{}
//
//	func (nodeDomain) Limit() (uint, bool) { return 0, false }
//	func (nodeDomain) Checked() bool       { return true }
//
//	type NodeIdx = idx.Of[uint32, nodeDomain]
//
//	nodes := vec.New[NodeIdx, string]()
//	a := nodes.Push("A")
//	fmt.Println(nodes.At(a)) // A
//
// Runnable scenarios live under examples/.
//
//	go get github.com/katalvlaran/indexvec
package indexvec
