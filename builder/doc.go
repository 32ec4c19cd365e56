// Package builder assembles canonical core graphs (paths, cycles, stars,
// wheels, complete and bipartite graphs, grids and random G(n, p) graphs)
// for tests, benchmarks and demos.
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIDScheme(builder.SymbolIDFn)},
//		builder.Cycle(5),
//	)
//
// Every constructor documents the order in which it adds nodes and edges,
// so the NodeIdx and EdgeIdx of each element are predictable from the
// arguments alone.
package builder
