// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//     Cells are addressed by CellIdx in row-major order.
//   - ConnectedComponents labels every land cell with the CompIdx of its
//     island; water cells carry NoComp.
//   - ExpandIsland finds the fewest water cells to convert so that two
//     islands touch (0-1 BFS).
//   - ToCoreGraph converts the grid to a *core.Graph whose NodeIdx positions
//     match the CellIdx positions, so bfs, dfs and dijkstra run on it.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooLarge: more cells than CellIdx can address.
//   - ErrComponentIndex: requested component is out of range.
//   - ErrNoPath: no conversion path exists between the components.
package gridgraph
