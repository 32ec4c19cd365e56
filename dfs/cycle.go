// Package dfs implements cycle detection for both directed and undirected core.Graphs.
// DetectCycles reports the cycles closed by back-edges of a depth-first
// search with three-color marking. Self-loops count when the graph allows
// them; in undirected graphs the edge used to reach a node is never
// treated as a way back, so only parallel edges form 2-cycles.
// Each cycle is reported in canonical form (minimal rotation of either
// direction, via Booth's algorithm) and the list is sorted for
// deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state table + cycle storage)
package dfs

import (
	"slices"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// cycleFinder holds the shared state of one DetectCycles run.
type cycleFinder struct {
	graph    *core.Graph
	directed bool
	state    vec.Vec[core.NodeIdx, color]
	path     []core.NodeIdx
	cycles   [][]core.NodeIdx
}

// DetectCycles inspects g for cycles.
// Returns (true, cycles, nil) if any are found, each as a closed sequence
// [v0, v1, ..., v0]; (false, nil, nil) otherwise.
func DetectCycles(g *core.Graph) (bool, [][]core.NodeIdx, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	f := &cycleFinder{
		graph:    g,
		directed: g.Directed(),
		state:    *vec.Repeat[core.NodeIdx](White, g.NodeCount()),
	}
	seen := make(map[string]struct{})
	for v, c := range f.state.Enumerate() {
		if c == White {
			if err := f.visit(v, core.NoEdge, seen); err != nil {
				return false, nil, err
			}
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.cycles, func(a, b []core.NodeIdx) int {
		return slices.CompareFunc(a, b, core.NodeIdx.Compare)
	})

	return true, f.cycles, nil
}

// HasCycle reports whether g contains at least one cycle.
func HasCycle(g *core.Graph) (bool, error) {
	found, _, err := DetectCycles(g)

	return found, err
}

// visit explores n, which was reached over the edge via (core.NoEdge for roots).
func (f *cycleFinder) visit(n core.NodeIdx, via core.EdgeIdx, seen map[string]struct{}) error {
	f.state.Set(n, Gray)
	f.path = append(f.path, n)

	out, err := f.graph.OutEdges(n)
	if err != nil {
		return err
	}
	for _, e := range out {
		if !f.directed && e == via {
			continue
		}
		edge, err := f.graph.Edge(e)
		if err != nil {
			return err
		}
		nbr := edge.Other(n)
		c, ok := f.state.Get(nbr)
		if !ok {
			continue
		}
		switch c {
		case White:
			if err = f.visit(nbr, e, seen); err != nil {
				return err
			}
		case Gray:
			f.record(nbr, seen)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state.Set(n, Black)

	return nil
}

// record closes the cycle that starts at start on the current path and
// keeps it if its canonical form is new.
func (f *cycleFinder) record(start core.NodeIdx, seen map[string]struct{}) {
	i := slices.Index(f.path, start)
	canon := canonical(f.path[i:], f.directed)
	sig := JoinSig(canon)
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}
	f.cycles = append(f.cycles, canon)
}

// canonical returns the closed form of the open cycle base: its minimal
// rotation, or for undirected graphs the smaller of the minimal rotations
// of base and its reverse, with the first node repeated at the end.
func canonical(base []core.NodeIdx, directed bool) []core.NodeIdx {
	pick := MinimalRotation(base, core.NodeIdx.Compare)
	if !directed {
		rev := slices.Clone(base)
		slices.Reverse(rev)
		if rotB := MinimalRotation(rev, core.NodeIdx.Compare); slices.CompareFunc(rotB, pick, core.NodeIdx.Compare) < 0 {
			pick = rotB
		}
	}

	return append(pick, pick[0])
}
