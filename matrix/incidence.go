package matrix

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/vec"
)

// Incidence is the node×edge incidence matrix of a graph.
//
// Directed graphs: column e holds -1 at its From row and +1 at its To row;
// a self-loop column is all zero. Undirected graphs: +1 at both endpoints,
// 2 on the row of a self-loop.
type Incidence struct {
	Rows vec.Vec[core.NodeIdx, vec.Vec[core.EdgeIdx, int8]]

	directed bool
}

// NewIncidence builds the incidence matrix of g. O(V·E).
func NewIncidence(g *core.Graph) (*Incidence, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	edges := vec.New[core.EdgeIdx, core.Edge]()
	for _, e := range g.Edges() {
		edges.Push(e)
	}
	nodes := g.NodeCount()

	m := &Incidence{
		Rows:     *vec.WithCapacity[core.NodeIdx, vec.Vec[core.EdgeIdx, int8]](nodes),
		directed: g.Directed(),
	}
	for i := 0; i < nodes; i++ {
		m.Rows.Push(*vec.Repeat[core.EdgeIdx, int8](0, edges.Len()))
	}
	for col, e := range edges.Enumerate() {
		if m.directed {
			*m.Rows.Ref(e.From).Ref(col) -= 1
			*m.Rows.Ref(e.To).Ref(col) += 1
			continue
		}
		*m.Rows.Ref(e.From).Ref(col) += 1
		*m.Rows.Ref(e.To).Ref(col) += 1
	}

	return m, nil
}

// At returns the entry for node n and edge e.
func (m *Incidence) At(n core.NodeIdx, e core.EdgeIdx) (int8, error) {
	row, ok := m.Rows.GetRef(n)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownNode, n)
	}
	v, ok := row.Get(e)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownEdge, e)
	}

	return v, nil
}

// Degree sums the magnitudes of row n: the undirected degree (loops count
// twice), or in+out degree for directed graphs with loops left out.
func (m *Incidence) Degree(n core.NodeIdx) (int, error) {
	row, ok := m.Rows.GetRef(n)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownNode, n)
	}
	d := 0
	for v := range row.All() {
		if v < 0 {
			v = -v
		}
		d += int(v)
	}

	return d, nil
}
