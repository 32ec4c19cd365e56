package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/indexvec/core"
)

// BenchmarkAddEdge measures edge insertion on a path graph.
func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph(core.WithNodeCapacity(256))
		prev, _ := g.AddNode("0")
		for j := 1; j < 256; j++ {
			n, _ := g.AddNode(strconv.Itoa(j))
			_, _ = g.AddEdge(prev, n, 0)
			prev = n
		}
	}
}

// BenchmarkNeighbors measures adjacency lookups on a star graph.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	hub, _ := g.AddNode("hub")
	for j := 0; j < 64; j++ {
		n, _ := g.AddNode(strconv.Itoa(j))
		_, _ = g.AddEdge(hub, n, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(hub)
	}
}
