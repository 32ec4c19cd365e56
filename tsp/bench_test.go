package tsp_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/indexvec/builder"
	"github.com/katalvlaran/indexvec/core"
	"github.com/katalvlaran/indexvec/matrix"
	"github.com/katalvlaran/indexvec/tsp"
)

func benchmarkSolve(b *testing.B, nodes int, algo tsp.Algorithm) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithWeightFn(func(r *rand.Rand) int64 { return 1 + r.Int63n(100) }),
		},
		builder.Complete(nodes))
	if err != nil {
		b.Fatal(err)
	}
	am, err := matrix.NewAdjacency(g)
	if err != nil {
		b.Fatal(err)
	}
	opts := tsp.DefaultOptions()
	opts.Algo = algo
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveWithMatrix(context.Background(), am, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExact12(b *testing.B)   { benchmarkSolve(b, 12, tsp.Exact) }
func BenchmarkTwoOpt200(b *testing.B) { benchmarkSolve(b, 200, tsp.TwoOpt) }
