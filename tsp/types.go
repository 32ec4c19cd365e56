package tsp

import (
	"errors"

	"github.com/katalvlaran/indexvec/core"
)

var (
	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")

	// ErrIncompleteGraph indicates that no Hamiltonian cycle exists, or that a
	// heuristic was given a matrix with missing cells.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrStartVertex indicates a start outside the matrix.
	ErrStartVertex = errors.New("tsp: start vertex out of range")

	// ErrTooLarge indicates more than MaxExactNodes nodes for Exact.
	ErrTooLarge = errors.New("tsp: too many nodes for the exact solver")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// MaxExactNodes bounds the Held–Karp table (2ⁿ·n cells).
const MaxExactNodes = 16

// Algorithm selects a solver.
type Algorithm int

const (
	// Exact runs Held–Karp.
	Exact Algorithm = iota
	// NearestNeighbor runs the greedy heuristic.
	NearestNeighbor
	// TwoOpt improves a NearestNeighbor tour with 2-opt moves.
	TwoOpt
)

// Options configures Solve*.
type Options struct {
	Algo Algorithm
	// StartVertex opens and closes the tour. NoNode means node 0.
	StartVertex core.NodeIdx
	// TwoOptMaxIters caps accepted 2-opt moves; 0 means until a local optimum.
	TwoOptMaxIters int
}

// DefaultOptions returns Exact from node 0.
func DefaultOptions() Options {
	return Options{Algo: Exact, StartVertex: core.NoNode}
}

// TSResult is a closed tour and its cost.
type TSResult struct {
	// Tour starts and ends at the start vertex and visits every other node
	// once. Undirected tours are oriented so that Tour[1] ≤ Tour[len-2].
	Tour []core.NodeIdx

	Cost int64
}
