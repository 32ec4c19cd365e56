package matrix

import "errors"

var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownNode indicates a NodeIdx outside the matrix.
	ErrUnknownNode = errors.New("matrix: unknown node")

	// ErrUnknownEdge indicates an EdgeIdx outside the matrix.
	ErrUnknownEdge = errors.New("matrix: unknown edge")

	// ErrNegativeCycle indicates that shortest paths are unbounded.
	ErrNegativeCycle = errors.New("matrix: negative cycle")
)
