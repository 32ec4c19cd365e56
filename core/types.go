// Package core defines the typed-index Graph, its Node and Edge records,
// and the NodeIdx/EdgeIdx index spaces used to address them.
//
// Nodes and edges live in vec.Vec storage, so a NodeIdx can only address
// the node table and an EdgeIdx only the edge table. Mixing them up is a
// compile error rather than a silent out-of-range read.
//
// This file declares NodeIdx, EdgeIdx, Node, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyLabel          - node label is the empty string.
//	ErrDuplicateLabel      - a node with this label already exists.
//	ErrNodeNotFound        - NodeIdx does not name a node of this graph.
//	ErrEdgeNotFound        - EdgeIdx does not name an edge of this graph.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"math"
	"sync"

	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that AddNode was given an empty label.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrDuplicateLabel indicates that a node with the same label already exists.
	ErrDuplicateLabel = errors.New("core: duplicate node label")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicNegativeCapacity = "core: WithNodeCapacity: capacity must be non-negative"
)

type nodeDomain struct{ idx.DefaultDomain }

// The top uint32 value is reserved for NoNode.
func (nodeDomain) Limit() (uint, bool) { return math.MaxUint32 - 1, true }
func (nodeDomain) DefaultIndex() uint  { return math.MaxUint32 }

type edgeDomain struct{ idx.DefaultDomain }

// The top uint32 value is reserved for NoEdge.
func (edgeDomain) Limit() (uint, bool) { return math.MaxUint32 - 1, true }
func (edgeDomain) DefaultIndex() uint  { return math.MaxUint32 }

type (
	// NodeIdx addresses a node of a Graph. Its default value is NoNode.
	NodeIdx = idx.Of[uint32, nodeDomain]

	// EdgeIdx addresses an edge of a Graph. Its default value is NoEdge.
	EdgeIdx = idx.Of[uint32, edgeDomain]
)

// NoNode is the NodeIdx that never names a node. Tables indexed by NodeIdx
// use it for "no predecessor", "dropped", and similar absent links.
var NoNode = idx.Default[NodeIdx]()

// NoEdge is the EdgeIdx that never names an edge.
var NoEdge = idx.Default[EdgeIdx]()

// Node is a vertex of the graph.
//
// Label uniquely identifies the node by name; NodeIdx identifies it by
// position. Metadata is shared, not deep-copied, by Clone.
type Node struct {
	// Label is the unique, non-empty name of the node.
	Label string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge is a connection between two nodes.
//
// For undirected graphs From and To are the endpoints in insertion order;
// use Other to walk the edge from either side.
type Edge struct {
	// From is the source node.
	From NodeIdx

	// To is the destination node.
	To NodeIdx

	// Weight is the cost or capacity of the edge. Zero in unweighted graphs.
	Weight int64
}

// Other returns the endpoint of e opposite n. For a self-loop it returns n.
func (e Edge) Other(n NodeIdx) NodeIdx {
	if e.From == n {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithNodeCapacity preallocates the node tables for n nodes.
// It panics if n is negative.
func WithNodeCapacity(n int) GraphOption {
	if n < 0 {
		panic(panicNegativeCapacity)
	}

	return func(g *Graph) { g.nodeCap = n }
}

// Graph is an append-only in-memory graph addressed by typed indices.
//
// It supports directed vs. undirected, weighted vs. unweighted, parallel
// edges and self-loops. Nodes and edges are never removed, so every index
// handed out stays valid for the lifetime of the graph.
// mu guards every table below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // one-way edges
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	nodeCap    int  // initial node table capacity

	// Storage
	nodes   vec.Vec[NodeIdx, Node]
	edges   vec.Vec[EdgeIdx, Edge]
	inc     vec.Vec[NodeIdx, []EdgeIdx] // inc[n]: edges leaving n (both ends when undirected)
	byLabel map[string]NodeIdx
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1) plus the requested node capacity.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = *vec.New[NodeIdx, Node](vec.WithInitialCapacity(g.nodeCap))
	g.inc = *vec.New[NodeIdx, []EdgeIdx](vec.WithInitialCapacity(g.nodeCap))
	g.byLabel = make(map[string]NodeIdx, g.nodeCap)

	return g
}
