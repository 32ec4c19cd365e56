// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/Node/Lookup/HasNode/Nodes/NodeCount.
// Determinism:
//   - NodeIdx values are assigned densely in insertion order, starting at 0.
//   - Nodes() yields nodes in NodeIdx order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/indexvec/vec"
)

// AddNode appends a node labelled label and returns its index.
//
// Returns ErrEmptyLabel if label is empty. If the label is already taken it
// returns the existing node's index together with ErrDuplicateLabel, so the
// call can be used as "get or fail".
//
// Panics with idx.ErrOverflow once the NodeIdx space is exhausted.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) (NodeIdx, error) {
	if label == "" {
		return NoNode, ErrEmptyLabel
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, exists := g.byLabel[label]; exists {
		return n, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	n := g.nodes.Push(Node{Label: label, Metadata: make(map[string]interface{})})
	g.inc.Push(nil)
	g.byLabel[label] = n

	return n, nil
}

// Node returns the node at n, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(n NodeIdx) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.nodes.Get(n)
	if !ok {
		return Node{}, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}

	return node, nil
}

// Lookup returns the index of the node labelled label.
// Complexity: O(1).
func (g *Graph) Lookup(label string) (NodeIdx, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.byLabel[label]

	return n, ok
}

// HasNode reports whether n names a node of g. NoNode never does.
func (g *Graph) HasNode(n NodeIdx) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNode(n)
}

func (g *Graph) hasNode(n NodeIdx) bool {
	return n.LessUsize(uint(g.nodes.Len()))
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}

// Nodes yields every node with its index, in index order.
// The sequence iterates a snapshot taken when Nodes is called, so the
// caller may mutate g while ranging.
func (g *Graph) Nodes() iter.Seq2[NodeIdx, Node] {
	g.mu.RLock()
	snap := vec.SliceOf[NodeIdx](slices.Clone(g.nodes.Raw))
	g.mu.RUnlock()

	return snap.Enumerate()
}

// Labels returns every node label indexed by NodeIdx.
func (g *Graph) Labels() *vec.Vec[NodeIdx, string] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := vec.WithCapacity[NodeIdx, string](g.nodes.Len())
	for node := range g.nodes.All() {
		out.Push(node.Label)
	}

	return out
}
