// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: index types, options and sentinel errors for gridgraph.
// Policy:
//   - CellIdx and CompIdx are distinct types; a component id never
//     addresses a cell table by accident.
//   - The top uint32 value of each is reserved for NoCell / NoComp.

package gridgraph

import (
	"errors"
	"math"

	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGridTooLarge indicates more cells than CellIdx can address.
	ErrGridTooLarge = errors.New("gridgraph: grid has too many cells")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

type cellDomain struct{ idx.DefaultDomain }

func (cellDomain) Limit() (uint, bool) { return math.MaxUint32 - 1, true }
func (cellDomain) DefaultIndex() uint  { return math.MaxUint32 }

type compDomain struct{ idx.DefaultDomain }

func (compDomain) Limit() (uint, bool) { return math.MaxUint32 - 1, true }
func (compDomain) DefaultIndex() uint  { return math.MaxUint32 }

type (
	// CellIdx addresses a grid cell: y*Width + x.
	CellIdx = idx.Of[uint32, cellDomain]

	// CompIdx addresses a connected component ("island").
	CompIdx = idx.Of[uint32, compDomain]
)

var (
	// NoCell never names a cell.
	NoCell = idx.Default[CellIdx]()

	// NoComp marks water cells in Components.Of.
	NoComp = idx.Default[CompIdx]()
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
type GridGraph struct {
	Width, Height int
	// Values[c] is the input value of cell c.
	Values        vec.Vec[CellIdx, int]
	Conn          Connectivity
	LandThreshold int
	offsets       [][2]int
}

// Components is the result of ConnectedComponents.
type Components struct {
	// Of[c] is the island containing cell c, or NoComp for water.
	Of vec.Vec[CellIdx, CompIdx]
	// Cells[k] lists the cells of island k in discovery (BFS) order.
	Cells vec.Vec[CompIdx, []CellIdx]
}

// Len returns the number of islands.
func (cs *Components) Len() int { return cs.Cells.Len() }
