// SPDX-License-Identifier: MIT
//
// File: bounds.go
// Role: The range half of the indexing protocol.
// Policy:
//   - Bounds is a closed tagged union; only the constructors below create it.
//   - intoRange is the one projection of typed endpoints to positions. It is
//     pure and never panics.
//   - resolve is the one place a projected range is validated against a length.

package vec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/indexvec/idx"
)

// boundsKind tags the shape of a Bounds value.
type boundsKind uint8

const (
	kindFull        boundsKind = iota // ..
	kindRange                         // start..end
	kindFrom                          // start..
	kindTo                            // ..end
	kindInclusive                     // start..=end
	kindToInclusive                   // ..=end
)

// Bounds selects a contiguous run of positions expressed in the index type I.
// The zero value selects everything.
type Bounds[I idx.Idx[I]] struct {
	kind       boundsKind
	start, end I
}

// Range selects the half-open run [start, end).
func Range[I idx.Idx[I]](start, end I) Bounds[I] {
	return Bounds[I]{kind: kindRange, start: start, end: end}
}

// RangeFrom selects everything from start on.
func RangeFrom[I idx.Idx[I]](start I) Bounds[I] {
	return Bounds[I]{kind: kindFrom, start: start}
}

// RangeTo selects everything before end.
func RangeTo[I idx.Idx[I]](end I) Bounds[I] {
	return Bounds[I]{kind: kindTo, end: end}
}

// RangeInclusive selects the closed run [start, end].
func RangeInclusive[I idx.Idx[I]](start, end I) Bounds[I] {
	return Bounds[I]{kind: kindInclusive, start: start, end: end}
}

// RangeToInclusive selects everything up to and including end.
func RangeToInclusive[I idx.Idx[I]](end I) Bounds[I] {
	return Bounds[I]{kind: kindToInclusive, end: end}
}

// RangeFull selects every position.
func RangeFull[I idx.Idx[I]]() Bounds[I] {
	return Bounds[I]{kind: kindFull}
}

// rawRange is a Bounds with its endpoints projected to positions.
type rawRange struct {
	kind       boundsKind
	start, end uint
}

func (b Bounds[I]) intoRange() rawRange {
	r := rawRange{kind: b.kind}
	switch b.kind {
	case kindRange, kindInclusive:
		r.start, r.end = b.start.Index(), b.end.Index()
	case kindFrom:
		r.start = b.start.Index()
	case kindTo, kindToInclusive:
		r.end = b.end.Index()
	}

	return r
}

// span returns the half-open [lo, hi) the range denotes for a sequence of
// length n, without validating it. Inclusive ends wrap at the largest position.
func (r rawRange) span(n int) (lo, hi uint) {
	switch r.kind {
	case kindRange:
		return r.start, r.end
	case kindFrom:
		return r.start, uint(n)
	case kindTo:
		return 0, r.end
	case kindInclusive:
		return r.start, r.end + 1
	case kindToInclusive:
		return 0, r.end + 1
	default:
		return 0, uint(n)
	}
}

// resolve validates the range against length n and returns it as slice bounds.
func (r rawRange) resolve(n int) (int, int, error) {
	if (r.kind == kindInclusive || r.kind == kindToInclusive) && r.end == math.MaxUint {
		return 0, 0, fmt.Errorf("%w: inclusive end at maximum position %d", ErrBadRange, r.end)
	}
	lo, hi := r.span(n)
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: range starts at %d but ends at %d", ErrBadRange, lo, hi)
	}
	if hi > uint(n) {
		return 0, 0, fmt.Errorf("%w: range end %d out of range for length %d", ErrOutOfRange, hi, n)
	}

	return int(lo), int(hi), nil
}

// Contains reports whether i falls inside the bounds. Unbounded ends are
// treated as unbounded, not clipped to any length.
func (b Bounds[I]) Contains(i I) bool {
	p := i.Index()
	r := b.intoRange()
	switch r.kind {
	case kindRange:
		return r.start <= p && p < r.end
	case kindFrom:
		return r.start <= p
	case kindTo:
		return p < r.end
	case kindInclusive:
		return r.start <= p && p <= r.end
	case kindToInclusive:
		return p <= r.end
	default:
		return true
	}
}

// String renders the bounds in range notation, e.g. "2..5" or "..=7".
func (b Bounds[I]) String() string {
	r := b.intoRange()
	switch r.kind {
	case kindRange:
		return fmt.Sprintf("%d..%d", r.start, r.end)
	case kindFrom:
		return fmt.Sprintf("%d..", r.start)
	case kindTo:
		return fmt.Sprintf("..%d", r.end)
	case kindInclusive:
		return fmt.Sprintf("%d..=%d", r.start, r.end)
	case kindToInclusive:
		return fmt.Sprintf("..=%d", r.end)
	default:
		return ".."
	}
}
