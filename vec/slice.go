// SPDX-License-Identifier: MIT
//
// File: slice.go
// Role: Slice, the non-owning view, and its element and range accessors.
// Policy:
//   - Every member of the indexing protocol has a reporting form (Get*), a
//     panicking form, and an unchecked form. Value and pointer variants stand
//     in for shared and exclusive access.
//   - Typed indices and raw positions share checkPos; ranges share resolve.
//   - Unchecked forms skip this package's validation. The Go runtime still
//     traps an access past the end, so they cannot corrupt memory.

package vec

import (
	"fmt"

	"github.com/katalvlaran/indexvec/idx"
)

// Slice is a view over contiguous elements addressed by the index type I.
// It shares storage with whatever it was taken from; writes through a Slice
// are visible to the source.
//
// Raw is the underlying storage, exposed for operations this API does not
// mirror. Indexing Raw directly bypasses the index type.
type Slice[I idx.Idx[I], T any] struct {
	Raw []T
}

// SliceOf views raw as a Slice addressed by I. No copy is made.
func SliceOf[I idx.Idx[I], T any](raw []T) Slice[I, T] {
	return Slice[I, T]{Raw: raw}
}

// Len returns the number of elements.
func (s Slice[I, T]) Len() int {
	return len(s.Raw)
}

// IsEmpty reports whether the view has no elements.
func (s Slice[I, T]) IsEmpty() bool {
	return len(s.Raw) == 0
}

// AsRawSlice returns the underlying storage.
func (s Slice[I, T]) AsRawSlice() []T {
	return s.Raw
}

// checkPos validates a position and returns it as a slice offset.
func (s Slice[I, T]) checkPos(p uint) (int, error) {
	if p >= uint(len(s.Raw)) {
		return 0, outOfRange(p, len(s.Raw))
	}

	return int(p), nil
}

func (s Slice[I, T]) mustPosInt(n int) int {
	if n < 0 {
		panic(negativePos(n, len(s.Raw)))
	}

	return s.mustPos(uint(n))
}

func (s Slice[I, T]) mustPos(p uint) int {
	off, err := s.checkPos(p)
	if err != nil {
		panic(err)
	}

	return off
}

// ---------- typed index ----------

// Get returns the element at i, or false if i is out of range.
func (s Slice[I, T]) Get(i I) (T, bool) {
	return s.getAt(i.Index())
}

// GetRef returns a pointer to the element at i, or false if i is out of range.
func (s Slice[I, T]) GetRef(i I) (*T, bool) {
	return s.getRefAt(i.Index())
}

// At returns the element at i. It panics with ErrOutOfRange if i >= Len().
func (s Slice[I, T]) At(i I) T {
	return s.Raw[s.mustPos(i.Index())]
}

// Ref returns a pointer to the element at i. It panics with ErrOutOfRange if
// i >= Len().
func (s Slice[I, T]) Ref(i I) *T {
	return &s.Raw[s.mustPos(i.Index())]
}

// Set stores v at i. It panics with ErrOutOfRange if i >= Len().
func (s Slice[I, T]) Set(i I, v T) {
	s.Raw[s.mustPos(i.Index())] = v
}

// AtUnchecked returns the element at i without this package's range check.
// The caller asserts i < Len(); a violation is a runtime panic.
func (s Slice[I, T]) AtUnchecked(i I) T {
	return s.Raw[i.Index()]
}

// RefUnchecked is the pointer form of AtUnchecked.
func (s Slice[I, T]) RefUnchecked(i I) *T {
	return &s.Raw[i.Index()]
}

// ---------- raw position ----------

// GetPos is Get for a plain position.
func (s Slice[I, T]) GetPos(n int) (T, bool) {
	return s.getAt(uint(n))
}

// GetRefPos is GetRef for a plain position.
func (s Slice[I, T]) GetRefPos(n int) (*T, bool) {
	return s.getRefAt(uint(n))
}

// AtPos is At for a plain position.
func (s Slice[I, T]) AtPos(n int) T {
	return s.Raw[s.mustPosInt(n)]
}

// RefPos is Ref for a plain position.
func (s Slice[I, T]) RefPos(n int) *T {
	return &s.Raw[s.mustPosInt(n)]
}

// AtPosUnchecked is AtUnchecked for a plain position.
func (s Slice[I, T]) AtPosUnchecked(n int) T {
	return s.Raw[n]
}

// RefPosUnchecked is RefUnchecked for a plain position.
func (s Slice[I, T]) RefPosUnchecked(n int) *T {
	return &s.Raw[n]
}

func (s Slice[I, T]) getAt(p uint) (T, bool) {
	off, err := s.checkPos(p)
	if err != nil {
		var zero T
		return zero, false
	}

	return s.Raw[off], true
}

func (s Slice[I, T]) getRefAt(p uint) (*T, bool) {
	off, err := s.checkPos(p)
	if err != nil {
		return nil, false
	}

	return &s.Raw[off], true
}

// ---------- ranges ----------

// GetSub returns the sub-view selected by b, or false if b is invalid for
// this view's length.
func (s Slice[I, T]) GetSub(b Bounds[I]) (Slice[I, T], bool) {
	lo, hi, err := b.intoRange().resolve(len(s.Raw))
	if err != nil {
		return Slice[I, T]{}, false
	}

	return Slice[I, T]{Raw: s.Raw[lo:hi:hi]}, true
}

// Sub returns the sub-view selected by b. It panics with ErrOutOfRange or
// ErrBadRange if b is invalid for this view's length.
//
// The result's capacity ends at its length, so appending to its Raw never
// overwrites elements of the source.
func (s Slice[I, T]) Sub(b Bounds[I]) Slice[I, T] {
	lo, hi, err := b.intoRange().resolve(len(s.Raw))
	if err != nil {
		panic(err)
	}

	return Slice[I, T]{Raw: s.Raw[lo:hi:hi]}
}

// SubUnchecked returns the sub-view selected by b without this package's
// validation. The caller asserts b is valid; a violation is a runtime panic.
// Its capacity ends at its length, as with Sub.
func (s Slice[I, T]) SubUnchecked(b Bounds[I]) Slice[I, T] {
	lo, hi := b.intoRange().span(len(s.Raw))

	return Slice[I, T]{Raw: s.Raw[lo:hi:hi]}
}

// String formats the elements like a plain slice.
func (s Slice[I, T]) String() string {
	return fmt.Sprint(s.Raw)
}
