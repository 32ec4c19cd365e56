// SPDX-License-Identifier: MIT

package vec

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/indexvec/idx"
)

// All yields every element in order.
func (s Slice[I, T]) All() iter.Seq[T] {
	return slices.Values(s.Raw)
}

// Enumerate yields each element with its typed index. Use it instead of
// ranging over Raw, which would hand out untyped positions.
func (s Slice[I, T]) Enumerate() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for p, v := range s.Raw {
			if !yield(idx.New[I](uint(p)), v) {
				return
			}
		}
	}
}

// EnumerateRef yields a pointer to each element with its typed index.
func (s Slice[I, T]) EnumerateRef() iter.Seq2[I, *T] {
	return func(yield func(I, *T) bool) {
		for p := range s.Raw {
			if !yield(idx.New[I](uint(p)), &s.Raw[p]) {
				return
			}
		}
	}
}

// Indices yields every valid index in ascending order.
func (s Slice[I, T]) Indices() iter.Seq[I] {
	return func(yield func(I) bool) {
		for p := range s.Raw {
			if !yield(idx.New[I](uint(p))) {
				return
			}
		}
	}
}

// NextIdx returns the index one past the last element: the index a push
// onto the owning Vec would be assigned.
func (s Slice[I, T]) NextIdx() I {
	return idx.New[I](uint(len(s.Raw)))
}

// LastIndex returns the index of the last element, or false when empty.
func (s Slice[I, T]) LastIndex() (I, bool) {
	if len(s.Raw) == 0 {
		var zero I
		return zero, false
	}

	return idx.New[I](uint(len(s.Raw) - 1)), true
}

// LastIdx returns the index of the last element. It panics with ErrEmpty if
// the view is empty.
func (s Slice[I, T]) LastIdx() I {
	i, ok := s.LastIndex()
	if !ok {
		panic(ErrEmpty)
	}

	return i
}

// First returns the first element, or false when empty.
func (s Slice[I, T]) First() (T, bool) {
	return s.getAt(0)
}

// Last returns the last element, or false when empty.
func (s Slice[I, T]) Last() (T, bool) {
	return s.getAt(uint(len(s.Raw)) - 1)
}

// Swap exchanges the elements at a and b. It panics with ErrOutOfRange if
// either is out of range.
func (s Slice[I, T]) Swap(a, b I) {
	pa, pb := s.mustPos(a.Index()), s.mustPos(b.Index())
	s.Raw[pa], s.Raw[pb] = s.Raw[pb], s.Raw[pa]
}

// SplitAt divides the view into [0, mid) and [mid, Len()). It panics with
// ErrOutOfRange if mid > Len().
func (s Slice[I, T]) SplitAt(mid I) (Slice[I, T], Slice[I, T]) {
	return s.Sub(RangeTo(mid)), s.Sub(RangeFrom(mid))
}

// Position returns the index of the first element satisfying pred.
func (s Slice[I, T]) Position(pred func(T) bool) (I, bool) {
	if p := slices.IndexFunc(s.Raw, pred); p >= 0 {
		return idx.New[I](uint(p)), true
	}
	var zero I

	return zero, false
}

// RPosition returns the index of the last element satisfying pred.
func (s Slice[I, T]) RPosition(pred func(T) bool) (I, bool) {
	for p := len(s.Raw) - 1; p >= 0; p-- {
		if pred(s.Raw[p]) {
			return idx.New[I](uint(p)), true
		}
	}
	var zero I

	return zero, false
}

// BinarySearchFunc searches a view sorted by cmp for target. It returns the
// index where target is found, or where it would be inserted, and whether it
// was found.
func (s Slice[I, T]) BinarySearchFunc(target T, cmp func(T, T) int) (I, bool) {
	p, found := slices.BinarySearchFunc(s.Raw, target, cmp)

	return idx.New[I](uint(p)), found
}

// SortFunc sorts the view in place by cmp.
func (s Slice[I, T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(s.Raw, cmp)
}

// SortStableFunc sorts the view in place by cmp, keeping equal elements in
// their original order.
func (s Slice[I, T]) SortStableFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(s.Raw, cmp)
}

// Reverse reverses the view in place.
func (s Slice[I, T]) Reverse() {
	slices.Reverse(s.Raw)
}

// Clone copies the view into a new Vec.
func (s Slice[I, T]) Clone() *Vec[I, T] {
	return &Vec[I, T]{Slice: Slice[I, T]{Raw: slices.Clone(s.Raw)}}
}

// ---------- comparable / ordered element helpers ----------

// Equal reports whether a and b hold the same elements in the same order.
func Equal[I idx.Idx[I], T comparable](a, b Slice[I, T]) bool {
	return slices.Equal(a.Raw, b.Raw)
}

// EqualRaw reports whether s holds exactly the elements of raw.
func EqualRaw[I idx.Idx[I], T comparable](s Slice[I, T], raw []T) bool {
	return slices.Equal(s.Raw, raw)
}

// Contains reports whether v is present in s.
func Contains[I idx.Idx[I], T comparable](s Slice[I, T], v T) bool {
	return slices.Contains(s.Raw, v)
}

// IndexOf returns the index of the first occurrence of v in s.
func IndexOf[I idx.Idx[I], T comparable](s Slice[I, T], v T) (I, bool) {
	if p := slices.Index(s.Raw, v); p >= 0 {
		return idx.New[I](uint(p)), true
	}
	var zero I

	return zero, false
}

// BinarySearch searches a sorted s for v. See Slice.BinarySearchFunc.
func BinarySearch[I idx.Idx[I], T cmp.Ordered](s Slice[I, T], v T) (I, bool) {
	p, found := slices.BinarySearch(s.Raw, v)

	return idx.New[I](uint(p)), found
}

// Sort sorts s in ascending order.
func Sort[I idx.Idx[I], T cmp.Ordered](s Slice[I, T]) {
	slices.Sort(s.Raw)
}
