// SPDX-License-Identifier: MIT

package vec

import (
	"iter"
	"slices"

	"github.com/katalvlaran/indexvec/idx"
)

// Push appends x and returns its index. The index is computed from the
// length before the append, so a full index space panics with
// idx.ErrOverflow and leaves the vector unchanged.
func (v *Vec[I, T]) Push(x T) I {
	i := idx.New[I](uint(len(v.Raw)))
	v.Raw = append(v.Raw, x)

	return i
}

// Pop removes and returns the last element, or false when empty.
func (v *Vec[I, T]) Pop() (T, bool) {
	var zero T
	n := len(v.Raw)
	if n == 0 {
		return zero, false
	}
	x := v.Raw[n-1]
	v.Raw[n-1] = zero
	v.Raw = v.Raw[:n-1]

	return x, true
}

// Insert places x at i, shifting later elements up. i may equal Len().
// It panics with ErrOutOfRange if i > Len(). O(n).
func (v *Vec[I, T]) Insert(i I, x T) {
	p := i.Index()
	if p > uint(len(v.Raw)) {
		panic(insertOutOfRange(p, len(v.Raw)))
	}
	v.Raw = slices.Insert(v.Raw, int(p), x)
}

// Remove deletes and returns the element at i, shifting later elements down.
// It panics with ErrOutOfRange if i >= Len(). O(n).
func (v *Vec[I, T]) Remove(i I) T {
	p := v.mustPos(i.Index())
	x := v.Raw[p]
	v.Raw = slices.Delete(v.Raw, p, p+1)

	return x
}

// SwapRemove deletes and returns the element at i, moving the last element
// into its place. It panics with ErrOutOfRange if i >= Len(). O(1).
func (v *Vec[I, T]) SwapRemove(i I) T {
	p := v.mustPos(i.Index())
	last := len(v.Raw) - 1
	x := v.Raw[p]
	v.Raw[p] = v.Raw[last]
	var zero T
	v.Raw[last] = zero
	v.Raw = v.Raw[:last]

	return x
}

// Truncate keeps the first n elements and drops the rest. It does nothing
// if n >= Len(). It panics with ErrOutOfRange if n is negative.
func (v *Vec[I, T]) Truncate(n int) {
	if n < 0 {
		panic(negativePos(n, len(v.Raw)))
	}
	if n >= len(v.Raw) {
		return
	}
	clear(v.Raw[n:])
	v.Raw = v.Raw[:n]
}

// Clear removes every element, keeping the capacity.
func (v *Vec[I, T]) Clear() {
	clear(v.Raw)
	v.Raw = v.Raw[:0]
}

// Reserve makes room for at least n more elements.
func (v *Vec[I, T]) Reserve(n int) {
	v.Raw = slices.Grow(v.Raw, n)
}

// ShrinkToFit reallocates the storage to its exact length.
func (v *Vec[I, T]) ShrinkToFit() {
	if cap(v.Raw) == len(v.Raw) {
		return
	}
	v.Raw = append(make([]T, 0, len(v.Raw)), v.Raw...)
}

// Append moves every element of other onto the end of v, leaving other empty.
// It panics with ErrAliased if other is v.
func (v *Vec[I, T]) Append(other *Vec[I, T]) {
	if other == v {
		panic(ErrAliased)
	}
	v.Raw = append(v.Raw, other.Raw...)
	other.Clear()
}

// SplitOff moves the elements from at onward into a new Vec and returns it;
// v keeps [0, at). It panics with ErrOutOfRange if at > Len().
func (v *Vec[I, T]) SplitOff(at I) *Vec[I, T] {
	p := at.Index()
	if p > uint(len(v.Raw)) {
		panic(outOfRange(p, len(v.Raw)))
	}
	tail := slices.Clone(v.Raw[p:])
	clear(v.Raw[p:])
	v.Raw = v.Raw[:p]

	return FromSlice[I](tail)
}

// Extend appends every element of seq.
func (v *Vec[I, T]) Extend(seq iter.Seq[T]) {
	v.Raw = slices.AppendSeq(v.Raw, seq)
}

// ExtendFromSlice appends the elements of s.
func (v *Vec[I, T]) ExtendFromSlice(s []T) {
	v.Raw = append(v.Raw, s...)
}

// Resize grows v to n elements by appending copies of x, or truncates it.
func (v *Vec[I, T]) Resize(n int, x T) {
	v.ResizeWith(n, func() T { return x })
}

// ResizeWith grows v to n elements by appending results of fill, or
// truncates it.
func (v *Vec[I, T]) ResizeWith(n int, fill func() T) {
	if n <= len(v.Raw) {
		v.Truncate(n)
		return
	}
	v.Raw = slices.Grow(v.Raw, n-len(v.Raw))
	for len(v.Raw) < n {
		v.Raw = append(v.Raw, fill())
	}
}

// Retain keeps only the elements for which keep returns true, in order.
func (v *Vec[I, T]) Retain(keep func(T) bool) {
	v.Raw = slices.DeleteFunc(v.Raw, func(x T) bool { return !keep(x) })
}

// Drain removes the elements selected by b and returns them as a single-pass
// sequence. The elements are removed when Drain returns, whether or not the
// sequence is consumed. It panics with ErrOutOfRange or ErrBadRange if b is
// invalid for v.
func (v *Vec[I, T]) Drain(b Bounds[I]) iter.Seq[T] {
	_, removed := v.drain(b)

	return func(yield func(T) bool) {
		for len(removed) > 0 {
			x := removed[0]
			removed = removed[1:]
			if !yield(x) {
				return
			}
		}
	}
}

// DrainEnumerated is Drain, also yielding the index each element occupied
// before removal.
func (v *Vec[I, T]) DrainEnumerated(b Bounds[I]) iter.Seq2[I, T] {
	lo, removed := v.drain(b)

	return func(yield func(I, T) bool) {
		for len(removed) > 0 {
			i, x := idx.New[I](uint(lo)), removed[0]
			lo, removed = lo+1, removed[1:]
			if !yield(i, x) {
				return
			}
		}
	}
}

func (v *Vec[I, T]) drain(b Bounds[I]) (int, []T) {
	lo, hi, err := b.intoRange().resolve(len(v.Raw))
	if err != nil {
		panic(err)
	}
	removed := slices.Clone(v.Raw[lo:hi])
	v.Raw = slices.Delete(v.Raw, lo, hi)

	return lo, removed
}

// IntoEnumerated takes the elements out of v, leaving it empty, and returns
// them with their indices as a single-pass sequence.
func (v *Vec[I, T]) IntoEnumerated() iter.Seq2[I, T] {
	raw := v.IntoRaw()
	next := 0

	return func(yield func(I, T) bool) {
		for next < len(raw) {
			i, x := idx.New[I](uint(next)), raw[next]
			next++
			if !yield(i, x) {
				return
			}
		}
	}
}

// IntoRaw takes the storage out of v, leaving it empty.
func (v *Vec[I, T]) IntoRaw() []T {
	raw := v.Raw
	v.Raw = nil

	return raw
}
