// SPDX-License-Identifier: MIT
//
// File: vec.go
// Role: Vec type, constructors and functional options.
// Policy:
//   - Vec embeds Slice, so every view operation is available on the vector.
//   - Length is checked against the index type only when a constructor wraps
//     existing storage or when an operation produces an index (lazy check).

package vec

import (
	"errors"
	"iter"
	"slices"

	"github.com/katalvlaran/indexvec/idx"
)

// Vec is a growable vector whose positions are named by the index type I.
//
// The zero value is an empty vector ready to use. Raw (promoted from Slice)
// is the backing storage and may be used directly when this API falls short.
//
// Vec adds no synchronization: share it across goroutines only under the
// caller's own locking.
type Vec[I idx.Idx[I], T any] struct {
	Slice[I, T]
}

// Option configures a Vec built by New.
type Option func(*options)

type options struct {
	capacity int
}

// WithInitialCapacity preallocates room for n elements.
// It panics if n is negative.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic(panicNegativeCapacity)
	}

	return func(o *options) { o.capacity = n }
}

// New returns an empty Vec configured by opts.
func New[I idx.Idx[I], T any](opts ...Option) *Vec[I, T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	v := &Vec[I, T]{}
	if o.capacity > 0 {
		v.Raw = make([]T, 0, o.capacity)
	}

	return v
}

// WithCapacity returns an empty Vec with room for n elements.
func WithCapacity[I idx.Idx[I], T any](n int) *Vec[I, T] {
	return New[I, T](WithInitialCapacity(n))
}

// FromSlice wraps raw without copying. It panics with idx.ErrOverflow if
// len(raw) is not a valid position of I.
func FromSlice[I idx.Idx[I], T any](raw []T) *Vec[I, T] {
	_ = idx.New[I](uint(len(raw)))

	return &Vec[I, T]{Slice: Slice[I, T]{Raw: raw}}
}

// From builds a Vec from a literal list of elements:
//
//	names := vec.From[NameIdx]("ada", "grace", "barbara")
//
// When called with a spread slice (From[I](s...)) the storage is shared
// with s, as with FromSlice.
func From[I idx.Idx[I], T any](elems ...T) *Vec[I, T] {
	return FromSlice[I](elems)
}

// Collect drains seq into a new Vec, checking the final length.
func Collect[I idx.Idx[I], T any](seq iter.Seq[T]) *Vec[I, T] {
	return FromSlice[I](slices.Collect(seq))
}

// Repeat returns a Vec holding n copies of v.
func Repeat[I idx.Idx[I], T any](v T, n int) *Vec[I, T] {
	return FromSlice[I](slices.Repeat([]T{v}, n))
}

// AsSlice returns a view over the whole vector.
func (v *Vec[I, T]) AsSlice() Slice[I, T] {
	return v.Slice
}

// Cap returns the capacity of the backing storage.
func (v *Vec[I, T]) Cap() int {
	return cap(v.Raw)
}

// tryIndex converts the overflow panic of an index constructor into an error.
// Any other panic is propagated.
func tryIndex[I idx.Idx[I]](n uint) (i I, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, idx.ErrOverflow) {
				err = e
				return
			}
			panic(r)
		}
	}()

	return idx.New[I](n), nil
}
