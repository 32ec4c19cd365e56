// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: The concrete index type Of[R, D]: construction, policy gate, accessors.
// Policy:
//   - Constructors are methods that ignore their receiver, so a generic
//     container can build indices from the zero value of its type parameter.
//   - Only MaybeCheckIndex decides whether a position is acceptable.

package idx

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Of is an index in domain D stored as the unsigned integer R.
//
// The zero value is the index of position 0. Values are immutable; the
// assignment forms of the arithmetic methods replace the value in place.
type Of[R constraints.Unsigned, D Domain] struct {
	raw R
}

// compile-time check: Of satisfies the capability.
var _ = New[Of[uint32, DefaultDomain]]

// MaxIndex is the largest position checked constructors accept when
// ChecksMaxIndex is true.
func (Of[R, D]) MaxIndex() uint {
	var d D
	if m, ok := d.Limit(); ok {
		return m
	}

	return uint(^R(0))
}

// ChecksMaxIndex reports whether checked constructors enforce MaxIndex.
func (Of[R, D]) ChecksMaxIndex() bool {
	var d D

	return d.Checked()
}

// New builds the index for position n. Alias for FromUsize.
//
// Panics if checks are enabled and n > MaxIndex.
func (i Of[R, D]) New(n uint) Of[R, D] {
	return i.FromUsize(n)
}

// FromUsize builds the index for position n, truncating to R.
//
// Panics if checks are enabled and n > MaxIndex.
func (i Of[R, D]) FromUsize(n uint) Of[R, D] {
	i.MaybeCheckIndex(n)

	return Of[R, D]{raw: R(n)}
}

// FromRaw builds the index from its representation. The value is still
// validated against MaxIndex even though no truncation can occur.
func (i Of[R, D]) FromRaw(r R) Of[R, D] {
	return i.FromUsize(uint(r))
}

// FromUsizeUnchecked builds the index for n without any check, truncating
// to R. Use it only where the bound is already established.
func (Of[R, D]) FromUsizeUnchecked(n uint) Of[R, D] {
	return Of[R, D]{raw: R(n)}
}

// FromRawUnchecked stores r verbatim.
func (Of[R, D]) FromRawUnchecked(r R) Of[R, D] {
	return Of[R, D]{raw: r}
}

// Default returns the domain's configured default (built unchecked), or the
// zero index when the domain does not implement Defaulter.
func (Of[R, D]) Default() Of[R, D] {
	var d D
	if df, ok := any(d).(Defaulter); ok {
		return Of[R, D]{raw: R(df.DefaultIndex())}
	}

	return Of[R, D]{}
}

// Index returns the position.
func (i Of[R, D]) Index() uint {
	return uint(i.raw)
}

// Raw returns the stored representation.
func (i Of[R, D]) Raw() R {
	return i.raw
}

// MaybeCheckIndex panics with an error wrapping ErrOverflow if checks are
// enabled and n > MaxIndex. It does nothing otherwise.
func (i Of[R, D]) MaybeCheckIndex(n uint) {
	if err := i.checkIndex(n); err != nil {
		panic(err)
	}
}

// checkIndex is the error-returning form of MaybeCheckIndex, used by decoders.
func (i Of[R, D]) checkIndex(n uint) error {
	if i.ChecksMaxIndex() && n > i.MaxIndex() {
		return overflowError(n, i.MaxIndex())
	}

	return nil
}

//go:noinline
func overflowError(n, limit uint) error {
	return fmt.Errorf("%w: %d is outside the range [0, %d]", ErrOverflow, n, limit)
}

// String renders the position in decimal.
func (i Of[R, D]) String() string {
	return strconv.FormatUint(uint64(i.raw), 10)
}
