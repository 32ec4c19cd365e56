// SPDX-License-Identifier: MIT

package idx

import (
	"cmp"
	"errors"
)

// Sentinel errors for index construction and decoding.
var (
	// ErrOverflow indicates a checked constructor was asked for a position
	// above the domain's MAX_INDEX. It is raised with panic, wrapped with the
	// offending value and the bound.
	ErrOverflow = errors.New("idx: index overflow")

	// ErrSyntax indicates an encoded index is not a non-negative integer.
	ErrSyntax = errors.New("idx: invalid index encoding")
)

// Idx is the capability shared by all index types: a lossless conversion to
// and from a plain position.
//
// FromUsize is a constructor. It is called on the zero value and must not
// depend on its receiver. It panics when n cannot be represented under the
// type's overflow policy. Index is total and never panics.
//
// For every n accepted by FromUsize, FromUsize(n).Index() == n.
type Idx[I any] interface {
	comparable

	// FromUsize builds the index for position n.
	FromUsize(n uint) I

	// Index returns the position.
	Index() uint
}

// Domain names one index space and carries its overflow policy.
// Implementations are usually empty structs embedding DefaultDomain; the
// methods are called on the zero value.
type Domain interface {
	// Limit reports MAX_INDEX. ok == false selects the maximum value of the
	// representation.
	Limit() (max uint, ok bool)

	// Checked reports whether checked constructors enforce MAX_INDEX.
	Checked() bool
}

// DefaultDomain is the policy used when a domain does not override it:
// MAX_INDEX is the representation's maximum and checks are enabled.
type DefaultDomain struct{}

// Limit selects the representation maximum.
func (DefaultDomain) Limit() (uint, bool) { return 0, false }

// Checked enables construction checks.
func (DefaultDomain) Checked() bool { return true }

// Defaulter is implemented by domains that configure a default index value.
// The value is built without checks, which lets a domain use an otherwise
// invalid position as a "no index" sentinel.
type Defaulter interface {
	DefaultIndex() uint
}

// New builds the index of type I for position n. It panics on overflow.
func New[I Idx[I]](n uint) I {
	var zero I

	return zero.FromUsize(n)
}

// Default returns the configured default of I, or its zero value when I has
// no default.
func Default[I Idx[I]]() I {
	var zero I
	if d, ok := any(zero).(interface{ Default() I }); ok {
		return d.Default()
	}

	return zero
}

// Compare orders two indices by position.
func Compare[I Idx[I]](a, b I) int {
	return cmp.Compare(a.Index(), b.Index())
}

// Less reports whether a is positioned before b.
func Less[I Idx[I]](a, b I) bool {
	return a.Index() < b.Index()
}

// Min returns the index with the smaller position.
func Min[I Idx[I]](a, b I) I {
	if b.Index() < a.Index() {
		return b
	}

	return a
}

// Max returns the index with the larger position.
func Max[I Idx[I]](a, b I) I {
	if b.Index() > a.Index() {
		return b
	}

	return a
}

// UsizeCompare orders a raw position against an index. It mirrors
// CompareUsize with the operands swapped.
func UsizeCompare[I Idx[I]](n uint, i I) int {
	return cmp.Compare(n, i.Index())
}

// UsizeLess reports whether the raw position n comes before i.
func UsizeLess[I Idx[I]](n uint, i I) bool {
	return n < i.Index()
}
