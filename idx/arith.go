// SPDX-License-Identifier: MIT

package idx

import "cmp"

// Add returns the index n positions after i.
// The sum wraps at uint width and is then checked, so overflow past
// MaxIndex panics for checked domains.
func (i Of[R, D]) Add(n uint) Of[R, D] {
	return i.FromUsize(i.Index() + n)
}

// Sub returns the index n positions before i.
// Going below zero wraps to a huge position, which checked domains reject.
func (i Of[R, D]) Sub(n uint) Of[R, D] {
	return i.FromUsize(i.Index() - n)
}

// Rem returns the index at position i % n. It panics if n is zero.
func (i Of[R, D]) Rem(n uint) Of[R, D] {
	return i.FromUsize(i.Index() % n)
}

// AddAssign replaces i with i.Add(n).
func (i *Of[R, D]) AddAssign(n uint) {
	*i = i.Add(n)
}

// SubAssign replaces i with i.Sub(n).
func (i *Of[R, D]) SubAssign(n uint) {
	*i = i.Sub(n)
}

// RemAssign replaces i with i.Rem(n).
func (i *Of[R, D]) RemAssign(n uint) {
	*i = i.Rem(n)
}

// Compare orders i against o: -1, 0 or +1.
func (i Of[R, D]) Compare(o Of[R, D]) int {
	return cmp.Compare(i.raw, o.raw)
}

// Equal reports whether i and o name the same position.
func (i Of[R, D]) Equal(o Of[R, D]) bool {
	return i.raw == o.raw
}

// Less reports whether i is positioned before o.
func (i Of[R, D]) Less(o Of[R, D]) bool {
	return i.raw < o.raw
}

// CompareUsize orders i against the raw position n.
func (i Of[R, D]) CompareUsize(n uint) int {
	return cmp.Compare(i.Index(), n)
}

// EqUsize reports whether i is positioned at n.
func (i Of[R, D]) EqUsize(n uint) bool {
	return i.Index() == n
}

// LessUsize reports whether i is positioned before n.
func (i Of[R, D]) LessUsize(n uint) bool {
	return i.Index() < n
}
