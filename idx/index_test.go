// SPDX-License-Identifier: MIT
// Package idx_test verifies construction policy, arithmetic and comparisons of idx.Of.

package idx_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indexvec/idx"
)

// TestOf_DefaultMax ASSERTS MaxIndex defaults to the representation maximum
// and checks default to enabled.
func TestOf_DefaultMax(t *testing.T) {
	assert.Equal(t, uint(math.MaxUint32), Idx32{}.MaxIndex())
	assert.Equal(t, uint(math.MaxUint), IdxSz{}.MaxIndex())
	assert.Equal(t, uint(math.MaxUint16), Idx16{}.MaxIndex())
	assert.Equal(t, uint(math.MaxUint8), Idx8{}.MaxIndex())

	assert.True(t, Idx32{}.ChecksMaxIndex())
	assert.True(t, IdxSz{}.ChecksMaxIndex())
	assert.True(t, Idx16{}.ChecksMaxIndex())
	assert.True(t, Idx8{}.ChecksMaxIndex())

	assert.False(t, ZeroMaxIgnore{}.ChecksMaxIndex())
	assert.Equal(t, uint(0), ZeroMaxIgnore{}.MaxIndex())
}

// TestOf_BareDefaultDomain ASSERTS DefaultDomain can be used directly as the
// domain of an index type.
func TestOf_BareDefaultDomain(t *testing.T) {
	type Plain = idx.Of[uint32, idx.DefaultDomain]

	i := idx.New[Plain](41)
	assert.Equal(t, uint(41), i.Index())
	assert.Equal(t, uint(math.MaxUint32), Plain{}.MaxIndex())
	assert.True(t, Plain{}.ChecksMaxIndex())
	assert.Equal(t, Plain{}, idx.Default[Plain]())
}

func TestOf_Arith(t *testing.T) {
	assert.True(t, idx.New[Idx32](0).EqUsize(0))
	assert.True(t, idx.New[Idx32](0).Add(1).EqUsize(1))
	assert.True(t, idx.New[Idx32](1).Sub(1).EqUsize(0))
	assert.True(t, idx.New[Idx32](5).Rem(4).EqUsize(1))

	m := idx.New[Idx32](5)
	m.AddAssign(1)
	assert.Equal(t, idx.New[Idx32](6), m)
	m.SubAssign(2)
	assert.True(t, m.EqUsize(4))
	m.RemAssign(3)
	assert.True(t, m.EqUsize(1))

	assert.True(t, idx.New[Idx32](5).Less(idx.New[Idx32](6)))
	assert.True(t, idx.New[Idx32](5).LessUsize(6))
	assert.True(t, idx.UsizeLess(5, idx.New[Idx32](6)))
	assert.Equal(t, -1, idx.New[Idx32](5).CompareUsize(6))
	assert.Equal(t, -1, idx.UsizeCompare(5, idx.New[Idx32](6)))
	assert.Equal(t, 0, idx.New[Idx32](6).CompareUsize(6))
	assert.Equal(t, 1, idx.New[Idx32](7).Compare(idx.New[Idx32](6)))
}

func TestOf_Accessors(t *testing.T) {
	assert.Equal(t, uint32(4), idx.New[Idx32](4).Raw())
	assert.Equal(t, uint(4), idx.New[Idx32](4).Index())
	assert.Equal(t, "4", idx.New[Idx32](4).String())

	assert.Equal(t, uint8(0xff), SmallCheckedEarly{}.FromRawUnchecked(0xff).Raw())
}

// TestOf_ChecksGrid ASSERTS every non-panicking construction path of the
// checked/unchecked, early/late limit grid.
func TestOf_ChecksGrid(t *testing.T) {
	assert.True(t, SmallChecked{}.ChecksMaxIndex())
	assert.True(t, SmallCheckedEarly{}.ChecksMaxIndex())
	assert.Equal(t, uint(255), SmallChecked{}.MaxIndex())
	assert.Equal(t, uint(0x7f), SmallCheckedEarly{}.MaxIndex())

	assert.False(t, SmallUnchecked{}.ChecksMaxIndex())
	assert.False(t, SmallUncheckedEarly{}.ChecksMaxIndex())
	assert.Equal(t, uint(255), SmallUnchecked{}.MaxIndex())
	assert.Equal(t, uint(0x7f), SmallUncheckedEarly{}.MaxIndex())

	require.NotPanics(t, func() {
		_ = SmallChecked{}.FromRaw(150)
		_ = SmallChecked{}.FromUsize(150)
		_ = SmallChecked{}.FromUsize(255)
		_ = SmallChecked{}.FromUsize(0)

		_ = SmallCheckedEarly{}.FromUsize(0x7f)
		_ = SmallCheckedEarly{}.FromUsize(0)

		_ = SmallUncheckedEarly{}.FromRaw(0xff)
		_ = SmallUncheckedEarly{}.FromUsize(150)
		_ = SmallUncheckedEarly{}.FromUsize(300)
		_ = SmallUnchecked{}.FromUsize(150)
		_ = SmallUnchecked{}.FromUsize(300)

		_ = SmallCheckedEarly{}.FromRawUnchecked(0xff)
		_ = SmallCheckedEarly{}.FromUsizeUnchecked(150)
		_ = SmallCheckedEarly{}.FromUsizeUnchecked(300)
		_ = SmallChecked{}.FromUsizeUnchecked(300)

		_ = ZeroMaxIgnore{}.New(math.MaxUint16 + 1)
		_ = ZeroMaxIgnore{}.New(0).Add(1)
		_ = ZeroMaxIgnore{}.New(2)
	})

	// unchecked construction truncates to the representation
	assert.Equal(t, uint8(300&0xff), SmallUnchecked{}.FromUsize(300).Raw())
	assert.Equal(t, uint16(0), ZeroMaxIgnore{}.New(math.MaxUint16+1).Raw())
}

func TestOf_Default(t *testing.T) {
	assert.Equal(t, uint(math.MaxUint), idx.Default[USize16]().Index())
	assert.Equal(t, uint(math.MaxUint), USize16{}.Default().Index())
	// no Defaulter: the zero index
	assert.Equal(t, uint(0), idx.Default[Idx32]().Index())
}

// TestOf_Overflow ASSERTS every checked path that must panic with ErrOverflow.
func TestOf_Overflow(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"SmallCheckedEarly.FromRaw(0xff)", func() { _ = SmallCheckedEarly{}.FromRaw(0xff) }},
		{"SmallCheckedEarly.FromUsize(150)", func() { _ = SmallCheckedEarly{}.FromUsize(150) }},
		{"SmallCheckedEarly.FromUsize(300)", func() { _ = SmallCheckedEarly{}.FromUsize(300) }},
		{"SmallChecked.FromUsize(300)", func() { _ = SmallChecked{}.FromUsize(300) }},
		{"SmallChecked(255)+1", func() { _ = SmallChecked{}.FromUsize(255).Add(1) }},
		{"SmallChecked(255)+=1", func() {
			e := SmallChecked{}.FromUsize(255)
			e.AddAssign(1)
		}},
		{"SmallChecked(0)-1", func() { _ = SmallChecked{}.FromUsize(0).Sub(1) }},
		{"SmallChecked(0)-=1", func() {
			z := SmallChecked{}.FromUsize(0)
			z.SubAssign(1)
		}},
		{"ZeroMax.New(2)", func() { _ = ZeroMax{}.New(2) }},
		{"ZeroMax.FromRaw(2)", func() { _ = ZeroMax{}.FromRaw(2) }},
		{"ZeroMax(0)+1", func() { _ = ZeroMax{}.New(0).Add(1) }},
		{"ZeroMax(0)-1", func() { _ = ZeroMax{}.New(0).Sub(1) }},
		{"ZeroMax no wrap", func() { _ = ZeroMax{}.New(math.MaxUint16 + 1) }},
		{"SmallCheckedEarly(0x7f)+1", func() { _ = SmallCheckedEarly{}.FromUsize(0x7f).Add(1) }},
		{"SmallCheckedEarly(0x7f)+=1", func() {
			e := SmallCheckedEarly{}.FromUsize(0x7f)
			e.AddAssign(1)
		}},
		{"SmallCheckedEarly(0)-1", func() { _ = SmallCheckedEarly{}.FromUsize(0).Sub(1) }},
		{"SmallCheckedEarly(0)-=1", func() {
			z := SmallCheckedEarly{}.FromUsize(0)
			z.SubAssign(1)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			RequireOverflow(t, tc.fn, tc.name)
		})
	}
}

// TestOf_ZeroMax16 covers a 16-bit domain whose only valid position is zero.
func TestOf_ZeroMax16(t *testing.T) {
	require.NotPanics(t, func() { _ = ZeroMax{}.New(0) })
	RequireOverflow(t, func() { _ = ZeroMax{}.New(1) }, "New(1)")
	RequireOverflow(t, func() { _ = ZeroMax{}.New(0).Add(1) }, "0+1")
	RequireOverflow(t, func() { _ = ZeroMax{}.New(0).Sub(1) }, "0-1")
}

// TestOf_Idx8Boundary covers the top of an 8-bit domain with the default limit.
func TestOf_Idx8Boundary(t *testing.T) {
	top := Idx8{}.FromUsize(255)
	RequireOverflow(t, func() { _ = top.Add(1) }, "255+1")
	assert.True(t, top.Sub(1).EqUsize(254))
}

// TestOf_RoundTrip ASSERTS New(n).Index() == n across the accepted range.
func TestOf_RoundTrip(t *testing.T) {
	for n := uint(0); n <= 0x7f; n++ {
		require.Equal(t, n, SmallCheckedEarly{}.FromUsize(n).Index())
	}
	for _, n := range []uint{0, 1, 1 << 16, math.MaxUint32} {
		require.Equal(t, n, idx.New[Idx32](n).Index())
	}
	for n := uint(0x80); n <= 0x1ff; n++ {
		require.NotPanics(t, func() { _ = SmallUncheckedEarly{}.FromUsize(n) })
	}
}

func TestHelpers_MinMax(t *testing.T) {
	a, b := idx.New[Idx16](3), idx.New[Idx16](9)
	assert.Equal(t, a, idx.Min(a, b))
	assert.Equal(t, b, idx.Max(a, b))
	assert.True(t, idx.Less(a, b))
	assert.Equal(t, 1, idx.Compare(b, a))
}

func TestReadyMade(t *testing.T) {
	assert.Equal(t, uint(math.MaxUint32), idx.U32{}.MaxIndex())
	assert.Equal(t, uint(7), idx.New[idx.Usize](7).Index())
	if bits.UintSize < 64 {
		t.Skip("needs 64-bit uint to exceed the uint32 range")
	}
	past := uint64(math.MaxUint32) + 1
	RequireOverflow(t, func() { _ = idx.New[idx.U32](uint(past)) }, "U32 overflow")
}
