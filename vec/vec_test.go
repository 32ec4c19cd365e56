// SPDX-License-Identifier: MIT

package vec_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

// TestPushGet checks that Push hands out consecutive indices that read back
// the pushed values.
func TestPushGet(t *testing.T) {
	v := vec.New[StrIdx, string]()
	require.True(t, v.IsEmpty())

	a := v.Push("a")
	b := v.Push("b")
	c := v.Push("c")

	assert.Equal(t, uint(0), a.Index())
	assert.Equal(t, uint(1), b.Index())
	assert.Equal(t, uint(2), c.Index())
	assert.Equal(t, 3, v.Len())

	for i, want := range map[StrIdx]string{a: "a", b: "b", c: "c"} {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, want, v.At(i))
	}
	_, ok := v.Get(I(3))
	assert.False(t, ok, "Get past the end")
	assert.Equal(t, I(3), v.NextIdx())
}

// TestVecBasics walks through the lifecycle of a small vector.
func TestVecBasics(t *testing.T) {
	v := vec.WithCapacity[StrIdx, int](4)
	assert.GreaterOrEqual(t, v.Cap(), 4)

	v.Push(10)
	v.Push(20)
	v.Push(30)

	*v.Ref(I(1)) += 5
	assert.Equal(t, []int{10, 25, 30}, v.AsRawSlice())

	last, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, 30, last)

	v.Insert(I(0), 5)
	v.Insert(I(3), 40)
	assert.Equal(t, []int{5, 10, 25, 40}, v.Raw)

	assert.Equal(t, 10, v.Remove(I(1)))
	assert.Equal(t, 5, v.SwapRemove(I(0)))
	assert.Equal(t, []int{40, 25}, v.Raw)

	v.Clear()
	assert.True(t, v.IsEmpty())
	_, ok = v.Pop()
	assert.False(t, ok)
}

// TestZeroValue verifies that the zero Vec is usable.
func TestZeroValue(t *testing.T) {
	var v vec.Vec[StrIdx, string]
	assert.Equal(t, 0, v.Len())
	i := v.Push("x")
	assert.Equal(t, I(0), i)
	assert.Equal(t, "x", v.At(i))
}

// TestPushOverflow verifies that Push rejects an index the type cannot hold
// and leaves the vector unchanged.
func TestPushOverflow(t *testing.T) {
	v := vec.New[ZeroMax, int]()
	v.Push(1)
	RequirePanicIs(t, idx.ErrOverflow, func() { v.Push(2) }, "second push")
	assert.Equal(t, 1, v.Len())
}

// TestFromSliceOverflow verifies that adopting too long a slice panics.
func TestFromSliceOverflow(t *testing.T) {
	assert.Equal(t, 3, vec.FromSlice[Tiny]([]int{1, 2, 3}).Len())
	RequirePanicIs(t, idx.ErrOverflow, func() {
		vec.FromSlice[Tiny]([]int{1, 2, 3, 4})
	}, "length 4 in Tiny")
}

// TestLiteralRoundTrip checks that a literal built Vec exposes exactly its
// elements.
func TestLiteralRoundTrip(t *testing.T) {
	v := vec.From[StrIdx](1, 2, 3, 4)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, v.AsRawSlice()); diff != "" {
		t.Fatalf("AsRawSlice mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, vec.EqualRaw(v.AsSlice(), []int{1, 2, 3, 4}))
}

// TestInsertRemovePanics covers the positional panics of Vec.
func TestInsertRemovePanics(t *testing.T) {
	v := vec.From[StrIdx]("a", "b")
	RequirePanicIs(t, vec.ErrOutOfRange, func() { v.Insert(I(3), "z") }, "Insert past len")
	RequirePanicIs(t, vec.ErrOutOfRange, func() { v.Remove(I(2)) }, "Remove at len")
	RequirePanicIs(t, vec.ErrOutOfRange, func() { v.SwapRemove(I(5)) }, "SwapRemove past len")
	RequirePanicIs(t, vec.ErrOutOfRange, func() { v.SplitOff(I(3)) }, "SplitOff past len")
	RequirePanicIs(t, vec.ErrOutOfRange, func() { v.Truncate(-1) }, "negative Truncate")
	assert.Equal(t, []string{"a", "b"}, v.Raw)
}

// TestNegativePositionMessage checks that a negative plain position is
// reported as signed rather than wrapped to a huge unsigned value.
func TestNegativePositionMessage(t *testing.T) {
	v := vec.From[StrIdx]("a")
	const want = "index -1 out of range for length 1"
	RequirePanicMessage(t, want, func() { v.Truncate(-1) }, "Truncate")
	RequirePanicMessage(t, want, func() { v.AtPos(-1) }, "AtPos")
	RequirePanicMessage(t, want, func() { v.RefPos(-1) }, "RefPos")
	RequirePanicMessage(t, "index 4 out of range for length 1", func() { v.AtPos(4) }, "AtPos past len")
}

// TestSplitOffAppend checks that SplitOff then Append restores the vector.
func TestSplitOffAppend(t *testing.T) {
	for at := uint(0); at <= 5; at++ {
		v := vec.From[StrIdx](0, 1, 2, 3, 4)
		tail := v.SplitOff(I(at))
		assert.Equal(t, int(at), v.Len())
		assert.Equal(t, 5-int(at), tail.Len())

		v.Append(tail)
		assert.True(t, tail.IsEmpty(), "Append leaves the source empty")
		assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Raw, "at=%d", at)
	}
}

// TestAppendSelf verifies that appending a vector to itself panics.
func TestAppendSelf(t *testing.T) {
	v := vec.From[StrIdx](1, 2)
	RequirePanicIs(t, vec.ErrAliased, func() { v.Append(v) }, "self append")
}

// TestTruncateResize covers Truncate, Resize, ResizeWith and ShrinkToFit.
func TestTruncateResize(t *testing.T) {
	v := vec.From[StrIdx](1, 2, 3, 4)
	v.Truncate(10)
	assert.Equal(t, 4, v.Len())
	v.Truncate(2)
	assert.Equal(t, []int{1, 2}, v.Raw)

	v.Resize(4, 7)
	assert.Equal(t, []int{1, 2, 7, 7}, v.Raw)

	n := 0
	v.ResizeWith(6, func() int { n++; return n * 100 })
	assert.Equal(t, []int{1, 2, 7, 7, 100, 200}, v.Raw)

	v.Resize(1, 0)
	assert.Equal(t, []int{1}, v.Raw)

	v.Reserve(64)
	assert.GreaterOrEqual(t, v.Cap(), 65)
	v.ShrinkToFit()
	assert.Equal(t, 1, v.Cap())
}

// TestExtendRetain covers Extend, ExtendFromSlice and Retain.
func TestExtendRetain(t *testing.T) {
	v := vec.New[StrIdx, int]()
	v.Extend(slices.Values([]int{1, 2, 3}))
	v.ExtendFromSlice([]int{4, 5, 6})
	v.Retain(func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, v.Raw)
}

// TestCollectRepeat covers the sequence constructors.
func TestCollectRepeat(t *testing.T) {
	c := vec.Collect[StrIdx](maps.Keys(map[int]struct{}{3: {}}))
	assert.Equal(t, []int{3}, c.Raw)

	r := vec.Repeat[StrIdx]("x", 3)
	assert.Equal(t, []string{"x", "x", "x"}, r.Raw)

	require.Panics(t, func() { vec.WithInitialCapacity(-1) })
}

// TestDrain mirrors the behaviour of draining a middle run.
func TestDrain(t *testing.T) {
	v := vec.From[StrIdx](0, 1, 2, 3, 4, 5)
	got := slices.Collect(v.Drain(vec.Range(I(1), I(4))))

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{0, 4, 5}, v.Raw)
}

// TestDrainUnconsumed verifies removal happens even if the sequence is dropped.
func TestDrainUnconsumed(t *testing.T) {
	v := vec.From[StrIdx]("a", "b", "c")
	_ = v.Drain(vec.RangeFrom(I(1)))
	assert.Equal(t, []string{"a"}, v.Raw)
}

// TestDrainEnumeratedFull checks that draining everything yields each
// element with its former index and empties the vector.
func TestDrainEnumeratedFull(t *testing.T) {
	v := vec.From[StrIdx]("a", "b", "c")

	var got []pair[string]
	for i, s := range v.DrainEnumerated(vec.RangeFull[StrIdx]()) {
		got = append(got, pair[string]{i, s})
	}

	want := []pair[string]{{I(0), "a"}, {I(1), "b"}, {I(2), "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DrainEnumerated mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, v.IsEmpty())
}

// TestDrainEnumeratedMiddle checks that positions are those before removal.
func TestDrainEnumeratedMiddle(t *testing.T) {
	v := vec.From[StrIdx](10, 11, 12, 13, 14)

	var got []pair[int]
	for i, x := range v.DrainEnumerated(vec.RangeInclusive(I(2), I(3))) {
		got = append(got, pair[int]{i, x})
	}

	want := []pair[int]{{I(2), 12}, {I(3), 13}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DrainEnumerated mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{10, 11, 14}, v.Raw)
}

// TestDrainEarlyStop verifies that stopping early still removes the range.
func TestDrainEarlyStop(t *testing.T) {
	v := vec.From[StrIdx](1, 2, 3, 4)
	for x := range v.Drain(vec.RangeTo(I(3))) {
		assert.Equal(t, 1, x)
		break
	}
	assert.Equal(t, []int{4}, v.Raw)
}

// TestDrainInvalid verifies that invalid ranges panic and leave v intact.
func TestDrainInvalid(t *testing.T) {
	v := vec.From[StrIdx](1, 2, 3)
	RequirePanicIs(t, vec.ErrOutOfRange, func() { v.Drain(vec.RangeTo(I(4))) }, "end past len")
	RequirePanicIs(t, vec.ErrBadRange, func() { v.Drain(vec.Range(I(2), I(1))) }, "reversed")
	assert.Equal(t, []int{1, 2, 3}, v.Raw)
}

// TestIntoEnumerated checks that IntoEnumerated empties the vector.
func TestIntoEnumerated(t *testing.T) {
	v := vec.From[StrIdx]("x", "y")
	seq := v.IntoEnumerated()
	assert.True(t, v.IsEmpty())

	var got []pair[string]
	for i, s := range seq {
		got = append(got, pair[string]{i, s})
	}
	want := []pair[string]{{I(0), "x"}, {I(1), "y"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("IntoEnumerated mismatch (-want +got):\n%s", diff)
	}
}

// TestEquality checks the element-wise equality helpers.
func TestEquality(t *testing.T) {
	a := vec.From[StrIdx](1, 2, 3)
	b := a.Clone()
	assert.True(t, vec.Equal(a.AsSlice(), b.AsSlice()))

	b.Set(I(0), 9)
	assert.False(t, vec.Equal(a.AsSlice(), b.AsSlice()))
	assert.Equal(t, 1, a.At(I(0)), "Clone does not share storage")
}
