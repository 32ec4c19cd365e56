// SPDX-License-Identifier: MIT
// Package vec_test contains fixtures shared by the vec tests.

package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

type (
	strDom     struct{ idx.DefaultDomain }
	zeroMaxDom struct{ idx.DefaultDomain }
	tinyDom    struct{ idx.DefaultDomain }
)

func (zeroMaxDom) Limit() (uint, bool) { return 0, true }
func (tinyDom) Limit() (uint, bool)    { return 3, true }

type (
	// StrIdx is the general-purpose index of these tests.
	StrIdx = idx.Of[uint32, strDom]
	// ZeroMax admits only position 0.
	ZeroMax = idx.Of[uint16, zeroMaxDom]
	// Tiny admits positions 0..3.
	Tiny = idx.Of[uint8, tinyDom]
)

// I is shorthand for a StrIdx at position n.
func I(n uint) StrIdx { return idx.New[StrIdx](n) }

// pair is an (index, value) observation collected from an enumerated iterator.
type pair[T any] struct {
	I StrIdx
	V T
}

// RequirePanicIs ASSERTS fn panics with an error matching target via errors.Is.
func RequirePanicIs(t *testing.T, target error, fn func(), msg string) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "%s: expected panic", msg)
		err, ok := r.(error)
		require.True(t, ok, "%s: panic value %v is not an error", msg, r)
		require.ErrorIs(t, err, target, msg)
	}()
	fn()
}

// RequirePanicMessage ASSERTS fn panics with ErrOutOfRange and that the
// panic message contains want.
func RequirePanicMessage(t *testing.T, want string, fn func(), msg string) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "%s: expected panic", msg)
		err, ok := r.(error)
		require.True(t, ok, "%s: panic value %v is not an error", msg, r)
		require.ErrorIs(t, err, vec.ErrOutOfRange, msg)
		require.Contains(t, err.Error(), want, msg)
	}()
	fn()
}
