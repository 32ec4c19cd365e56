// SPDX-License-Identifier: MIT
// Package idx_test contains fixtures shared by the idx tests: one domain per
// overflow policy exercised below.

package idx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indexvec/idx"
)

type (
	usize16Dom             struct{ idx.DefaultDomain }
	zeroMaxIgnoreDom       struct{ idx.DefaultDomain }
	zeroMaxDom             struct{ idx.DefaultDomain }
	idxSzDom               struct{ idx.DefaultDomain }
	idx32Dom               struct{ idx.DefaultDomain }
	idx16Dom               struct{ idx.DefaultDomain }
	idx8Dom                struct{ idx.DefaultDomain }
	smallCheckedEarlyDom   struct{ idx.DefaultDomain }
	smallCheckedDom        struct{ idx.DefaultDomain }
	smallUncheckedDom      struct{ idx.DefaultDomain }
	smallUncheckedEarlyDom struct{ idx.DefaultDomain }
)

func (usize16Dom) Limit() (uint, bool) { return math.MaxUint16, true }
func (usize16Dom) DefaultIndex() uint  { return math.MaxUint }

func (zeroMaxIgnoreDom) Limit() (uint, bool) { return 0, true }
func (zeroMaxIgnoreDom) Checked() bool       { return false }

func (zeroMaxDom) Limit() (uint, bool) { return 0, true }

func (smallCheckedEarlyDom) Limit() (uint, bool) { return 0x7f, true }

func (smallUncheckedDom) Checked() bool { return false }

func (smallUncheckedEarlyDom) Limit() (uint, bool) { return 0x7f, true }
func (smallUncheckedEarlyDom) Checked() bool       { return false }

type (
	USize16             = idx.Of[uint, usize16Dom]
	ZeroMaxIgnore       = idx.Of[uint16, zeroMaxIgnoreDom]
	ZeroMax             = idx.Of[uint16, zeroMaxDom]
	IdxSz               = idx.Of[uint, idxSzDom]
	Idx32               = idx.Of[uint32, idx32Dom]
	Idx16               = idx.Of[uint16, idx16Dom]
	Idx8                = idx.Of[uint8, idx8Dom]
	SmallCheckedEarly   = idx.Of[uint8, smallCheckedEarlyDom]
	SmallChecked        = idx.Of[uint8, smallCheckedDom]
	SmallUnchecked      = idx.Of[uint8, smallUncheckedDom]
	SmallUncheckedEarly = idx.Of[uint8, smallUncheckedEarlyDom]
)

// RequireOverflow ASSERTS that fn panics with an error wrapping idx.ErrOverflow.
func RequireOverflow(t *testing.T, fn func(), msg string) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "%s: expected overflow panic", msg)
		err, ok := r.(error)
		require.True(t, ok, "%s: panic value %v is not an error", msg, r)
		require.ErrorIs(t, err, idx.ErrOverflow, msg)
	}()
	fn()
}
