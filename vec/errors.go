// SPDX-License-Identifier: MIT
// Package vec: sentinel error set.
// Operator-style accessors (At, Ref, Sub, Remove, ...) panic with an error
// wrapping one of these sentinels; the Get* forms report absence instead.
// Decoders return them as ordinary errors. Match with errors.Is.

package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a position or range end beyond the current length.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrBadRange indicates a range whose start exceeds its end, or an
	// inclusive range ending at the largest position.
	ErrBadRange = errors.New("vec: invalid range")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("vec: vector is empty")

	// ErrAliased indicates a vector was appended to itself.
	ErrAliased = errors.New("vec: source and destination are the same vector")
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicNegativeCapacity = "vec: WithInitialCapacity: capacity must be non-negative"
)

func outOfRange(pos uint, length int) error {
	return fmt.Errorf("%w: index %d out of range for length %d", ErrOutOfRange, pos, length)
}

// negativePos reports a signed position so a negative input reads as such.
func negativePos(n, length int) error {
	return fmt.Errorf("%w: index %d out of range for length %d", ErrOutOfRange, n, length)
}

func insertOutOfRange(pos uint, length int) error {
	return fmt.Errorf("%w: insertion index %d should be <= length %d", ErrOutOfRange, pos, length)
}
