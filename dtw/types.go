package dtw

import (
	"errors"

	"github.com/katalvlaran/indexvec/idx"
)

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1 or SlopePenalty < 0).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

// MemoryMode controls how DTW stores its DP matrix.
type MemoryMode int

const (
	// FullMatrix keeps the entire (n+1)×(m+1) matrix; supports ReturnPath.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the previous and current rows; distance only.
	TwoRows
)

// DTWOptions configures Dynamic Time Warping.
type DTWOptions struct {
	// Window is the maximum |i-j| allowed, or NoWindow.
	Window int
	// SlopePenalty is added to every insertion or deletion step.
	SlopePenalty float64
	// ReturnPath requests the optimal warping path. Requires FullMatrix.
	ReturnPath bool
	// MemoryMode chooses FullMatrix or TwoRows storage.
	MemoryMode MemoryMode
}

// DefaultOptions returns no window, no penalty, no path, FullMatrix.
func DefaultOptions() DTWOptions {
	return DTWOptions{Window: NoWindow, MemoryMode: FullMatrix}
}

// Coord pairs a position of the first series with one of the second.
type Coord[A idx.Idx[A], B idx.Idx[B]] struct {
	I A
	J B
}
