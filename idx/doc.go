// Package idx defines typed indices: integer positions that belong to one
// logical index space, so that a node index can never be used where an edge
// index is expected, even though both wrap the same unsigned integer.
//
// What
//
//   - Idx[I]: the capability every index type satisfies. It converts a plain
//     position (uint) into the index type and projects it back out.
//   - Of[R, D]: a ready-to-use index type wrapping the unsigned representation
//     R (uint8, uint16, uint32, uint64, uint, uintptr) inside the domain D.
//   - Domain: the tag type that names an index space and configures its
//     overflow policy (MAX_INDEX and whether construction checks it).
//
// Declaring an index type
//
//	type nodeSpace struct{ idx.DefaultDomain }
//	type NodeIdx = idx.Of[uint32, nodeSpace]
//
//	type edgeSpace struct{ idx.DefaultDomain }
//	type EdgeIdx = idx.Of[uint32, edgeSpace]
//
// NodeIdx and EdgeIdx are distinct types: the compiler rejects passing one
// where the other is expected.
//
// Overflow policy
//
// A domain overrides Limit to lower MAX_INDEX and Checked to switch
// construction-time checks off (or on a build flag):
//
//	type span struct{ idx.DefaultDomain }
//	func (span) Limit() (uint, bool) { return 0x7fff_ff00, true }
//	func (span) Checked() bool       { return debugBuild }
//
// Every constructor without "Unchecked" in its name panics with an error
// wrapping ErrOverflow when asked for a position above MAX_INDEX and checks
// are on. There is no recoverable constructor: size the representation so it
// cannot overflow, or validate positions before constructing.
//
// Disabling checks never disables bounds checks in containers. A wrongly
// wrapped index still goes through the slice bounds check when used.
//
// Arithmetic
//
// Add, Sub and Rem compute at uint width with wraparound and re-enter the
// checked constructor, so Of.Sub(1) on zero panics for a checked type instead
// of silently wrapping, while an unchecked type carries the wrapped value.
//
// Errors:
//
//	ErrOverflow - a checked constructor was asked for a position above MAX_INDEX.
//	ErrSyntax   - a textual index could not be decoded.
package idx
