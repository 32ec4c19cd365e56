// Package vec provides Vec, a growable vector addressed by a typed index,
// and Slice, the view it dereferences to.
//
// What
//
//   - Vec[I, T]: owns a contiguous []T. Push returns the I of the new element;
//     every positional operation (Insert, Remove, SwapRemove, SplitOff, ...)
//     takes an I instead of an int.
//   - Slice[I, T]: a non-owning window over contiguous elements with the same
//     addressing. Vec embeds Slice, so all view methods work on a Vec.
//   - Bounds[I]: a closed set of range shapes over I (Range, RangeFrom,
//     RangeTo, RangeInclusive, RangeToInclusive, RangeFull) used to take
//     sub-views and to drain.
//
// Why
//
//	With plain []Node and []Edge, nothing stops an edge position from indexing
//	the node slice. With Vec[NodeIdx, Node] and Vec[EdgeIdx, Edge] the compiler
//	does.
//
// Indexing protocol
//
// Every access kind comes in three forms:
//
//	typed index   Get / GetRef      At / Ref / Set      AtUnchecked / RefUnchecked
//	raw position  GetPos / GetRefPos AtPos / RefPos     AtPosUnchecked / RefPosUnchecked
//	Bounds        GetSub            Sub                 SubUnchecked
//
// Get* forms report absence with a false result. The middle column panics
// with an error wrapping ErrOutOfRange (or ErrBadRange for malformed
// ranges), like indexing a Go slice. Unchecked forms skip this package's
// validation; the Go runtime bounds check still applies.
//
// All range shapes project their endpoints to positions through one
// function and are validated by one function, so slicing, bounds checks and
// draining behave identically for every shape.
//
// Overflow
//
// A Vec never checks its length eagerly. Operations that produce an index
// (Push, NextIdx, Enumerate, ...) build it through the index type and so
// panic with idx.ErrOverflow when the length no longer fits. FromSlice and
// the decoders check the length once when adopting existing storage.
//
// Enumerated iteration
//
//	for i, n := range nodes.Enumerate() { ... }   // i is NodeIdx, not int
//
// Enumerate, EnumerateRef, Indices, DrainEnumerated and IntoEnumerated all
// yield typed indices.
//
// Serialization
//
// Vec and Slice encode to JSON and YAML as plain sequences.
//
// Errors:
//
//	ErrOutOfRange - position or range end beyond the length.
//	ErrBadRange   - range start after its end, or inclusive end at the maximum.
//	ErrEmpty      - LastIdx on an empty view.
//	ErrAliased    - Append of a vector to itself.
package vec
