// Package grid provides a dense, generic two-dimensional container addressed
// by (column, row) coordinates.
//
// What:
//
//   - Grid[T] stores width×height values of any type in one flat slice.
//   - Bounds-checked reads (At, Lookup) and in-place writes (Set).
//   - Neighbor enumeration with 4-connectivity (Conn4) or 8-connectivity (Conn8).
//   - Lazy, restartable full iteration (All) pairing every Coord with its value.
//   - Functional updates (Clone, Map) next to in-place mutation.
//
// Layout:
//
//	The flat offset of (x, y) is x + y*width: rows are stored one after the
//	other, columns vary fastest. All and Cells walk cells in exactly this order,
//	so a grid rebuilt from the collected values is identical to the original.
//
// Neighbor order:
//
//	Conn4: west, north, east, south.
//	Conn8: west, north, east, south, north-west, north-east, south-east, south-west.
//	Neighbors that fall outside the grid are omitted; the order of the rest is kept.
//
// Complexity:
//
//   - New, Filled, Clone, Map, Cells: O(W×H).
//   - At, Lookup, Set, InBounds, Index, Coordinate: O(1).
//   - Neighbors: O(1) (at most 8 entries).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrShapeMismatch: the cell list length differs from width×height, or
//     width×height does not fit in an int.
//   - ErrOutOfBounds: a coordinate outside [0,W)×[0,H) was read, written or used
//     as a neighbor anchor. Out-of-bounds access is a caller bug, so At, Set and
//     Neighbors panic with an error wrapping ErrOutOfBounds instead of clamping.
//
// Concurrency:
//
//	Reads never touch internal mutable state and may run concurrently. Set needs
//	exclusive access; no locking is done here.
package grid
