// Package dfs enumerates walks between two vertices of a core.Graph by
// depth-first search.
//
// What:
//
//   - Paths collects every walk from a source to a target; CountPaths only
//     counts them.
//   - Which vertices a walk may enter is decided by an Enter policy. The
//     default allows simple paths only (no vertex twice). Custom policies can
//     allow some vertices to repeat, for example caves that may be revisited.
//   - A walk ends as soon as it reaches the target; the target is never
//     passed through.
//   - Cancellation via context.Context and an optional depth limit.
//
// Complexity:
//
//	Exponential in the worst case: every admitted walk is explored once.
//	Memory O(L) for the current walk of length L, plus the collected paths.
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - ErrStartVertexNotFound   source or target not in graph
//   - ErrUnboundedWalk         the policy admitted a walk longer than the safety limit
//   - context.Canceled         enumeration canceled via context
package dfs
