// Package gridgraph treats a grid.Grid as a graph, enabling component
// analysis and shortest paths over cells.
//
// What:
//
//   - ConnectedComponents finds contiguous regions of cells accepted by a
//     predicate ("islands", "basins").
//   - ToCoreGraph converts a grid into a directed, weighted *core.Graph where
//     moving onto a cell costs the weight of that cell, ready for dijkstra.
//   - VertexID / ParseVertexID map coordinates to vertex IDs ("x,y") and back.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H×d).
//
// Options:
//
//   - Options.Conn: grid.Conn4 (4-neighbors) or grid.Conn8 (8-neighbors).
//   - Options.Weight: cost of entering a cell; defaults to 1.
//
// Errors:
//
//   - ErrBadVertexID: a vertex ID is not of the form "x,y".
//   - ErrNegativeCost: the weight function returned a negative cost.
package gridgraph
