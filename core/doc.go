// Package core defines the Graph and Edge types shared by the graph
// algorithms in this module (dijkstra, dfs, gridgraph).
//
// What:
//
//   - Vertices are identified by non-empty string IDs.
//   - Edges carry an int64 weight and are directed or undirected depending on
//     the graph's default (WithDirected).
//   - Weights other than zero are only accepted by weighted graphs (WithWeighted).
//   - Self-loops and parallel edges are rejected.
//
// Determinism:
//
//	Vertices and NeighborIDs are sorted by ID; Edges and Neighbors are sorted
//	by edge ID, which follows insertion order ("e1", "e2", ...), compared
//	numerically.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state, so a Graph may be read from
//	several goroutines while another one adds vertices or edges.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed - edge from a vertex to itself.
//	ErrMultiEdge      - a second edge between the same ordered pair.
package core
