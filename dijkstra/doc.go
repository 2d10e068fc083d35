// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graph values with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - A min-heap always expands the closest unsettled vertex next.
//   - WithTarget stops as soon as the target is settled, which is all a
//     single-pair query (start corner to end corner of a grid) needs.
//   - WithReturnPath keeps the predecessor map; PathTo rebuilds a path from it.
//   - WithMaxDistance caps exploration.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source was not set.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrUnweightedGraph: the graph does not carry weights.
//   - ErrVertexNotFound:  Source or Target is not a vertex of the graph.
//   - ErrNegativeWeight:  an edge with a negative weight was found.
//   - ErrNoPath:          PathTo was asked for an unreachable vertex.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("0,0"), dijkstra.WithTarget("9,9"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path, _ := dijkstra.PathTo(prev, "0,0", "9,9")
//	fmt.Println(dist["9,9"], path)
package dijkstra
