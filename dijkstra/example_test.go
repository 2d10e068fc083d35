// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dijkstra"
)

// ExampleDijkstra demonstrates a single-pair query with path reconstruction.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 3)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source("A"),
		dijkstra.WithTarget("D"),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, "A", "D")
	fmt.Println(dist["D"], path)

	// Output: 5 [A B D]
}
