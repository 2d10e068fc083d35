package core_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
)

// ExampleGraph builds a small cave system and lists each cave's exits.
func ExampleGraph() {
	g := core.NewGraph()
	for _, link := range [][2]string{{"start", "A"}, {"start", "b"}, {"A", "b"}, {"A", "end"}} {
		_, _ = g.AddEdge(link[0], link[1], 0)
	}

	for _, v := range g.Vertices() {
		ids, _ := g.NeighborIDs(v)
		fmt.Println(v, ids)
	}

	// Output:
	// A [b end start]
	// b [A start]
	// end [A]
	// start [A b]
}
