package gridgraph

import (
	"github.com/katalvlaran/aoc2021/grid"
)

// ConnectedComponents finds all contiguous regions of cells for which keep
// returns true, according to conn. Components are listed in the row-major
// order of their first cell; cells inside a component are in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func ConnectedComponents[T any](g *grid.Grid[T], conn grid.Connectivity, keep func(T) bool) [][]grid.Coord {
	seen := make([]bool, g.Len())
	var comps [][]grid.Coord

	for start, v := range g.All() {
		if !keep(v) || seen[g.Index(start)] {
			continue
		}
		seen[g.Index(start)] = true
		queue := []grid.Coord{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi], conn) {
				i := g.Index(n.Coord)
				if seen[i] || !keep(n.Value) {
					continue
				}
				seen[i] = true
				queue = append(queue, n.Coord)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
