package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/grid"
)

// VertexID formats the vertex identifier for cell c.
func VertexID(c grid.Coord) string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// ParseVertexID converts an identifier produced by VertexID back to a Coord.
func ParseVertexID(id string) (grid.Coord, error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return grid.C(x, y), nil
}

// ToCoreGraph converts g into a directed, weighted *core.Graph. Every cell
// becomes a vertex with ID VertexID(c); every neighbor pair under opts.Conn
// gets one edge per direction, weighted by the cost of the cell it enters.
//
// Complexity: O(W×H×d) time and memory.
func ToCoreGraph[T any](g *grid.Grid[T], opts Options[T]) (*core.Graph, error) {
	if opts.Weight == nil {
		opts.Weight = DefaultOptions[T]().Weight
	}
	cg := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	ids := make([]string, g.Len())
	for c := range g.All() {
		id := VertexID(c)
		ids[g.Index(c)] = id
		if err := cg.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for c := range g.All() {
		from := ids[g.Index(c)]
		for _, n := range g.Neighbors(c, opts.Conn) {
			w := opts.Weight(n.Coord, n.Value)
			if w < 0 {
				return nil, fmt.Errorf("%w: %d at %v", ErrNegativeCost, w, n.Coord)
			}
			if _, err := cg.AddEdge(from, ids[g.Index(n.Coord)], w); err != nil {
				return nil, fmt.Errorf("gridgraph: edge %v→%v: %w", c, n.Coord, err)
			}
		}
	}

	return cg, nil
}
