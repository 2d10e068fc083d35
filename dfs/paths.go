package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
)

// Paths returns every walk from 'from' to 'to' admitted by the Enter policy,
// in the order the depth-first search finds them (neighbors by sorted ID).
// Each path starts with 'from' and ends with 'to'.
func Paths(g *core.Graph, from, to string, opts ...Option) ([][]string, error) {
	var out [][]string
	err := enumerate(g, from, to, opts, func(w *Walk) {
		out = append(out, append([]string(nil), w.vertices...))
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CountPaths returns the number of walks Paths would return without
// materializing them.
func CountPaths(g *core.Graph, from, to string, opts ...Option) (int, error) {
	n := 0
	err := enumerate(g, from, to, opts, func(*Walk) { n++ })
	if err != nil {
		return 0, err
	}

	return n, nil
}

// walker encapsulates state during enumeration.
type walker struct {
	graph *core.Graph
	opts  Options
	to    string
	limit int
	walk  Walk
	emit  func(*Walk)
	nbrs  map[string][]string
}

func enumerate(g *core.Graph, from, to string, opts []Option, emit func(*Walk)) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, to)
	}

	limit := DefaultWalkLimit
	if o.MaxDepth >= 0 {
		limit = o.MaxDepth
	}
	w := &walker{
		graph: g,
		opts:  o,
		to:    to,
		limit: limit,
		walk:  Walk{visits: make(map[string]int)},
		emit:  emit,
		nbrs:  make(map[string][]string),
	}
	w.push(from)

	return w.visit(from)
}

func (w *walker) visit(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if id == w.to && w.walk.Len() > 1 {
		w.emit(&w.walk)
		return nil
	}
	if w.walk.Len()-1 >= w.limit {
		if w.opts.MaxDepth < 0 {
			return fmt.Errorf("%w: %d vertices", ErrUnboundedWalk, w.walk.Len())
		}
		return nil
	}

	nbrs, err := w.neighbors(id)
	if err != nil {
		return err
	}
	for _, next := range nbrs {
		if !w.opts.Enter(next, &w.walk) {
			continue
		}
		w.push(next)
		err := w.visit(next)
		w.pop()
		if err != nil {
			return err
		}
	}

	return nil
}

// neighbors caches NeighborIDs; the graph is not expected to change during
// one enumeration.
func (w *walker) neighbors(id string) ([]string, error) {
	if ids, ok := w.nbrs[id]; ok {
		return ids, nil
	}
	ids, err := w.graph.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	w.nbrs[id] = ids

	return ids, nil
}

func (w *walker) push(id string) {
	w.walk.vertices = append(w.walk.vertices, id)
	w.walk.visits[id]++
}

func (w *walker) pop() {
	last := w.walk.vertices[len(w.walk.vertices)-1]
	w.walk.vertices = w.walk.vertices[:len(w.walk.vertices)-1]
	w.walk.visits[last]--
}
