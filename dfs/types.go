package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the source or target vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrUnboundedWalk indicates that the Enter policy keeps admitting
	// vertices, e.g. it lets two repeatable vertices bounce between each other.
	ErrUnboundedWalk = errors.New("dfs: walk exceeds length limit")
)

// DefaultWalkLimit caps walk length when no MaxDepth is set. The search
// recurses once per vertex on the walk, so a policy that never stops
// admitting vertices costs DefaultWalkLimit stack frames before
// ErrUnboundedWalk is returned. Set MaxDepth to bound walks more tightly.
const DefaultWalkLimit = 1 << 12

// Walk is the walk currently being extended. It is only valid inside the
// Enter callback and must not be retained.
type Walk struct {
	vertices []string
	visits   map[string]int
}

// Visits reports how many times id appears on the walk.
func (w *Walk) Visits(id string) int { return w.visits[id] }

// Vertices returns the walk in travel order. The slice is shared and must
// not be modified.
func (w *Walk) Vertices() []string { return w.vertices }

// Len returns the number of vertices on the walk.
func (w *Walk) Len() int { return len(w.vertices) }

// EnterFunc decides whether the walk may be extended to next.
type EnterFunc func(next string, w *Walk) bool

// SimplePaths is the default policy: every vertex at most once.
func SimplePaths(next string, w *Walk) bool {
	return w.Visits(next) == 0
}

// Option configures optional behavior of the enumeration.
type Option func(*Options)

// Options holds configurable parameters for Paths and CountPaths.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Enter decides which neighbors extend the walk. Defaults to SimplePaths.
	Enter EnterFunc

	// MaxDepth, if non-negative, limits walks to that many edges.
	// Default is -1 (limited by DefaultWalkLimit only).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, the SimplePaths
// policy and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Enter:    SimplePaths,
		MaxDepth: -1,
	}
}

// WithContext sets the Context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEnter installs fn as the revisit policy. Passing nil has no effect.
func WithEnter(fn EnterFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Enter = fn
		}
	}
}

// WithMaxDepth limits walks to limit edges.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
