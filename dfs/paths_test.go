package dfs_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dfs"
)

// buildGraph creates an undirected graph from "a-b" links.
func buildGraph(t *testing.T, links ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range links {
		a, b, ok := strings.Cut(l, "-")
		require.True(t, ok, "bad link %q", l)
		_, err := g.AddEdge(a, b, 0)
		require.NoError(t, err)
	}

	return g
}

func TestPaths_NilGraph(t *testing.T) {
	res, err := dfs.Paths(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestPaths_VertexNotFound(t *testing.T) {
	g := buildGraph(t, "A-B")
	_, err := dfs.Paths(g, "X", "B")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	_, err = dfs.CountPaths(g, "A", "Y")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestPaths_SimpleDiamond(t *testing.T) {
	// A-B-D and A-C-D, plus B-C
	g := buildGraph(t, "A-B", "A-C", "B-D", "C-D", "B-C")

	paths, err := dfs.Paths(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "D"},
		{"A", "C", "B", "D"},
		{"A", "C", "D"},
	}, paths)

	n, err := dfs.CountPaths(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, len(paths), n)
}

func TestPaths_TargetIsTerminal(t *testing.T) {
	// the only way to E passes D; walks must stop at D, not continue to E and back
	g := buildGraph(t, "A-D", "D-E")
	paths, err := dfs.Paths(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "D"}}, paths)
}

func TestPaths_CustomEnterAllowsRevisit(t *testing.T) {
	// Upper-case vertices may be revisited; lower-case at most once.
	g := buildGraph(t, "s-A", "A-b", "A-e")
	enter := func(next string, w *dfs.Walk) bool {
		return strings.ToUpper(next) == next || w.Visits(next) == 0
	}

	paths, err := dfs.Paths(g, "s", "e", dfs.WithEnter(enter))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"s", "A", "b", "A", "e"},
		{"s", "A", "e"},
	}, paths)
}

func TestPaths_MaxDepth(t *testing.T) {
	g := buildGraph(t, "A-B", "A-C", "B-D", "C-D", "B-C")
	paths, err := dfs.Paths(g, "A", "D", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, paths)
}

func TestPaths_UnboundedPolicy(t *testing.T) {
	g := buildGraph(t, "s-A", "A-B", "B-e")
	always := func(string, *dfs.Walk) bool { return true }
	_, err := dfs.CountPaths(g, "s", "e", dfs.WithEnter(always))
	require.ErrorIs(t, err, dfs.ErrUnboundedWalk)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d vertices", dfs.DefaultWalkLimit+1))
}

func TestPaths_UnboundedPolicyWithMaxDepth(t *testing.T) {
	g := buildGraph(t, "s-A", "A-B", "B-e")
	always := func(string, *dfs.Walk) bool { return true }
	n, err := dfs.CountPaths(g, "s", "e", dfs.WithEnter(always), dfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPaths_Canceled(t *testing.T) {
	g := buildGraph(t, "A-B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Paths(g, "A", "B", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
