package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/partition"
)

// buildTwoDisjointEdges mirrors scenario 1 of the acceptance suite: two
// disconnected, symmetric (bidirectional) edges on 4 distinct nodes. Each
// edge's two endpoints are structurally interchangeable; the two edges are
// not interchangeable with each other since no isomorphism here would mix
// their vertex labels pairwise under the strict per-index definition.
func buildTwoDisjointEdges(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("two-edges")
	for _, id := range []string{"0", "1", "2", "3"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	ch, err := g.AddChannel("0")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(ch, 0, 1, 1))
	require.NoError(t, g.AddEdge(ch, 1, 0, 1))
	require.NoError(t, g.AddEdge(ch, 2, 3, 1))
	require.NoError(t, g.AddEdge(ch, 3, 2, 1))
	return g
}

func TestDisjointEdgePairsAreEquivalentWithinPair(t *testing.T) {
	g := buildTwoDisjointEdges(t)
	p := partition.Structural(g)

	require.True(t, p.InSameClass(0, 1))
	require.True(t, p.InSameClass(2, 3))
	require.False(t, p.InSameClass(0, 2))
	require.False(t, p.InSameClass(1, 3))
}

// buildStar builds a centre symmetrically connected to three leaves; the
// leaves are true twins (identical neighbourhoods, no edges between them).
func buildStar(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("star")
	for _, id := range []string{"c", "0", "1", "2"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	ch, err := g.AddChannel("0")
	require.NoError(t, err)
	for _, leaf := range []int{1, 2, 3} {
		require.NoError(t, g.AddEdge(ch, 0, leaf, 1))
		require.NoError(t, g.AddEdge(ch, leaf, 0, 1))
	}
	return g
}

func TestStarLeavesAreTrueTwins(t *testing.T) {
	g := buildStar(t)
	p := partition.Structural(g)

	require.True(t, p.InSameClass(1, 2))
	require.True(t, p.InSameClass(2, 3))
	require.False(t, p.InSameClass(0, 1))
}

func TestSelfLoopBreaksEquivalence(t *testing.T) {
	g := graph.NewGraph("loop")
	_, _ = g.AddNode("a")
	_, _ = g.AddNode("b")
	ch, _ := g.AddChannel("0")
	require.NoError(t, g.AddEdge(ch, 0, 0, 1))

	p := partition.Structural(g)
	require.False(t, p.InSameClass(0, 1))
}
