package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/match"
	"github.com/tnguyen-labs/submatch/supernode"
)

func tinyTemplate(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("tiny")
	for _, id := range []string{"0", "1", "2", "3"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	_, err := g.AddChannel("0")
	require.NoError(t, err)
	return g
}

func TestPartialMatchPushPopAndDisjoint(t *testing.T) {
	g := tinyTemplate(t)
	pm := match.NewPartialMatch()
	require.Equal(t, 0, pm.Len())

	st1 := supernode.NewTemplateNode([]int{0}, g)
	sw1 := supernode.New(10)
	pm.Push(st1, sw1)
	require.Equal(t, 1, pm.Len())
	require.False(t, pm.Disjoint(supernode.New(10)))
	require.True(t, pm.Disjoint(supernode.New(11)))

	last, ok := pm.LastMatch()
	require.True(t, ok)
	require.True(t, last.World.Equal(sw1))

	pm.Pop()
	require.Equal(t, 0, pm.Len())
	require.True(t, pm.Disjoint(supernode.New(10)))
	_, ok = pm.LastMatch()
	require.False(t, ok)
}

func TestPartialMatchCloneIsolation(t *testing.T) {
	g := tinyTemplate(t)
	pm := match.NewPartialMatch()
	st1 := supernode.NewTemplateNode([]int{0}, g)
	pm.Push(st1, supernode.New(5))

	clone := pm.Clone()
	clone.Push(supernode.NewTemplateNode([]int{1}, g), supernode.New(6))

	require.Equal(t, 1, pm.Len())
	require.Equal(t, 2, clone.Len())
	require.True(t, pm.Disjoint(supernode.New(6)))
	require.False(t, clone.Disjoint(supernode.New(6)))
}

func TestPartialMatchIsMatchedAndWorldOf(t *testing.T) {
	g := tinyTemplate(t)
	pm := match.NewPartialMatch()
	st := supernode.NewTemplateNode([]int{3}, g)
	require.False(t, pm.IsMatched(3))
	pm.Push(st, supernode.New(9))
	require.True(t, pm.IsMatched(3))
	w, ok := pm.WorldOf(3)
	require.True(t, ok)
	require.Equal(t, []int{9}, w.Vertices())
}
