package supernode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/supernode"
)

func TestNewCanonicalizesOrder(t *testing.T) {
	a := supernode.New(3, 1, 2)
	b := supernode.New(1, 2, 3)
	require.True(t, a.Equal(b))
	require.Equal(t, []int{1, 2, 3}, a.Vertices())
	require.Equal(t, 1, a.Root())
}

func TestSingletonFromOneIndex(t *testing.T) {
	s := supernode.New(7)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 7, s.Root())
}

func TestDisjoint(t *testing.T) {
	a := supernode.New(1, 2)
	b := supernode.New(2, 3)
	c := supernode.New(3, 4)
	require.False(t, a.Disjoint(b))
	require.True(t, a.Disjoint(c))
}

func TestTemplateNodeCliqueFromStructurallyEquivalentPair(t *testing.T) {
	g := graph.NewGraph("star")
	for _, id := range []string{"c", "0", "1"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	ch, _ := g.AddChannel("0")
	require.NoError(t, g.AddEdge(ch, 1, 2, 1)) // leaf 0 <-> leaf 1 direct edge for this test
	require.NoError(t, g.AddEdge(ch, 2, 1, 1))

	tn := supernode.NewTemplateNode([]int{1, 2}, g)
	require.Equal(t, []int{1, 2}, tn.Vertices())
	require.Equal(t, []int{1}, tn.Clique)
}

func TestTemplateNodeSingletonHasZeroClique(t *testing.T) {
	g := graph.NewGraph("g")
	_, _ = g.AddNode("a")
	_, _ = g.AddChannel("0")

	tn := supernode.NewTemplateNode([]int{0}, g)
	require.Equal(t, []int{0}, tn.Clique)
}
