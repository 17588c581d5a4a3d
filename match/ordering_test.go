package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/cs"
	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/match"
	"github.com/tnguyen-labs/submatch/partition"
)

// buildPathTemplate builds 0->1->2->3 (a connected, asymmetric path) so
// static and distance ordering have a non-trivial ranking to produce.
func buildPathTemplate(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("path")
	for _, id := range []string{"0", "1", "2", "3"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	ch, err := g.AddChannel("0")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(ch, 0, 1, 1))
	require.NoError(t, g.AddEdge(ch, 1, 2, 1))
	require.NoError(t, g.AddEdge(ch, 2, 3, 1))
	return g
}

func buildWorldForPath(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("w")
	for _, id := range []string{"0", "1", "2", "3", "4"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	ch, err := g.AddChannel("0")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(ch, 0, 1, 1))
	require.NoError(t, g.AddEdge(ch, 1, 2, 1))
	require.NoError(t, g.AddEdge(ch, 2, 3, 1))
	require.NoError(t, g.AddEdge(ch, 3, 4, 1))
	return g
}

func newCS(t *testing.T, tmpl, world *graph.Graph) *cs.CandidateStructure {
	t.Helper()
	part := partition.Structural(tmpl)
	return cs.New(tmpl, world, part)
}

func TestStaticOrderSortsByCandidateCountThenDegree(t *testing.T) {
	tmpl := buildPathTemplate(t)
	world := buildWorldForPath(t)
	c := newCS(t, tmpl, world)
	c.RunAllFilters()

	sts := c.Supernodes()
	o := match.New(tmpl, sts)
	order := o.StaticOrder(c)
	require.Len(t, order, len(sts))

	for i := 1; i < len(order); i++ {
		prev := c.M.RowPopcount(order[i-1].Root())
		cur := c.M.RowPopcount(order[i].Root())
		require.LessOrEqual(t, prev, cur)
	}
}

func TestNextSupernodeSkipsMatched(t *testing.T) {
	tmpl := buildPathTemplate(t)
	world := buildWorldForPath(t)
	c := newCS(t, tmpl, world)
	c.RunAllFilters()

	sts := c.Supernodes()
	o := match.New(tmpl, sts)
	pm := match.NewPartialMatch()

	first, ok := o.NextSupernode(c, pm)
	require.True(t, ok)

	pm.Push(first, c.GetCandidates(first).All()[0])
	second, ok := o.NextSupernode(c, pm)
	require.True(t, ok)
	require.NotEqual(t, first.Root(), second.Root())
}

func TestDistanceOrderStartsFromBestRatioRoot(t *testing.T) {
	tmpl := buildPathTemplate(t)
	world := buildWorldForPath(t)
	c := newCS(t, tmpl, world)
	c.RunAllFilters()

	sts := c.Supernodes()
	o := match.New(tmpl, sts)
	order := o.DistanceOrder(c)
	require.Len(t, order, len(sts))
}
