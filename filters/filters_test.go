package filters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/filters"
	"github.com/tnguyen-labs/submatch/graph"
)

func addNodes(t *testing.T, g *graph.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
}

// TestStatisticsMultiChannelDominanceFails mirrors scenario 3 of the
// acceptance suite: T has a->b in channels "0" and "1"; W has a->b only in
// channel "0". The statistics filter must already eliminate every
// candidate, leaving M unsatisfiable.
func TestStatisticsMultiChannelDominanceFails(t *testing.T) {
	tmpl := graph.NewGraph("t")
	addNodes(t, tmpl, "a", "b")
	c0, _ := tmpl.AddChannel("0")
	c1, _ := tmpl.AddChannel("1")
	require.NoError(t, tmpl.AddEdge(c0, 0, 1, 1))
	require.NoError(t, tmpl.AddEdge(c1, 0, 1, 1))

	world := graph.NewGraph("w")
	addNodes(t, world, "x", "y")
	wc0, _ := world.AddChannel("0")
	_, _ = world.AddChannel("1")
	require.NoError(t, world.AddEdge(wc0, 0, 1, 1))

	m := candidate.NewFull(2, 2)
	unsat := filters.Run(tmpl, world, m, filters.All())
	require.True(t, unsat)
}

// TestStatisticsSelfLoopFilter mirrors scenario 4: T is a single self-loop
// node; W has k self-loop nodes among others. Filtering must reduce
// candidates to exactly those k nodes.
func TestStatisticsSelfLoopFilter(t *testing.T) {
	tmpl := graph.NewGraph("t")
	addNodes(t, tmpl, "a")
	tc, _ := tmpl.AddChannel("0")
	require.NoError(t, tmpl.AddEdge(tc, 0, 0, 1))

	world := graph.NewGraph("w")
	addNodes(t, world, "0", "1", "2", "3")
	wc, _ := world.AddChannel("0")
	require.NoError(t, world.AddEdge(wc, 0, 0, 1))
	require.NoError(t, world.AddEdge(wc, 2, 2, 1))

	m := candidate.NewFull(1, 4)
	unsat := filters.Run(tmpl, world, m, filters.All())
	require.False(t, unsat)
	require.Equal(t, []int{0, 2}, m.CandidatesOf(0))
}

func TestEliminationKeepsEdgesOfPerfectMatchings(t *testing.T) {
	// Two template nodes a,b, each a candidate of both world nodes x,y:
	// elimination must not spuriously remove an edge that some perfect
	// matching uses.
	tmpl := graph.NewGraph("t")
	addNodes(t, tmpl, "a", "b")
	_, _ = tmpl.AddChannel("0")

	world := graph.NewGraph("w")
	addNodes(t, world, "x", "y")
	_, _ = world.AddChannel("0")

	m := candidate.NewFull(2, 2) // a,b each candidate for both x,y
	elim := filters.Elimination{}
	elim.Apply(tmpl, world, m)
	// A perfect matching exists (a-x,b-y or a-y,b-x): every edge lies on
	// some maximum matching, so nothing should be pruned.
	require.Equal(t, []int{0, 1}, m.CandidatesOf(0))
	require.Equal(t, []int{0, 1}, m.CandidatesOf(1))
}
