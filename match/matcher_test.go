package match_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/cs"
	"github.com/tnguyen-labs/submatch/match"
	"github.com/tnguyen-labs/submatch/partition"
)

func TestMatcherParallelFanOutMatchesSequentialCount(t *testing.T) {
	tmpl := buildTwoDisjointEdges(t)
	world := buildK4(t)

	part := partition.Structural(tmpl)
	seq := cs.New(tmpl, world, part)
	seq.RunAllFilters()
	oSeq := match.New(tmpl, seq.Supernodes())
	seqTree := match.NewMatcher(oSeq, match.Caps{}).Run(context.Background(), seq)

	par := cs.New(tmpl, world, part)
	par.RunAllFilters()
	oPar := match.New(tmpl, par.Supernodes())
	parTree := match.NewMatcher(oPar, match.Caps{MaxWorkers: 4}).Run(context.Background(), par)

	require.Equal(t, seqTree.Count(), parTree.Count())
}

func TestMatcherMaxMatchesHaltsAfterNEvents(t *testing.T) {
	tmpl := buildDirectedTriangle(t)
	world := buildDirectedTriangle(t)

	part := partition.Structural(tmpl)
	c := cs.New(tmpl, world, part)
	c.RunAllFilters()
	o := match.New(tmpl, c.Supernodes())
	m := match.NewMatcher(o, match.Caps{MaxMatches: 1})
	tree := m.Run(context.Background(), c)

	require.LessOrEqual(t, tree.Events(), int64(1))
}

func TestMatcherStopIsCooperative(t *testing.T) {
	tmpl := buildDirectedTriangle(t)
	world := buildDirectedTriangle(t)

	part := partition.Structural(tmpl)
	c := cs.New(tmpl, world, part)
	c.RunAllFilters()
	o := match.New(tmpl, c.Supernodes())
	m := match.NewMatcher(o, match.Caps{})
	m.Stop()
	tree := m.Run(context.Background(), c)

	require.Equal(t, big.NewInt(0), tree.Count())
	require.True(t, tree.Partial())
}
