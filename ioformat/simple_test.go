package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/graph"
)

func TestReadGraphParsesNodesChannelsAndCounts(t *testing.T) {
	src := strings.Join([]string{
		"mygraph",
		"3",
		"2",
		"calls",
		"2",
		"0 1 2",
		"1 2 1",
		"trusts",
		"1",
		"0 2 3",
	}, "\n") + "\n"

	g, err := ReadGraph(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "mygraph", g.Name())
	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 2, g.NumChannels())

	callsIdx, ok := g.ChannelIndex("calls")
	require.True(t, ok)
	require.Equal(t, 2, g.Channel(callsIdx).At(0, 1))
	require.Equal(t, 1, g.Channel(callsIdx).At(1, 2))

	trustsIdx, ok := g.ChannelIndex("trusts")
	require.True(t, ok)
	require.Equal(t, 3, g.Channel(trustsIdx).At(0, 2))
}

func TestWriteGraphThenReadGraphRoundTrips(t *testing.T) {
	g := graph.NewGraph("roundtrip")
	for i := 0; i < 4; i++ {
		_, err := g.AddNode(string(rune('a' + i)))
		require.NoError(t, err)
	}
	c0, err := g.AddChannel("a")
	require.NoError(t, err)
	c1, err := g.AddChannel("b")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(c0, 0, 1, 2))
	require.NoError(t, g.AddEdge(c0, 1, 2, 5))
	require.NoError(t, g.AddEdge(c1, 3, 0, 1))

	var buf bytes.Buffer
	require.NoError(t, WriteGraph(&buf, g))

	g2, err := ReadGraph(&buf)
	require.NoError(t, err)
	require.Equal(t, g.NumNodes(), g2.NumNodes())
	require.Equal(t, g.NumChannels(), g2.NumChannels())
	for _, name := range g.Channels() {
		ci, ok := g.ChannelIndex(name)
		require.True(t, ok)
		cj, ok := g2.ChannelIndex(name)
		require.True(t, ok)
		m1, m2 := g.Channel(ci), g2.Channel(cj)
		for i := 0; i < g.NumNodes(); i++ {
			for j := 0; j < g.NumNodes(); j++ {
				require.Equal(t, m1.At(i, j), m2.At(i, j), "channel %s (%d,%d)", name, i, j)
			}
		}
	}
}

func TestReadGraphRejectsMalformedEdgeRecord(t *testing.T) {
	src := strings.Join([]string{
		"bad",
		"2",
		"1",
		"c",
		"1",
		"0 1",
	}, "\n") + "\n"
	_, err := ReadGraph(strings.NewReader(src))
	require.Error(t, err)
}
