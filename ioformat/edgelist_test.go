package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadEdgelistCountsDuplicatesAsMultiplicity(t *testing.T) {
	src := strings.Join([]string{
		"a,b",
		"b,c",
		"a,b",
	}, "\n") + "\n"

	g, err := ReadEdgelist(strings.NewReader(src), "el", EdgelistOptions{Channel: "edge"})
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 1, g.NumChannels())

	c, ok := g.ChannelIndex("edge")
	require.True(t, ok)
	m := g.Channel(c)
	require.Equal(t, 2, m.At(0, 1))
	require.Equal(t, 1, m.At(1, 2))
}

func TestReadEdgelistHasChannelColumn(t *testing.T) {
	src := strings.Join([]string{
		"a,b,calls",
		"a,b,trusts",
	}, "\n") + "\n"

	g, err := ReadEdgelist(strings.NewReader(src), "el", EdgelistOptions{HasChannel: true})
	require.NoError(t, err)
	require.Equal(t, 2, g.NumChannels())
	calls, ok := g.ChannelIndex("calls")
	require.True(t, ok)
	require.Equal(t, 1, g.Channel(calls).At(0, 1))
}

func TestReadEdgelistSkipLinesAndCustomDelimiter(t *testing.T) {
	src := strings.Join([]string{
		"# header",
		"a;b",
		"b;c",
	}, "\n") + "\n"

	g, err := ReadEdgelist(strings.NewReader(src), "el", EdgelistOptions{
		Delimiter: ';',
		SkipLines: 1,
		Channel:   "e",
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())
}

func TestReadEdgelistRepairCanDropRecords(t *testing.T) {
	src := strings.Join([]string{
		"a,b",
		"a,a",
	}, "\n") + "\n"

	drop := func(src, dst, channel string) (string, string, string, bool) {
		if src == dst {
			return src, dst, channel, false
		}
		return src, dst, channel, true
	}
	g, err := ReadEdgelist(strings.NewReader(src), "el", EdgelistOptions{Channel: "e", Repair: drop})
	require.NoError(t, err)
	require.Equal(t, 2, g.NumNodes())
}

func TestReadEdgelistRejectsTooFewFields(t *testing.T) {
	_, err := ReadEdgelist(strings.NewReader("onlyone\n"), "el", EdgelistOptions{Channel: "e"})
	require.Error(t, err)
}
