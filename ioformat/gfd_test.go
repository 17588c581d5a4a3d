package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadGFDParsesVerticesAndLabelledEdges(t *testing.T) {
	src := strings.Join([]string{
		"t # 0",
		"v 0 person",
		"v 1 person",
		"v 2 company",
		"e 0 1 knows",
		"e 0 2 works_at",
	}, "\n") + "\n"

	g, err := ReadGFD(strings.NewReader(src), "gfd-graph")
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 2, g.NumChannels())

	knows, ok := g.ChannelIndex("knows")
	require.True(t, ok)
	require.Equal(t, 1, g.Channel(knows).At(0, 1))

	worksAt, ok := g.ChannelIndex("works_at")
	require.True(t, ok)
	require.Equal(t, 1, g.Channel(worksAt).At(0, 2))
}

func TestReadGFDRejectsEdgeToUnknownVertex(t *testing.T) {
	src := strings.Join([]string{
		"v 0 person",
		"e 0 9 knows",
	}, "\n") + "\n"
	_, err := ReadGFD(strings.NewReader(src), "g")
	require.Error(t, err)
}

func TestReadGFDRejectsUnrecognisedLine(t *testing.T) {
	src := "x garbage\n"
	_, err := ReadGFD(strings.NewReader(src), "g")
	require.Error(t, err)
}
