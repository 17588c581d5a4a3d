package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/graph"
)

func buildSampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("sample")
	for _, id := range []string{"a", "b", "c"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	c0, err := g.AddChannel("calls")
	require.NoError(t, err)
	c1, err := g.AddChannel("trusts")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(c0, 0, 1, 2))
	require.NoError(t, g.AddEdge(c0, 1, 2, 1))
	require.NoError(t, g.AddEdge(c1, 2, 0, 3))
	return g
}

func TestStoreSaveLoadGraphRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	id, err := s.NewDataset("")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	g := buildSampleGraph(t)
	require.NoError(t, s.SaveGraph(id, "world", g))

	g2, err := s.LoadGraph(id, "world", "sample")
	require.NoError(t, err)
	require.Equal(t, g.Nodes(), g2.Nodes())
	require.ElementsMatch(t, g.Channels(), g2.Channels())

	for _, name := range g.Channels() {
		c1, _ := g.ChannelIndex(name)
		c2, _ := g2.ChannelIndex(name)
		m1, m2 := g.Channel(c1), g2.Channel(c2)
		for i := 0; i < g.NumNodes(); i++ {
			for j := 0; j < g.NumNodes(); j++ {
				require.Equal(t, m1.At(i, j), m2.At(i, j))
			}
		}
	}
}

func TestStoreSaveLoadMatrixRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	id, err := s.NewDataset("fixed-slug")
	require.NoError(t, err)
	require.Equal(t, "fixed-slug", id)

	m := candidate.NewFull(2, 3)
	m.Clear(0, 1)
	m.Clear(1, 0)
	m.Clear(1, 2)
	require.NoError(t, s.SaveMatrix(id, m))

	m2, err := s.LoadMatrix(id)
	require.NoError(t, err)
	require.Equal(t, m.NumTemplate(), m2.NumTemplate())
	require.Equal(t, m.NumWorld(), m2.NumWorld())
	for t0 := 0; t0 < m.NumTemplate(); t0++ {
		for w := 0; w < m.NumWorld(); w++ {
			require.Equal(t, m.Get(t0, w), m2.Get(t0, w))
		}
	}
}

func TestStoreLoadMatrixPreservesEmptyRow(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	id, err := s.NewDataset("")
	require.NoError(t, err)

	m := candidate.NewFull(1, 4)
	m.ClearAll(0)
	require.NoError(t, s.SaveMatrix(id, m))

	m2, err := s.LoadMatrix(id)
	require.NoError(t, err)
	require.True(t, m2.RowEmpty(0))
}

func TestStoreFreshDetectsMtimeDrift(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	id, err := s.NewDataset("")
	require.NoError(t, err)

	srcPath := filepath.Join(dir, "source.txt")
	require.NoError(t, os.WriteFile(srcPath, []byte("v1"), 0o644))

	fresh, err := s.Fresh(id, srcPath)
	require.NoError(t, err)
	require.False(t, fresh, "no manifest recorded yet")

	require.NoError(t, s.Touch(id, srcPath))
	fresh, err = s.Fresh(id, srcPath)
	require.NoError(t, err)
	require.True(t, fresh)

	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(srcPath, future, future))

	fresh, err = s.Fresh(id, srcPath)
	require.NoError(t, err)
	require.False(t, fresh, "mtime changed since Touch")
}

func TestStoreFreshRejectsSourceSetChange(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	id, err := s.NewDataset("")
	require.NoError(t, err)

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))
	require.NoError(t, s.Touch(id, a))

	fresh, err := s.Fresh(id, a, b)
	require.NoError(t, err)
	require.False(t, fresh)
}
