package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/equivalence"
)

func TestNewFullAllSet(t *testing.T) {
	m := candidate.NewFull(2, 5)
	for tpl := 0; tpl < 2; tpl++ {
		require.Equal(t, 5, m.RowPopcount(tpl))
		require.False(t, m.RowEmpty(tpl))
	}
}

func TestClearAndRowEmpty(t *testing.T) {
	m := candidate.NewFull(1, 3)
	m.Clear(0, 0)
	m.Clear(0, 1)
	m.Clear(0, 2)
	require.True(t, m.RowEmpty(0))
}

func TestSyncClassRowsEnforcesM1(t *testing.T) {
	m := candidate.NewFull(3, 4)
	m.Clear(0, 2)
	m.Clear(0, 3)

	p := equivalence.New(3)
	p.Union(0, 1)

	require.False(t, m.CheckRowClassConsistency(p))
	m.SyncClassRows(p)
	require.True(t, m.CheckRowClassConsistency(p))
	require.Equal(t, 2, m.RowPopcount(1))
}

func TestCheckHallPrerequisite(t *testing.T) {
	m := candidate.NewFull(2, 2)
	p := equivalence.New(2)
	p.Union(0, 1)
	require.True(t, m.CheckHallPrerequisite(p))

	m.Clear(0, 0)
	m.SyncClassRows(p)
	require.False(t, m.CheckHallPrerequisite(p))
}

func TestCloneIsolation(t *testing.T) {
	m := candidate.NewFull(1, 3)
	clone := m.Clone()
	clone.Clear(0, 0)

	require.True(t, m.Get(0, 0))
	require.False(t, clone.Get(0, 0))
}

func TestCandidatesOf(t *testing.T) {
	m := candidate.NewFull(1, 4)
	m.Clear(0, 1)
	m.Clear(0, 3)
	require.Equal(t, []int{0, 2}, m.CandidatesOf(0))
}
