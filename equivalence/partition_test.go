package equivalence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnguyen-labs/submatch/equivalence"
)

func TestSingletonsByDefault(t *testing.T) {
	p := equivalence.New(5)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, p.RootOf(i))
	}
	require.True(t, p.IsTrivial())
}

func TestUnionMergesAndRootIsMin(t *testing.T) {
	p := equivalence.New(5)
	p.Union(3, 1)
	p.Union(1, 4)

	require.True(t, p.InSameClass(3, 4))
	require.Equal(t, 1, p.RootOf(3))
	require.Equal(t, 1, p.RootOf(4))
	require.Equal(t, 1, p.RootOf(1))
	require.False(t, p.InSameClass(0, 1))
	require.False(t, p.IsTrivial())
}

func TestClassesOrderedByRoot(t *testing.T) {
	p := equivalence.New(6)
	p.Union(5, 2)
	p.Union(0, 3)

	classes := p.Classes()
	require.Len(t, classes, 4)
	require.Equal(t, []int{0, 3}, classes[0])
	require.Equal(t, []int{1}, classes[1])
	require.Equal(t, []int{2, 5}, classes[2])
	require.Equal(t, []int{4}, classes[3])
}

func TestPartitionByRefines(t *testing.T) {
	p := equivalence.New(4)
	p.Union(0, 1)
	p.Union(2, 3)

	// Refine: 0 and 1 differ on key, so they must split; 2 and 3 agree.
	refined := p.PartitionBy(func(i int) interface{} {
		if i == 0 {
			return "x"
		}
		return "y"
	})

	require.False(t, refined.InSameClass(0, 1))
	require.True(t, refined.InSameClass(2, 3))
}
