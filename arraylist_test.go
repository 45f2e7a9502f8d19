package container_test

import (
	"slices"
	"testing"

	"deedles.dev/container"
	"github.com/stretchr/testify/require"
)

func TestArrayListGrowth(t *testing.T) {
	var ls container.ArrayList[int]
	require.Equal(t, 16, ls.Cap())

	for i := range 100 {
		require.NoError(t, ls.Insert(i, i))
	}
	require.Equal(t, 100, ls.Len())
	require.Equal(t, 128, ls.Cap())

	for i := range 100 {
		v, err := ls.Get(i)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestArrayListGrowthOnInsertFront(t *testing.T) {
	var ls container.ArrayList[int]
	for i := range 40 {
		require.NoError(t, ls.Insert(i, 0))
	}

	want := make([]int, 40)
	for i := range want {
		want[i] = 39 - i
	}
	require.Equal(t, want, slices.Collect(ls.All()))
}

func TestArrayListClearResetsCapacity(t *testing.T) {
	var ls container.ArrayList[int]
	for i := range 50 {
		require.NoError(t, ls.Insert(i, i))
	}
	require.Greater(t, ls.Cap(), 16)

	require.NoError(t, ls.Clear())
	require.Equal(t, 16, ls.Cap())
	require.Equal(t, 0, ls.Len())
}

func TestArrayListRemoveShifts(t *testing.T) {
	var ls container.ArrayList[string]
	for i, s := range []string{"a", "b", "c"} {
		require.NoError(t, ls.Insert(s, i))
	}

	require.NoError(t, ls.Remove(1))

	v, err := ls.Get(0)
	require.NoError(t, err)
	require.Equal(t, "a", v)
	v, err = ls.Get(1)
	require.NoError(t, err)
	require.Equal(t, "c", v)
	require.Equal(t, 2, ls.Len())
}

func TestArrayListIteratorInsertDuringGrowth(t *testing.T) {
	var ls container.ArrayList[int]
	for i := range 14 {
		require.NoError(t, ls.Insert(i, i))
	}

	// Push the list across its first growth boundary from inside an
	// iteration.
	it := ls.Iter()
	_, err := it.Next()
	require.NoError(t, err)
	it.Insert(-1)
	it.Insert(-2)
	it.Insert(-3)

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 17, ls.Len())
	require.Equal(t, 32, ls.Cap())
}

func BenchmarkArrayListAppend(b *testing.B) {
	var ls container.ArrayList[int]
	for i := range b.N {
		_ = ls.Insert(i, ls.Len())
	}
}

func BenchmarkArrayListGet(b *testing.B) {
	var ls container.ArrayList[int]
	for i := range 1024 {
		_ = ls.Insert(i, i)
	}
	b.ResetTimer()

	for i := range b.N {
		_, _ = ls.Get(i % 1024)
	}
}
