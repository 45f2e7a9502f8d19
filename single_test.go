package container_test

import (
	"slices"
	"testing"

	"deedles.dev/container"
	"github.com/stretchr/testify/require"
)

func TestSingleListFirst(t *testing.T) {
	var ls container.SingleList[string]

	ls.InsertFirst("c")
	ls.InsertFirst("b")
	ls.InsertFirst("a")
	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(ls.All()))

	require.NoError(t, ls.RemoveFirst())
	require.Equal(t, []string{"b", "c"}, slices.Collect(ls.All()))

	require.NoError(t, ls.RemoveFirst())
	require.NoError(t, ls.RemoveFirst())
	require.True(t, ls.IsEmpty())
	require.ErrorIs(t, ls.RemoveFirst(), container.ErrEmpty)
}

func TestSingleListRemoveUnlinks(t *testing.T) {
	var ls container.SingleList[int]
	for i := range 5 {
		require.NoError(t, ls.Insert(i, i))
	}

	require.NoError(t, ls.Remove(2))
	require.NoError(t, ls.Remove(2))
	require.Equal(t, []int{0, 1, 4}, slices.Collect(ls.All()))
	require.Equal(t, 3, ls.Len())
}

func TestSingleListIteratorAlternate(t *testing.T) {
	var ls container.SingleList[int]
	for i := range 4 {
		require.NoError(t, ls.Insert(i, i))
	}

	// Interleave removals and inserts to force the cursor to re-link
	// around freshly spliced nodes.
	it := ls.Iter()

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.NoError(t, it.Remove())

	it.Insert(10)

	v, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.NoError(t, it.Set(11))

	require.Equal(t, []int{10, 11, 2, 3}, slices.Collect(ls.All()))
}

func BenchmarkSingleListInsertFirst(b *testing.B) {
	var ls container.SingleList[int]
	for i := range b.N {
		ls.InsertFirst(i)
	}
}
