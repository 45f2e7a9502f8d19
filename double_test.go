package container_test

import (
	"slices"
	"testing"

	"deedles.dev/container"
	"github.com/stretchr/testify/require"
)

func TestDoubleListEnds(t *testing.T) {
	var ls container.DoubleList[string]

	ls.InsertFirst("b")
	ls.InsertLast("c")
	ls.InsertFirst("a")
	ls.InsertLast("d")
	require.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(ls.All()))

	require.NoError(t, ls.RemoveFirst())
	require.NoError(t, ls.RemoveLast())
	require.Equal(t, []string{"b", "c"}, slices.Collect(ls.All()))
}

func TestDoubleListSingleElement(t *testing.T) {
	var ls container.DoubleList[int]

	// Removing the sole element has to null both ends, whichever end
	// the removal comes from.
	ls.InsertFirst(1)
	require.NoError(t, ls.RemoveFirst())
	require.True(t, ls.IsEmpty())
	require.ErrorIs(t, ls.RemoveLast(), container.ErrEmpty)

	ls.InsertLast(2)
	require.NoError(t, ls.RemoveLast())
	require.True(t, ls.IsEmpty())
	require.ErrorIs(t, ls.RemoveFirst(), container.ErrEmpty)

	ls.InsertFirst(3)
	require.Equal(t, []int{3}, slices.Collect(ls.All()))
}

func TestDoubleListDirectionTransparency(t *testing.T) {
	var ls container.DoubleList[int]
	for i := range 11 {
		ls.InsertLast(i)
	}

	// Indices on both sides of the midpoint read the same values
	// regardless of which end the walk starts from.
	for i := range 11 {
		v, err := ls.Get(i)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}

	require.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, slices.Collect(ls.Backward()))
}

func TestDoubleListIteratorAppend(t *testing.T) {
	var ls container.DoubleList[string]
	ls.InsertFirst("a")

	it := ls.Iter()
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "a", v)

	// No next element, so the insert appends.
	it.Insert("b")
	require.Equal(t, []string{"a", "b"}, slices.Collect(ls.All()))
}

func TestDoubleListIteratorSplice(t *testing.T) {
	var ls container.DoubleList[int]
	for i := range 5 {
		ls.InsertLast(i)
	}

	it := ls.Iter()
	for range 3 {
		_, err := it.Next()
		require.NoError(t, err)
	}

	// Remove the middle node and splice a replacement in before the
	// look-ahead, then make sure both directions still see a
	// consistent chain.
	require.NoError(t, it.Remove())
	it.Insert(20)

	require.Equal(t, []int{0, 1, 20, 3, 4}, slices.Collect(ls.All()))
	require.Equal(t, []int{4, 3, 20, 1, 0}, slices.Collect(ls.Backward()))

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestDoubleListIteratorRemoveLast(t *testing.T) {
	var ls container.DoubleList[int]
	ls.InsertLast(1)
	ls.InsertLast(2)

	it := ls.Iter()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}
	require.NoError(t, it.Remove())

	require.Equal(t, []int{1}, slices.Collect(ls.All()))
	require.Equal(t, []int{1}, slices.Collect(ls.Backward()))
}

func BenchmarkDoubleListIterate(b *testing.B) {
	var ls container.DoubleList[int]
	for i := range 1024 {
		ls.InsertLast(i)
	}
	b.ResetTimer()

	for range b.N {
		for range ls.All() {
		}
	}
}
