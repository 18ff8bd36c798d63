package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func TestQueueOrdering(t *testing.T) {
	q := New(intLess)
	for _, v := range []int{5, 3, 7, 1} {
		q.Insert(v)
	}
	var got []int
	for !q.Empty() {
		v, ok := q.PopMin()
		require.True(t, ok)
		got = append(got, v)
	}
	require.Equal(t, []int{1, 3, 5, 7}, got)
}

func TestQueueEraseArbitrary(t *testing.T) {
	q := New(intLess)
	q.Insert(1)
	mid := q.Insert(2)
	q.Insert(3)
	require.Equal(t, 3, q.Size())

	q.Erase(mid)
	require.Equal(t, 2, q.Size())
	require.False(t, mid.Valid())

	var got []int
	for !q.Empty() {
		v, _ := q.PopMin()
		got = append(got, v)
	}
	require.Equal(t, []int{1, 3}, got)
}

func TestQueueEraseIsIdempotent(t *testing.T) {
	q := New(intLess)
	h := q.Insert(1)
	q.Erase(h)
	require.NotPanics(t, func() { q.Erase(h) })
}

func TestHandlesSurviveOtherMutations(t *testing.T) {
	q := New(intLess)
	a := q.Insert(10)
	q.Insert(1)
	q.Insert(1)
	q.Insert(1)
	require.True(t, a.Valid())
	q.Erase(a)
	require.False(t, a.Valid())
	require.Equal(t, 3, q.Size())
}
