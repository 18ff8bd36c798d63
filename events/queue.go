// Package events implements a selective priority queue: a generic
// ordered multiset over container/heap supporting O(log n) removal of an
// arbitrary element, not just the minimum.
//
// The technique — an index field on each queued item, kept current by the
// heap's Swap and checked for a "removed" sentinel before trusting a held
// handle — is the same one katalvlaran-lvlath's dijkstra.go uses for its
// lazy-decrease-key heap, and the one the reference Go Voronoi port in the
// example pack leans on (its Event carries an `index` field, and `.Remove`
// is only valid while `index > -1`).
package events

import "container/heap"

const removedIndex = -1

type item[T any] struct {
	value T
	index int
}

// Handle is a stable reference to a previously inserted element. It
// remains valid (able to be passed to Erase) until that element is
// popped or erased, independent of any other insertion/erasure.
type Handle[T any] struct {
	it *item[T]
}

// Valid reports whether the handle still refers to an element that is
// present in the queue.
func (h Handle[T]) Valid() bool {
	return h.it != nil && h.it.index != removedIndex
}

// Queue is a min-priority queue (smallest element by less first) that also
// supports erasing an arbitrary, previously returned handle in O(log n).
type Queue[T any] struct {
	items []*item[T]
	less  func(a, b T) bool
}

// New builds an empty Queue ordered by less(a, b): less must report
// whether a sorts before b (min-heap ordering — the smaller x fires
// first, with ties broken by y; callers encode that tiebreak in less).
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{less: less}
}

// Len implements heap.Interface.
func (q *Queue[T]) Len() int { return len(q.items) }

// Less implements heap.Interface.
func (q *Queue[T]) Less(i, j int) bool { return q.less(q.items[i].value, q.items[j].value) }

// Swap implements heap.Interface.
func (q *Queue[T]) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// Push implements heap.Interface. Use Insert, not this, from outside the
// package.
func (q *Queue[T]) Push(x any) {
	it := x.(*item[T])
	it.index = len(q.items)
	q.items = append(q.items, it)
}

// Pop implements heap.Interface. Use PopMin, not this, from outside the
// package.
func (q *Queue[T]) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = removedIndex
	q.items = old[:n-1]
	return it
}

// Insert adds value to the queue and returns a handle that can later be
// passed to Erase, even after other insertions or erasures.
func (q *Queue[T]) Insert(value T) Handle[T] {
	it := &item[T]{value: value}
	heap.Push(q, it)
	return Handle[T]{it: it}
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return len(q.items) == 0 }

// Size returns the number of elements currently queued.
func (q *Queue[T]) Size() int { return len(q.items) }

// Top returns the smallest element without removing it.
func (q *Queue[T]) Top() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	return q.items[0].value, true
}

// PopMin removes and returns the smallest element.
func (q *Queue[T]) PopMin() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	it := heap.Pop(q).(*item[T])
	return it.value, true
}

// Erase removes the element referred to by h, if it is still present. It
// is a no-op (not an error) if the handle has already been erased or
// popped — the driver relies on this to unconditionally invalidate an
// arc's pending circle event without first checking whether it already
// fired.
func (q *Queue[T]) Erase(h Handle[T]) {
	if !h.Valid() {
		return
	}
	heap.Remove(q, h.it.index)
}
