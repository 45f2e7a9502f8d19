package container

import (
	"errors"
	"iter"
)

// BoundedQueue is a fixed-capacity FIFO backed by a circular buffer.
// Enqueue and Dequeue are O(1) and never allocate after the buffer
// exists.
//
// The queue keeps one sentinel slot unused so that full and empty
// states stay distinguishable: a BoundedQueue constructed with
// capacity c accepts at most c-1 elements before Enqueue reports
// [ErrCapacity].
//
// A zero value BoundedQueue is ready to use and has the default
// capacity. A BoundedQueue must not be copied after first use.
type BoundedQueue[T any] struct {
	_ noCopy

	buf   []T
	front int
	back  int
	size  int
}

// NewBoundedQueue returns an empty queue with the given capacity, of
// which capacity-1 slots are usable.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	return &BoundedQueue[T]{buf: make([]T, capacity)}
}

func (q *BoundedQueue[T]) init() {
	if q.buf == nil {
		q.buf = make([]T, defaultCap)
	}
}

// Enqueue inserts v at the back of the queue, returning
// [ErrCapacity] if the queue is at its usable capacity.
func (q *BoundedQueue[T]) Enqueue(v T) error {
	q.init()
	if q.size+1 >= len(q.buf) {
		return ErrCapacity
	}

	q.buf[q.back] = v
	q.back = (q.back + 1) % len(q.buf)
	q.size++
	return nil
}

// Dequeue removes and returns the element at the front of the queue,
// returning [ErrEmpty] if the queue is empty.
func (q *BoundedQueue[T]) Dequeue() (v T, err error) {
	if q.size == 0 {
		return v, ErrEmpty
	}

	v = q.buf[q.front]
	var zero T
	q.buf[q.front] = zero
	q.front = (q.front + 1) % len(q.buf)
	q.size--
	return v, nil
}

// Front returns the element at the front of the queue without
// removing it, returning [ErrEmpty] if the queue is empty.
func (q *BoundedQueue[T]) Front() (v T, err error) {
	if q.size == 0 {
		return v, ErrEmpty
	}
	return q.buf[q.front], nil
}

// Len returns the number of elements in the queue.
func (q *BoundedQueue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue has no elements.
func (q *BoundedQueue[T]) IsEmpty() bool { return q.size == 0 }

// Cap returns the constructed capacity of the queue, one more than
// the number of elements it accepts.
func (q *BoundedQueue[T]) Cap() int {
	if q.buf == nil {
		return defaultCap
	}
	return len(q.buf)
}

// All returns an iterator over the elements of the queue in dequeue
// order. The queue must not be mutated during the iteration.
func (q *BoundedQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range q.size {
			if !yield(q.buf[(q.front+i)%len(q.buf)]) {
				return
			}
		}
	}
}

// Queue is a FIFO with no fixed capacity. It delegates to a
// [BoundedQueue] and, when that queue overflows, drains it into one
// of twice the capacity and retries, so Enqueue is amortized O(1) and
// never fails.
//
// A zero value Queue is ready to use. A Queue must not be copied
// after first use.
type Queue[T any] struct {
	_ noCopy

	q *BoundedQueue[T]
}

func (q *Queue[T]) init() {
	if q.q == nil {
		q.q = NewBoundedQueue[T](defaultCap)
	}
}

// Enqueue inserts v at the back of the queue, growing the backing
// queue if it is full.
func (q *Queue[T]) Enqueue(v T) {
	q.init()
	err := q.q.Enqueue(v)
	if errors.Is(err, ErrCapacity) {
		q.grow()
		// The grown queue has room for at least one more element.
		_ = q.q.Enqueue(v)
	}
}

// grow drains the backing queue into a new one of twice the capacity,
// preserving FIFO order.
func (q *Queue[T]) grow() {
	grown := NewBoundedQueue[T](2 * q.q.Cap())
	for {
		v, err := q.q.Dequeue()
		if err != nil {
			break
		}
		_ = grown.Enqueue(v)
	}
	q.q = grown
}

// Dequeue removes and returns the element at the front of the queue,
// returning [ErrEmpty] if the queue is empty.
func (q *Queue[T]) Dequeue() (v T, err error) {
	if q.q == nil {
		return v, ErrEmpty
	}
	return q.q.Dequeue()
}

// Front returns the element at the front of the queue without
// removing it, returning [ErrEmpty] if the queue is empty.
func (q *Queue[T]) Front() (v T, err error) {
	if q.q == nil {
		return v, ErrEmpty
	}
	return q.q.Front()
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	if q.q == nil {
		return 0
	}
	return q.q.Len()
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// Cap returns the constructed capacity of the backing queue.
func (q *Queue[T]) Cap() int {
	if q.q == nil {
		return defaultCap
	}
	return q.q.Cap()
}

// All returns an iterator over the elements of the queue in dequeue
// order. The queue must not be mutated during the iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.q == nil {
			return
		}
		for v := range q.q.All() {
			if !yield(v) {
				return
			}
		}
	}
}
