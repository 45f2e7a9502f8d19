package container

import "iter"

// ArrayList is a [List] backed by a contiguous growable buffer.
// Indexed reads and writes are O(1), appends are amortized O(1), and
// arbitrary inserts and removals are O(n) because of the shift.
//
// A zero value ArrayList is ready to use. The buffer starts at a
// fixed default capacity and doubles whenever an insert would fill
// it; it never shrinks except through [ArrayList.Clear], which resets
// it to the default capacity. An ArrayList must not be copied after
// first use.
type ArrayList[T any] struct {
	_ noCopy

	buf  []T
	size int
}

var _ List[int] = (*ArrayList[int])(nil)

// Insert inserts v at index, shifting the elements at or after index
// one slot toward the tail. index must be in [0, Len()], where Len()
// means append.
func (a *ArrayList[T]) Insert(v T, index int) error {
	if index < 0 || index > a.size {
		return ErrIndexOutOfRange
	}

	a.insertAt(v, index)
	return nil
}

func (a *ArrayList[T]) insertAt(v T, index int) {
	if a.buf == nil {
		a.buf = make([]T, defaultCap)
	}
	if a.size+1 >= len(a.buf) {
		a.grow()
	}

	copy(a.buf[index+1:a.size+1], a.buf[index:a.size])
	a.buf[index] = v
	a.size++
}

// grow reallocates the buffer at twice the current capacity.
func (a *ArrayList[T]) grow() {
	buf := make([]T, 2*len(a.buf))
	copy(buf, a.buf[:a.size])
	a.buf = buf
}

// Set replaces the element at index with v. index must be in
// [0, Len()).
func (a *ArrayList[T]) Set(v T, index int) error {
	if err := a.check(index); err != nil {
		return err
	}

	a.buf[index] = v
	return nil
}

// Get returns the element at index. index must be in [0, Len()).
func (a *ArrayList[T]) Get(index int) (v T, err error) {
	if err := a.check(index); err != nil {
		return v, err
	}
	return a.buf[index], nil
}

// Remove removes the element at index, shifting the elements after
// index one slot toward the head. index must be in [0, Len()).
func (a *ArrayList[T]) Remove(index int) error {
	if err := a.check(index); err != nil {
		return err
	}

	a.removeAt(index)
	return nil
}

func (a *ArrayList[T]) removeAt(index int) {
	var zero T
	copy(a.buf[index:a.size-1], a.buf[index+1:a.size])
	a.size--
	a.buf[a.size] = zero
}

// check validates index for the read-range operations, reporting
// emptiness before an out-of-range index.
func (a *ArrayList[T]) check(index int) error {
	if a.size == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= a.size {
		return ErrIndexOutOfRange
	}
	return nil
}

// Clear removes every element and resets the buffer to the default
// capacity. It returns [ErrEmpty] if the list is already empty.
func (a *ArrayList[T]) Clear() error {
	if a.size == 0 {
		return ErrEmpty
	}

	a.buf = make([]T, defaultCap)
	a.size = 0
	return nil
}

// Len returns the number of elements in the list.
func (a *ArrayList[T]) Len() int { return a.size }

// IsEmpty reports whether the list has no elements.
func (a *ArrayList[T]) IsEmpty() bool { return a.size == 0 }

// Cap returns the current capacity of the backing buffer.
func (a *ArrayList[T]) Cap() int {
	if a.buf == nil {
		return defaultCap
	}
	return len(a.buf)
}

// Iter returns a new iterator positioned before the first element.
func (a *ArrayList[T]) Iter() Iterator[T] {
	return &arrayIter[T]{list: a}
}

// All returns an iterator over the elements of the list in order.
func (a *ArrayList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.size {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// arrayIter is a cursor over an [ArrayList]. It tracks the index of
// the element Next will return and delegates structural mutation to
// the list's own shifting operations, so Insert and Remove cost O(n).
type arrayIter[T any] struct {
	list  *ArrayList[T]
	next  int
	state iterState
}

func (it *arrayIter[T]) HasNext() bool {
	return it.next < it.list.size
}

func (it *arrayIter[T]) Next() (v T, err error) {
	if it.next >= it.list.size {
		return v, ErrNoElement
	}

	v = it.list.buf[it.next]
	it.next++
	it.state = iterPositioned
	return v, nil
}

func (it *arrayIter[T]) Insert(v T) {
	it.list.insertAt(v, it.next)
	// The element Next would have returned shifted up one slot.
	it.next++
	it.state = iterInvalidated
}

func (it *arrayIter[T]) Remove() error {
	if it.state != iterPositioned {
		return ErrIteratorState
	}

	it.next--
	it.list.removeAt(it.next)
	it.state = iterInvalidated
	return nil
}

func (it *arrayIter[T]) Set(v T) error {
	if it.state != iterPositioned {
		return ErrIteratorState
	}

	it.list.buf[it.next-1] = v
	return nil
}
