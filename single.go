package container

import "iter"

// SingleList is a [List] backed by a forward-only node chain. Only
// the head is held directly, so inserting or removing the first
// element is O(1) and every indexed operation is O(n).
//
// A zero value SingleList is ready to use.
type SingleList[T any] struct {
	head *singleNode[T]
	size int
}

type singleNode[T any] struct {
	val  T
	next *singleNode[T]
}

var _ List[int] = (*SingleList[int])(nil)

// InsertFirst inserts v at the beginning of the list in O(1).
func (ls *SingleList[T]) InsertFirst(v T) {
	ls.head = &singleNode[T]{val: v, next: ls.head}
	ls.size++
}

// RemoveFirst removes the first element of the list in O(1),
// returning [ErrEmpty] if the list is empty.
func (ls *SingleList[T]) RemoveFirst() error {
	if ls.head == nil {
		return ErrEmpty
	}

	n := ls.head
	ls.head = n.next
	n.next = nil
	ls.size--
	return nil
}

// node returns the node at index. The caller must have validated the
// index.
func (ls *SingleList[T]) node(index int) *singleNode[T] {
	cur := ls.head
	for range index {
		cur = cur.next
	}
	return cur
}

// Insert inserts v at index. index must be in [0, Len()]. Inserting
// at index 0 is O(1); everything else walks from the head.
func (ls *SingleList[T]) Insert(v T, index int) error {
	if index < 0 || index > ls.size {
		return ErrIndexOutOfRange
	}

	if index == 0 {
		ls.InsertFirst(v)
		return nil
	}

	prev := ls.node(index - 1)
	prev.next = &singleNode[T]{val: v, next: prev.next}
	ls.size++
	return nil
}

// Set replaces the element at index with v. index must be in
// [0, Len()).
func (ls *SingleList[T]) Set(v T, index int) error {
	if err := ls.check(index); err != nil {
		return err
	}

	ls.node(index).val = v
	return nil
}

// Get returns the element at index. index must be in [0, Len()).
func (ls *SingleList[T]) Get(index int) (v T, err error) {
	if err := ls.check(index); err != nil {
		return v, err
	}
	return ls.node(index).val, nil
}

// Remove removes the element at index. index must be in [0, Len()).
// Removing index 0 is O(1).
func (ls *SingleList[T]) Remove(index int) error {
	if err := ls.check(index); err != nil {
		return err
	}

	if index == 0 {
		return ls.RemoveFirst()
	}

	prev := ls.node(index - 1)
	n := prev.next
	prev.next = n.next
	n.next = nil
	ls.size--
	return nil
}

func (ls *SingleList[T]) check(index int) error {
	if ls.size == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= ls.size {
		return ErrIndexOutOfRange
	}
	return nil
}

// Clear removes every element, returning [ErrEmpty] if the list is
// already empty.
func (ls *SingleList[T]) Clear() error {
	if ls.size == 0 {
		return ErrEmpty
	}

	ls.head = nil
	ls.size = 0
	return nil
}

// Len returns the number of elements in the list.
func (ls *SingleList[T]) Len() int { return ls.size }

// IsEmpty reports whether the list has no elements.
func (ls *SingleList[T]) IsEmpty() bool { return ls.size == 0 }

// Iter returns a new iterator positioned before the first element.
func (ls *SingleList[T]) Iter() Iterator[T] {
	return &singleIter[T]{list: ls}
}

// All returns an iterator over the elements of the list in order.
func (ls *SingleList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ls.head; cur != nil; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// singleIter is a cursor over a [SingleList]. It tracks the node last
// returned by Next and that node's predecessor so that mutation at
// the cursor splices the chain directly instead of re-walking from
// the head.
//
// The look-ahead node is derived rather than stored: it is cur.next
// while positioned, prev.next after the position is invalidated, and
// the list head before the first advance.
type singleIter[T any] struct {
	list  *SingleList[T]
	prev  *singleNode[T]
	cur   *singleNode[T]
	state iterState
}

func (it *singleIter[T]) ahead() *singleNode[T] {
	switch {
	case it.cur != nil:
		return it.cur.next
	case it.prev != nil:
		return it.prev.next
	default:
		return it.list.head
	}
}

func (it *singleIter[T]) HasNext() bool {
	return it.ahead() != nil
}

func (it *singleIter[T]) Next() (v T, err error) {
	n := it.ahead()
	if n == nil {
		return v, ErrNoElement
	}

	if it.cur != nil {
		it.prev = it.cur
	}
	it.cur = n
	it.state = iterPositioned
	return n.val, nil
}

func (it *singleIter[T]) Insert(v T) {
	p := it.cur
	if p == nil {
		p = it.prev
	}

	n := &singleNode[T]{val: v}
	if p == nil {
		n.next = it.list.head
		it.list.head = n
	} else {
		n.next = p.next
		p.next = n
	}
	it.list.size++

	// The new node now precedes the element Next will return.
	it.prev = n
	it.cur = nil
	it.state = iterInvalidated
}

func (it *singleIter[T]) Remove() error {
	if it.state != iterPositioned {
		return ErrIteratorState
	}

	if it.prev == nil {
		it.list.head = it.cur.next
	} else {
		it.prev.next = it.cur.next
	}
	it.cur.next = nil
	it.list.size--

	it.cur = nil
	it.state = iterInvalidated
	return nil
}

func (it *singleIter[T]) Set(v T) error {
	if it.state != iterPositioned {
		return ErrIteratorState
	}

	it.cur.val = v
	return nil
}
