package container

import "iter"

// DoubleList is a [List] backed by a bidirectional node chain holding
// both ends. Inserting or removing at either end is O(1), and indexed
// operations walk from whichever end is closer to the index, halving
// the pointer chasing of a [SingleList] without changing the
// asymptotic cost.
//
// The forward chain is authoritative; prev links exist only so
// traversal can run from the tail. A zero value DoubleList is ready
// to use.
type DoubleList[T any] struct {
	head, tail *doubleNode[T]
	size       int
}

type doubleNode[T any] struct {
	val        T
	prev, next *doubleNode[T]
}

var _ List[int] = (*DoubleList[int])(nil)

// InsertFirst inserts v at the beginning of the list in O(1).
func (ls *DoubleList[T]) InsertFirst(v T) {
	n := &doubleNode[T]{val: v, next: ls.head}
	if ls.head == nil {
		ls.tail = n
	} else {
		ls.head.prev = n
	}
	ls.head = n
	ls.size++
}

// InsertLast inserts v at the end of the list in O(1).
func (ls *DoubleList[T]) InsertLast(v T) {
	n := &doubleNode[T]{val: v, prev: ls.tail}
	if ls.tail == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
	ls.size++
}

// RemoveFirst removes the first element of the list in O(1),
// returning [ErrEmpty] if the list is empty.
func (ls *DoubleList[T]) RemoveFirst() error {
	if ls.head == nil {
		return ErrEmpty
	}

	ls.removeNode(ls.head)
	return nil
}

// RemoveLast removes the last element of the list in O(1), returning
// [ErrEmpty] if the list is empty.
func (ls *DoubleList[T]) RemoveLast() error {
	if ls.tail == nil {
		return ErrEmpty
	}

	ls.removeNode(ls.tail)
	return nil
}

// removeNode unlinks n from the chain. n must be a node of the list.
func (ls *DoubleList[T]) removeNode(n *doubleNode[T]) {
	switch {
	case ls.head == ls.tail:
		ls.head = nil
		ls.tail = nil
	case n == ls.head:
		ls.head = n.next
		n.next.prev = nil
	case n == ls.tail:
		ls.tail = n.prev
		n.prev.next = nil
	default:
		n.next.prev = n.prev
		n.prev.next = n.next
	}

	n.next = nil
	n.prev = nil
	ls.size--
}

// insertBefore splices a new node holding v in front of next, which
// must be a non-head node of the list.
func (ls *DoubleList[T]) insertBefore(next *doubleNode[T], v T) {
	n := &doubleNode[T]{val: v, prev: next.prev, next: next}
	next.prev.next = n
	next.prev = n
	ls.size++
}

// node returns the node at index, walking forward from the head for
// indices in the lower half of the list and backward from the tail
// otherwise. The caller must have validated the index.
func (ls *DoubleList[T]) node(index int) *doubleNode[T] {
	if index <= ls.size/2 {
		cur := ls.head
		for range index {
			cur = cur.next
		}
		return cur
	}

	cur := ls.tail
	for i := ls.size - 1; i > index; i-- {
		cur = cur.prev
	}
	return cur
}

// Insert inserts v at index. index must be in [0, Len()]. Inserting
// at index 0 or Len() is O(1).
func (ls *DoubleList[T]) Insert(v T, index int) error {
	if index < 0 || index > ls.size {
		return ErrIndexOutOfRange
	}

	switch index {
	case 0:
		ls.InsertFirst(v)
	case ls.size:
		ls.InsertLast(v)
	default:
		ls.insertBefore(ls.node(index), v)
	}
	return nil
}

// Set replaces the element at index with v. index must be in
// [0, Len()).
func (ls *DoubleList[T]) Set(v T, index int) error {
	if err := ls.check(index); err != nil {
		return err
	}

	ls.node(index).val = v
	return nil
}

// Get returns the element at index. index must be in [0, Len()).
func (ls *DoubleList[T]) Get(index int) (v T, err error) {
	if err := ls.check(index); err != nil {
		return v, err
	}
	return ls.node(index).val, nil
}

// Remove removes the element at index. index must be in [0, Len()).
// Removing index 0 or Len()-1 is O(1).
func (ls *DoubleList[T]) Remove(index int) error {
	if err := ls.check(index); err != nil {
		return err
	}

	ls.removeNode(ls.node(index))
	return nil
}

func (ls *DoubleList[T]) check(index int) error {
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
func (ls *DoubleList[T]) Clear() error {
	if ls.size == 0 {
		return ErrEmpty
	}

	ls.head = nil
	ls.tail = nil
	ls.size = 0
	return nil
}

// Len returns the number of elements in the list.
func (ls *DoubleList[T]) Len() int { return ls.size }

// IsEmpty reports whether the list has no elements.
func (ls *DoubleList[T]) IsEmpty() bool { return ls.size == 0 }

// Iter returns a new iterator positioned before the first element.
func (ls *DoubleList[T]) Iter() Iterator[T] {
	return &doubleIter[T]{list: ls, ahead: ls.head}
}

// All returns an iterator over the elements of the list in order.
func (ls *DoubleList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ls.head; cur != nil; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the list from the
// tail to the head.
func (ls *DoubleList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ls.tail; cur != nil; cur = cur.prev {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// doubleIter is a cursor over a [DoubleList]. It holds the node last
// returned by Next and a look-ahead node, so Insert and Remove splice
// the chain in O(1) instead of delegating to the indexed operations.
type doubleIter[T any] struct {
	list  *DoubleList[T]
	cur   *doubleNode[T]
	ahead *doubleNode[T]
	state iterState
}

func (it *doubleIter[T]) HasNext() bool {
	return it.ahead != nil
}

func (it *doubleIter[T]) Next() (v T, err error) {
	if it.ahead == nil {
		return v, ErrNoElement
	}

	it.cur = it.ahead
	it.ahead = it.ahead.next
	it.state = iterPositioned
	return it.cur.val, nil
}

func (it *doubleIter[T]) Insert(v T) {
	switch {
	case it.ahead == nil:
		it.list.InsertLast(v)
	case it.ahead == it.list.head:
		it.list.InsertFirst(v)
	default:
		it.list.insertBefore(it.ahead, v)
	}

	it.cur = nil
	it.state = iterInvalidated
}

func (it *doubleIter[T]) Remove() error {
	if it.state != iterPositioned {
		return ErrIteratorState
	}

	it.list.removeNode(it.cur)
	it.cur = nil
	it.state = iterInvalidated
	return nil
}

func (it *doubleIter[T]) Set(v T) error {
	if it.state != iterPositioned {
		return ErrIteratorState
	}

	it.cur.val = v
	return nil
}
