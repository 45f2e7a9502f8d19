// Package container provides generic in-memory ordered containers: a
// growable array-backed list, singly- and doubly-linked lists, bounded
// and growable FIFO queues, and a LIFO stack.
//
// All list variants implement the same [List] contract, differing only
// in the complexity of the individual operations, and each can produce
// an [Iterator] that supports structural mutation mid-traversal.
// Duplicate elements are allowed, and the zero value of an element
// type is a valid element to store.
//
// Containers are not safe for concurrent use. Every operation runs to
// completion on the caller's goroutine with no internal
// synchronization, and mutating a container directly while an
// [Iterator] over it is mid-traversal leaves the iterator in an
// undefined state.
package container

import "iter"

// A List is a sequential collection of elements addressable by index.
//
// All indexed operations share the same error contract: reads and
// removals accept indices in [0, Len()) and report [ErrEmpty] before
// [ErrIndexOutOfRange] when the list has no elements, while Insert
// additionally accepts Len() itself, meaning append. Clear on an
// already-empty list is an error, not a no-op.
type List[T any] interface {
	// Insert inserts v at index, shifting any elements at or after
	// index toward the tail. index must be in [0, Len()].
	Insert(v T, index int) error

	// Set replaces the element at index with v. index must be in
	// [0, Len()).
	Set(v T, index int) error

	// Get returns the element at index. index must be in [0, Len()).
	Get(index int) (T, error)

	// Remove removes the element at index, shifting any elements
	// after index toward the head. index must be in [0, Len()).
	Remove(index int) error

	// Clear removes every element, returning [ErrEmpty] if the list
	// is already empty.
	Clear() error

	// Len returns the number of elements in the list.
	Len() int

	// IsEmpty reports whether the list has no elements. It is always
	// equivalent to Len() == 0.
	IsEmpty() bool

	// Iter returns a new iterator positioned before the first
	// element.
	Iter() Iterator[T]

	// All returns a read-only iterator over the elements of the list
	// in order. The list must not be structurally mutated during the
	// iteration.
	All() iter.Seq[T]
}

// An Iterator is a movable cursor over a [List] that can mutate the
// list mid-traversal without corrupting it.
//
// The cursor has three states. It starts fresh, before the first
// element. A successful Next positions it on the element returned.
// Insert and Remove invalidate the position, so Remove and Set fail
// with [ErrIteratorState] until the next call to Next. Set keeps the
// position valid and may be repeated.
type Iterator[T any] interface {
	// HasNext reports whether a subsequent call to Next will succeed.
	HasNext() bool

	// Next advances to the next element and returns it, failing with
	// [ErrNoElement] when the list is exhausted.
	Next() (T, error)

	// Insert inserts v immediately before the element that Next
	// would return next, or at the end of the list if there is none.
	// It may be called in any state and always succeeds, but it
	// invalidates the current position. The element Next would
	// return next is preserved.
	Insert(v T)

	// Remove removes the element last returned by Next and
	// invalidates the current position. It fails with
	// [ErrIteratorState] if the position is not valid.
	Remove() error

	// Set replaces the element last returned by Next with v, leaving
	// the position valid. It fails with [ErrIteratorState] if the
	// position is not valid.
	Set(v T) error
}

// Compare reports an ordering or equivalence relation between two
// elements. It is the boundary type consumed by algorithms layered on
// top of these containers; the containers themselves never call it.
type Compare[T any] func(a, b T) bool

// iterState tracks the cursor validity of an [Iterator]. Illegal call
// sequences are rejected by checking it rather than by sniffing nil
// cursor fields.
type iterState uint8

const (
	iterFresh iterState = iota
	iterPositioned
	iterInvalidated
)

// defaultCap is the initial capacity of the buffer-backed containers.
const defaultCap = 16

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
