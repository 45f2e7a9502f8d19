package container

import "iter"

// Stack is a LIFO adapter over an [ArrayList]: pushes append to the
// tail of the list and pops remove from it, so both are amortized
// O(1).
//
// A zero value Stack is ready to use. A Stack must not be copied
// after first use.
type Stack[T any] struct {
	list ArrayList[T]
}

// Push inserts v at the top of the stack.
func (s *Stack[T]) Push(v T) {
	// Appending at Len is always in range.
	_ = s.list.Insert(v, s.list.Len())
}

// Pop removes and returns the element at the top of the stack,
// returning [ErrEmpty] if the stack is empty.
func (s *Stack[T]) Pop() (v T, err error) {
	v, err = s.list.Get(s.list.Len() - 1)
	if err != nil {
		return v, err
	}

	_ = s.list.Remove(s.list.Len() - 1)
	return v, nil
}

// Top returns the element at the top of the stack without removing
// it, returning [ErrEmpty] if the stack is empty.
func (s *Stack[T]) Top() (v T, err error) {
	return s.list.Get(s.list.Len() - 1)
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int { return s.list.Len() }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return s.list.IsEmpty() }

// All returns an iterator over the elements of the stack in pop
// order, from the top down. The stack must not be mutated during the
// iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.list.Len() - 1; i >= 0; i-- {
			v, _ := s.list.Get(i)
			if !yield(v) {
				return
			}
		}
	}
}
