package container

import "errors"

// The error values reported by the containers in this package. Every
// failure is surfaced directly to the caller, and every mutating
// operation leaves its container untouched when it fails. Callers
// should discriminate with [errors.Is].
var (
	// ErrEmpty is returned by reads, removals, and Clear on a
	// container with no elements.
	ErrEmpty = errors.New("container is empty")

	// ErrIndexOutOfRange is returned when an index falls outside the
	// operation's valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCapacity is returned by [BoundedQueue.Enqueue] when the
	// queue is at its usable capacity.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrIteratorState is returned by [Iterator.Remove] and
	// [Iterator.Set] when the iterator does not hold a valid
	// position.
	ErrIteratorState = errors.New("iterator has no valid position")

	// ErrNoElement is returned by [Iterator.Next] when the list is
	// exhausted.
	ErrNoElement = errors.New("no next element")
)
