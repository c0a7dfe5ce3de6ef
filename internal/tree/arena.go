package tree

import "fortio.org/safecast"

// Arena is a 1-based-index append-only store. Index 0 is reserved as the
// "no element" sentinel across every payload arena in this package.
type Arena[T any] struct {
	data []T
}

// NewArena creates an Arena whose backing slice is preallocated with capHint
// entries; capHint of 0 is fine.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(err)
	}
	return n
}

// Get returns a pointer to the element at index, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the arena's backing storage read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(err)
	}
	return n
}
