package darray

import "fmt"

// Allocator obtains and releases the backing storage of an Array.
// Alloc must return a slice of length n or an error; it must not return a shorter slice.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(b []T)
}

// HeapAllocator allocates from the Go heap. A request the runtime refuses
// (length out of range) is reported as an error instead of a panic.
type HeapAllocator[T any] struct{}

// Alloc returns a zeroed slice of n elements.
func (HeapAllocator[T]) Alloc(n int) (b []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("negative length %d", n)
	}
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("runtime refused %d elements: %v", n, r)
		}
	}()
	return make([]T, n), nil
}

// Free is a no-op; the garbage collector reclaims the slice once the Array drops it.
func (HeapAllocator[T]) Free(_ []T) {}
