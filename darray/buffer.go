package darray

import (
	"fmt"

	"github.com/sharedcode/collections"
)

// buffer is the owned backing store of an Array. len(data) is the capacity.
type buffer[T any] struct {
	data  []T
	alloc Allocator[T]
}

func newBuffer[T any](alloc Allocator[T], capacity int) (buffer[T], error) {
	b := buffer[T]{alloc: alloc}
	data, err := b.obtain(capacity)
	if err != nil {
		return b, err
	}
	b.data = data
	return b, nil
}

func (b *buffer[T]) capacity() int {
	return len(b.data)
}

// resize moves the first live elements into a new allocation of newCap elements.
// It allocates first and only then swaps and frees, so a failed allocation
// leaves the buffer exactly as it was.
func (b *buffer[T]) resize(newCap, live int) error {
	data, err := b.obtain(newCap)
	if err != nil {
		return err
	}
	copy(data, b.data[:live])
	old := b.data
	b.data = data
	b.alloc.Free(old)
	return nil
}

// release hands the storage back to the allocator. The buffer is unusable afterwards.
func (b *buffer[T]) release() {
	if b.data == nil {
		return
	}
	old := b.data
	b.data = nil
	b.alloc.Free(old)
}

func (b *buffer[T]) obtain(n int) ([]T, error) {
	data, err := b.alloc.Alloc(n)
	if err != nil {
		return nil, collections.NewAllocationError(n, err)
	}
	if len(data) != n {
		b.alloc.Free(data)
		return nil, collections.NewAllocationError(n, fmt.Errorf("allocator returned %d elements", len(data)))
	}
	return data, nil
}
