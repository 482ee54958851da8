// Package darray implements Array, a contiguous, index-addressable container that grows by a
// fixed factor when full and shrinks by half when removals leave it mostly empty.
//
// Capacity changes go through an owned buffer that allocates the new storage before releasing
// the old one, so a failed grow or shrink never leaves size and capacity out of step.
// References obtained before an Append or Remove may point into a buffer that has since
// been replaced; re-read through Get after mutating.
package darray

import (
	"fmt"
	"iter"
	log "log/slog"
	"strings"

	"github.com/sharedcode/collections"
)

// Array is a growable array of T. It is not safe for concurrent use.
type Array[T any] struct {
	id        collections.UUID
	buf       buffer[T]
	size      int
	opts      Options
	destroyed bool
}

// New creates an Array with the default sizing policy. initialCapacity is clamped to DefaultMinCapacity.
// Growth multiplies the starting capacity, so capacities stay power-of-two multiples of the floor
// only when initialCapacity is at most DefaultMinCapacity; New(10) grows 10, 20, 40.
func New[T any](initialCapacity int) (*Array[T], error) {
	opts := DefaultOptions()
	opts.InitialCapacity = max(initialCapacity, 0)
	return NewWithOptions[T](opts, nil)
}

// NewWithOptions creates an Array with the given sizing policy. A nil alloc uses HeapAllocator.
func NewWithOptions[T any](opts Options, alloc Allocator[T]) (*Array[T], error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	buf, err := newBuffer(alloc, o.InitialCapacity)
	if err != nil {
		return nil, err
	}
	a := &Array[T]{
		id:   collections.NewUUID(),
		buf:  buf,
		opts: o,
	}
	log.Debug("darray created", "id", a.id, "capacity", o.InitialCapacity)
	return a, nil
}

// ID returns the identifier this Array uses in log records.
func (a *Array[T]) ID() collections.UUID {
	return a.id
}

// Options returns the normalized sizing policy of this Array.
func (a *Array[T]) Options() Options {
	return a.opts
}

// Destroy releases the buffer. Any later call on the Array fails.
func (a *Array[T]) Destroy() error {
	if a.destroyed {
		return collections.NewDestroyedError(a.id)
	}
	a.buf.release()
	a.size = 0
	a.destroyed = true
	log.Debug("darray destroyed", "id", a.id)
	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	var zero T
	if err := a.checkIndex(i); err != nil {
		return zero, err
	}
	return a.buf.data[i], nil
}

// Set overwrites the element at index i. It never extends the Array.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.buf.data[i] = v
	return nil
}

// Append stores v after the last element, growing the buffer first when it is full.
// On a failed grow the Array is left unchanged and an AllocationFailure error is returned.
func (a *Array[T]) Append(v T) error {
	if a.destroyed {
		return collections.NewDestroyedError(a.id)
	}
	if a.size == a.buf.capacity() {
		if err := a.grow(); err != nil {
			return err
		}
	}
	a.buf.data[a.size] = v
	a.size++
	return nil
}

// Remove deletes the element at index i, shifting the following elements left by one,
// and returns it. The capacity is halved when the remaining size drops below the shrink threshold.
func (a *Array[T]) Remove(i int) (T, error) {
	var zero T
	if err := a.checkIndex(i); err != nil {
		return zero, err
	}
	v := a.buf.data[i]
	copy(a.buf.data[i:a.size-1], a.buf.data[i+1:a.size])
	a.size--
	a.buf.data[a.size] = zero
	a.shrink()
	return v, nil
}

// PopBack removes and returns the last element.
func (a *Array[T]) PopBack() (T, error) {
	var zero T
	if a.destroyed {
		return zero, collections.NewDestroyedError(a.id)
	}
	if a.size == 0 {
		return zero, collections.NewEmptyError("PopBack")
	}
	a.size--
	v := a.buf.data[a.size]
	a.buf.data[a.size] = zero
	a.shrink()
	return v, nil
}

// Clear drops all elements. The capacity is left unchanged.
func (a *Array[T]) Clear() error {
	if a.destroyed {
		return collections.NewDestroyedError(a.id)
	}
	clear(a.buf.data[:a.size])
	a.size = 0
	return nil
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	a.mustBeAlive()
	return a.size
}

// Capacity returns the number of elements the buffer holds before the next grow.
func (a *Array[T]) Capacity() int {
	a.mustBeAlive()
	return a.buf.capacity()
}

// IsEmpty reports whether the Array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	a.mustBeAlive()
	return a.size == 0
}

// All yields index/value pairs from the first element to the last.
// Each range over the returned sequence starts again from index 0.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a.mustBeAlive()
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf.data[i]) {
				return
			}
		}
	}
}

// Values yields the elements from the first to the last.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the elements along with size and capacity.
func (a *Array[T]) String() string {
	a.mustBeAlive()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array [size=%d, cap=%d]: [", a.size, a.buf.capacity())
	for i, v := range a.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array[T]) grow() error {
	oldCap := a.buf.capacity()
	newCap, err := a.opts.grow(oldCap)
	if err != nil {
		return err
	}
	if err := a.buf.resize(newCap, a.size); err != nil {
		log.Warn("darray grow failed", "id", a.id, "from", oldCap, "to", newCap, "error", err)
		return err
	}
	log.Debug("darray grew", "id", a.id, "from", oldCap, "to", newCap)
	return nil
}

// shrink halves the capacity when size is below capacity/ShrinkDivisor. It does nothing
// when the Array is empty or already at the floor. A failed shrink keeps the larger buffer.
func (a *Array[T]) shrink() {
	oldCap := a.buf.capacity()
	if a.size == 0 || a.size >= oldCap/a.opts.ShrinkDivisor {
		return
	}
	newCap := max(oldCap/2, a.opts.MinCapacity)
	if newCap >= oldCap {
		return
	}
	if err := a.buf.resize(newCap, a.size); err != nil {
		log.Warn("darray shrink failed, keeping capacity", "id", a.id, "from", oldCap, "to", newCap, "error", err)
		return
	}
	log.Debug("darray shrank", "id", a.id, "from", oldCap, "to", newCap)
}

func (a *Array[T]) checkIndex(i int) error {
	if a.destroyed {
		return collections.NewDestroyedError(a.id)
	}
	if i < 0 || i >= a.size {
		return collections.NewBoundsError(i, a.size)
	}
	return nil
}

func (a *Array[T]) mustBeAlive() {
	if a.destroyed {
		panic(collections.NewDestroyedError(a.id))
	}
}
