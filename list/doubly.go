package list

import (
	"fmt"
	"iter"
	log "log/slog"
	"strings"

	"github.com/sharedcode/collections"
)

// dnode is an element of a Doubly list.
type dnode[T any] struct {
	data T
	prev *dnode[T]
	next *dnode[T]
}

// Doubly is a doubly linked list with head and tail references.
//
// For every node n with a successor, n.next.prev == n; head.prev and tail.next are nil.
type Doubly[T any] struct {
	id        collections.UUID
	head      *dnode[T]
	tail      *dnode[T]
	size      int
	destroyed bool
}

// NewDoubly creates an empty doubly linked list.
func NewDoubly[T any]() *Doubly[T] {
	return &Doubly[T]{id: collections.NewUUID()}
}

// ID returns the identifier this list uses in log records.
func (dll *Doubly[T]) ID() collections.UUID {
	return dll.id
}

// Destroy unlinks every node. Any later call on the list fails.
func (dll *Doubly[T]) Destroy() error {
	if dll.destroyed {
		return collections.NewDestroyedError(dll.id)
	}
	for n := dll.head; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	log.Debug("dlist destroyed", "id", dll.id, "released", dll.size)
	dll.head = nil
	dll.tail = nil
	dll.size = 0
	dll.destroyed = true
	return nil
}

// InsertHead adds v in front of the first element. O(1).
func (dll *Doubly[T]) InsertHead(v T) error {
	if dll.destroyed {
		return collections.NewDestroyedError(dll.id)
	}
	n := &dnode[T]{data: v, next: dll.head}
	if dll.head != nil {
		dll.head.prev = n
	} else {
		dll.tail = n
	}
	dll.head = n
	dll.size++
	return nil
}

// InsertTail adds v after the last element. O(1).
func (dll *Doubly[T]) InsertTail(v T) error {
	if dll.destroyed {
		return collections.NewDestroyedError(dll.id)
	}
	n := &dnode[T]{data: v, prev: dll.tail}
	if dll.tail != nil {
		dll.tail.next = n
	} else {
		dll.head = n
	}
	dll.tail = n
	dll.size++
	return nil
}

// RemoveHead removes and returns the first element. O(1).
func (dll *Doubly[T]) RemoveHead() (T, error) {
	var zero T
	if dll.destroyed {
		return zero, collections.NewDestroyedError(dll.id)
	}
	if dll.head == nil {
		return zero, collections.NewEmptyError("RemoveHead")
	}
	n := dll.head
	dll.unlink(n)
	return n.data, nil
}

// RemoveTail removes and returns the last element. O(1).
func (dll *Doubly[T]) RemoveTail() (T, error) {
	var zero T
	if dll.destroyed {
		return zero, collections.NewDestroyedError(dll.id)
	}
	if dll.tail == nil {
		return zero, collections.NewEmptyError("RemoveTail")
	}
	n := dll.tail
	dll.unlink(n)
	return n.data, nil
}

// Find returns the first element, from the head, for which match reports true.
func (dll *Doubly[T]) Find(match func(T) bool) (T, bool) {
	for v := range dll.All() {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// RemoveFunc removes and returns the first element, from the head, for which match reports true.
func (dll *Doubly[T]) RemoveFunc(match func(T) bool) (T, error) {
	var zero T
	if dll.destroyed {
		return zero, collections.NewDestroyedError(dll.id)
	}
	for n := dll.head; n != nil; n = n.next {
		if match(n.data) {
			dll.unlink(n)
			return n.data, nil
		}
	}
	return zero, notFound()
}

// Size returns the number of elements.
func (dll *Doubly[T]) Size() int {
	dll.mustBeAlive()
	return dll.size
}

// IsEmpty reports whether the list has no elements.
func (dll *Doubly[T]) IsEmpty() bool {
	dll.mustBeAlive()
	return dll.head == nil
}

// All yields the elements from head to tail.
func (dll *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		dll.mustBeAlive()
		for n := dll.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Backward yields the elements from tail to head.
func (dll *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		dll.mustBeAlive()
		for n := dll.tail; n != nil; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

// String renders the list as "NULL <-> 1 <-> 3 <-> NULL".
func (dll *Doubly[T]) String() string {
	return render(dll.All())
}

// ReverseString renders the list from the tail, as "NULL <-> 3 <-> 1 <-> NULL".
func (dll *Doubly[T]) ReverseString() string {
	return render(dll.Backward())
}

// unlink detaches n, patching its neighbours or the boundary references, and clears n's links.
func (dll *Doubly[T]) unlink(n *dnode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		dll.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		dll.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	dll.size--
}

func (dll *Doubly[T]) mustBeAlive() {
	if dll.destroyed {
		panic(collections.NewDestroyedError(dll.id))
	}
}

func render[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteString("NULL <-> ")
	for v := range seq {
		fmt.Fprintf(&sb, "%v <-> ", v)
	}
	sb.WriteString("NULL")
	return sb.String()
}
