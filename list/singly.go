package list

import (
	"fmt"
	"iter"
	log "log/slog"
	"strings"

	"github.com/sharedcode/collections"
)

// snode is an element of a Singly list.
type snode[T any] struct {
	data T
	next *snode[T]
}

// Singly is a singly linked list. It keeps no tail reference, so tail operations walk the chain.
type Singly[T any] struct {
	id        collections.UUID
	head      *snode[T]
	size      int
	destroyed bool
}

// NewSingly creates an empty singly linked list.
func NewSingly[T any]() *Singly[T] {
	return &Singly[T]{id: collections.NewUUID()}
}

// ID returns the identifier this list uses in log records.
func (l *Singly[T]) ID() collections.UUID {
	return l.id
}

// Destroy unlinks every node. Any later call on the list fails.
func (l *Singly[T]) Destroy() error {
	if l.destroyed {
		return collections.NewDestroyedError(l.id)
	}
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	log.Debug("slist destroyed", "id", l.id, "released", l.size)
	l.head = nil
	l.size = 0
	l.destroyed = true
	return nil
}

// InsertHead adds v in front of the first element. O(1).
func (l *Singly[T]) InsertHead(v T) error {
	if l.destroyed {
		return collections.NewDestroyedError(l.id)
	}
	l.head = &snode[T]{data: v, next: l.head}
	l.size++
	return nil
}

// InsertTail adds v after the last element. O(n).
func (l *Singly[T]) InsertTail(v T) error {
	if l.destroyed {
		return collections.NewDestroyedError(l.id)
	}
	n := &snode[T]{data: v}
	if l.head == nil {
		l.head = n
	} else {
		last := l.head
		for last.next != nil {
			last = last.next
		}
		last.next = n
	}
	l.size++
	return nil
}

// RemoveHead removes and returns the first element. O(1).
func (l *Singly[T]) RemoveHead() (T, error) {
	var zero T
	if l.destroyed {
		return zero, collections.NewDestroyedError(l.id)
	}
	if l.head == nil {
		return zero, collections.NewEmptyError("RemoveHead")
	}
	old := l.head
	l.head = old.next
	old.next = nil
	l.size--
	return old.data, nil
}

// RemoveTail removes and returns the last element. O(n): it walks to the second to last node.
func (l *Singly[T]) RemoveTail() (T, error) {
	var zero T
	if l.destroyed {
		return zero, collections.NewDestroyedError(l.id)
	}
	if l.head == nil {
		return zero, collections.NewEmptyError("RemoveTail")
	}
	if l.head.next == nil {
		old := l.head
		l.head = nil
		l.size--
		return old.data, nil
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	old := prev.next
	prev.next = nil
	l.size--
	return old.data, nil
}

// Find returns the first element for which match reports true.
func (l *Singly[T]) Find(match func(T) bool) (T, bool) {
	for v := range l.All() {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// RemoveFunc removes and returns the first element for which match reports true.
func (l *Singly[T]) RemoveFunc(match func(T) bool) (T, error) {
	var zero T
	if l.destroyed {
		return zero, collections.NewDestroyedError(l.id)
	}
	var prev *snode[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if !match(n.data) {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		l.size--
		return n.data, nil
	}
	return zero, notFound()
}

// Size returns the number of elements.
func (l *Singly[T]) Size() int {
	l.mustBeAlive()
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *Singly[T]) IsEmpty() bool {
	l.mustBeAlive()
	return l.head == nil
}

// All yields the elements from head to tail. Each range starts again from the head.
func (l *Singly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.mustBeAlive()
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// String renders the list as "1 -> 3 -> NULL".
func (l *Singly[T]) String() string {
	var sb strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&sb, "%v -> ", v)
	}
	sb.WriteString("NULL")
	return sb.String()
}

func (l *Singly[T]) mustBeAlive() {
	if l.destroyed {
		panic(collections.NewDestroyedError(l.id))
	}
}

func notFound() error {
	return collections.Error{Code: collections.NotFound, Err: collections.ErrNotFound}
}
