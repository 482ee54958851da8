package list

import (
	"errors"
	"slices"
	"testing"

	"github.com/sharedcode/collections"
)

// Mirrors the driver program: head inserts, tail inserts, then removal from both ends.
func TestSingly_DriverScenario(t *testing.T) {
	l := NewSingly[int]()
	_ = l.InsertHead(3)
	_ = l.InsertHead(1)
	_ = l.InsertTail(3)
	_ = l.InsertTail(7)
	if got := slices.Collect(l.All()); !slices.Equal(got, []int{1, 3, 3, 7}) {
		t.Fatalf("traversal = %v", got)
	}
	if l.Size() != 4 {
		t.Fatalf("Size() = %d", l.Size())
	}

	v, err := l.RemoveHead()
	if err != nil || v != 1 {
		t.Fatalf("RemoveHead() = %d, %v", v, err)
	}
	if got := slices.Collect(l.All()); !slices.Equal(got, []int{3, 3, 7}) {
		t.Fatalf("traversal = %v", got)
	}

	v, err = l.RemoveTail()
	if err != nil || v != 7 {
		t.Fatalf("RemoveTail() = %d, %v", v, err)
	}
	if got := slices.Collect(l.All()); !slices.Equal(got, []int{3, 3}) {
		t.Fatalf("traversal = %v", got)
	}
	if l.IsEmpty() || l.Size() != 2 {
		t.Fatalf("IsEmpty() = %v, Size() = %d", l.IsEmpty(), l.Size())
	}
	if got := l.String(); got != "3 -> 3 -> NULL" {
		t.Fatalf("String() = %q", got)
	}
}

func TestSingly_SingleElementRemoval(t *testing.T) {
	tests := []struct {
		name   string
		remove func(*Singly[string]) (string, error)
	}{
		{"head", (*Singly[string]).RemoveHead},
		{"tail", (*Singly[string]).RemoveTail},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewSingly[string]()
			_ = l.InsertTail("Plato")
			v, err := tc.remove(l)
			if err != nil || v != "Plato" {
				t.Fatalf("remove = %q, %v", v, err)
			}
			if l.head != nil || l.Size() != 0 || !l.IsEmpty() {
				t.Fatalf("list not reset: head=%v size=%d", l.head, l.Size())
			}
			// list is reusable after being emptied.
			_ = l.InsertTail("Aristotle")
			if got := slices.Collect(l.All()); !slices.Equal(got, []string{"Aristotle"}) {
				t.Fatalf("traversal = %v", got)
			}
		})
	}
}

func TestSingly_EmptyRemovals(t *testing.T) {
	l := NewSingly[int]()
	if _, err := l.RemoveHead(); !errors.Is(err, collections.ErrEmpty) {
		t.Errorf("RemoveHead err = %v", err)
	}
	if _, err := l.RemoveTail(); collections.CodeOf(err) != collections.EmptyStructure {
		t.Errorf("RemoveTail err = %v", err)
	}
	if got := l.String(); got != "NULL" {
		t.Errorf("String() = %q", got)
	}
}

func TestSingly_FindAndRemoveFunc(t *testing.T) {
	l := NewSingly[string]()
	for _, s := range []string{"Socrates", "Plato", "Aristotle", "Alexander the Great"} {
		_ = l.InsertTail(s)
	}
	if v, ok := l.Find(func(s string) bool { return s[0] == 'A' }); !ok || v != "Aristotle" {
		t.Fatalf("Find = %q, %v", v, ok)
	}
	if _, ok := l.Find(func(s string) bool { return s == "Zeno" }); ok {
		t.Fatalf("Find matched a missing value")
	}

	tests := []struct {
		target string
		want   []string
	}{
		{"Socrates", []string{"Plato", "Aristotle", "Alexander the Great"}},
		{"Alexander the Great", []string{"Plato", "Aristotle"}},
		{"Plato", []string{"Aristotle"}},
	}
	for _, tc := range tests {
		v, err := l.RemoveFunc(func(s string) bool { return s == tc.target })
		if err != nil || v != tc.target {
			t.Fatalf("RemoveFunc(%q) = %q, %v", tc.target, v, err)
		}
		if got := slices.Collect(l.All()); !slices.Equal(got, tc.want) {
			t.Fatalf("after removing %q: %v", tc.target, got)
		}
	}
	if _, err := l.RemoveFunc(func(s string) bool { return s == "Zeno" }); !errors.Is(err, collections.ErrNotFound) {
		t.Fatalf("RemoveFunc missing err = %v", err)
	}
	if l.Size() != 1 {
		t.Fatalf("Size() = %d", l.Size())
	}
}

func TestSingly_DestroyThenUse(t *testing.T) {
	l := NewSingly[int]()
	for i := 0; i < 5; i++ {
		_ = l.InsertHead(i)
	}
	first := l.head
	if err := l.Destroy(); err != nil {
		t.Fatalf("Destroy err: %v", err)
	}
	if first.next != nil {
		t.Fatalf("destroyed node still linked")
	}
	if err := l.Destroy(); !errors.Is(err, collections.ErrDestroyed) {
		t.Fatalf("second Destroy err = %v", err)
	}
	if err := l.InsertHead(1); !errors.Is(err, collections.ErrDestroyed) {
		t.Errorf("InsertHead err = %v", err)
	}
	if err := l.InsertTail(1); !errors.Is(err, collections.ErrDestroyed) {
		t.Errorf("InsertTail err = %v", err)
	}
	if _, err := l.RemoveHead(); !errors.Is(err, collections.ErrDestroyed) {
		t.Errorf("RemoveHead err = %v", err)
	}
	if _, err := l.RemoveTail(); !errors.Is(err, collections.ErrDestroyed) {
		t.Errorf("RemoveTail err = %v", err)
	}
	if _, err := l.RemoveFunc(func(int) bool { return true }); !errors.Is(err, collections.ErrDestroyed) {
		t.Errorf("RemoveFunc err = %v", err)
	}
	defer func() {
		if err, ok := recover().(error); !ok || !errors.Is(err, collections.ErrDestroyed) {
			t.Fatalf("Size() on destroyed list did not panic with ErrDestroyed")
		}
	}()
	l.Size()
}

func TestSingly_TraversalRestartable(t *testing.T) {
	l := NewSingly[int]()
	for i := 0; i < 10; i++ {
		_ = l.InsertTail(i)
	}
	seq := l.All()
	a, b := slices.Collect(seq), slices.Collect(seq)
	if !slices.Equal(a, b) || len(a) != 10 {
		t.Fatalf("traversals differ: %v vs %v", a, b)
	}
	n := 0
	for range seq {
		n++
		if n == 4 {
			break
		}
	}
	if n != 4 {
		t.Fatalf("break not honored")
	}
}
