package suites

import (
	"iter"
	"slices"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/harness"
	"github.com/sharedcode/collections/list"
)

// linked is the operation set shared by Singly and Doubly.
type linked[T any] interface {
	InsertHead(v T) error
	InsertTail(v T) error
	RemoveHead() (T, error)
	RemoveTail() (T, error)
	Size() int
	IsEmpty() bool
	All() iter.Seq[T]
	Destroy() error
}

// SinglySuite returns the singly linked list checks.
func SinglySuite() *harness.TestSuite {
	s := harness.NewTestSuite("Singly-Linked List")
	addLinkedTests(s, func() linked[int] { return list.NewSingly[int]() })

	s.AddTest("String operations", func() error {
		l := list.NewSingly[string]()
		defer l.Destroy()
		_ = l.InsertTail("Plato")
		_ = l.InsertTail("Aristotle")
		_ = l.InsertTail("Alexander the Great")
		_ = l.InsertHead("Socrates")
		removed, err := l.RemoveFunc(func(v string) bool { return v == "Aristotle" })
		return harness.All(
			harness.AssertNoError(err),
			harness.AssertEqual("Aristotle", removed),
			harness.AssertSeqEqual([]string{"Socrates", "Plato", "Alexander the Great"}, l.All()),
		)
	})
	return s
}

// DoublySuite returns the doubly linked list checks, including backward traversal.
func DoublySuite() *harness.TestSuite {
	s := harness.NewTestSuite("Doubly-Linked List")
	addLinkedTests(s, func() linked[int] { return list.NewDoubly[int]() })

	s.AddTest("Backward traversal", func() error {
		l := list.NewDoubly[int]()
		defer l.Destroy()
		_ = l.InsertHead(3)
		_ = l.InsertHead(1)
		_ = l.InsertTail(3)
		_ = l.InsertTail(7)
		if err := harness.AssertSeqEqual([]int{7, 3, 3, 1}, l.Backward()); err != nil {
			return err
		}
		_, _ = l.RemoveHead()
		_, _ = l.RemoveTail()
		return harness.AssertSeqEqual([]int{3, 3}, l.Backward())
	})

	s.AddTest("Forward is reverse of backward", func() error {
		l := list.NewDoubly[int]()
		defer l.Destroy()
		gen := harness.NewSeededRandomGenerator(11, 13)
		for i, v := range gen.Ints(500, 0, 9) {
			switch v % 4 {
			case 0:
				_ = l.InsertHead(i)
			case 1:
				_ = l.InsertTail(i)
			case 2:
				_, _ = l.RemoveHead()
			default:
				_, _ = l.RemoveTail()
			}
			bwd := slices.Collect(l.Backward())
			slices.Reverse(bwd)
			if err := harness.AssertSeqEqual(bwd, l.All(), "forward differs from reversed backward"); err != nil {
				return err
			}
		}
		return nil
	})
	return s
}

func addLinkedTests(s *harness.TestSuite, newList func() linked[int]) {
	s.AddTest("Empty list operations", func() error {
		l := newList()
		defer l.Destroy()
		_, errHead := l.RemoveHead()
		_, errTail := l.RemoveTail()
		return harness.All(
			harness.AssertTrue(l.IsEmpty()),
			harness.AssertError(errHead, collections.ErrEmpty),
			harness.AssertError(errTail, collections.ErrEmpty),
		)
	})

	s.AddTest("Basic operations", func() error {
		l := newList()
		defer l.Destroy()
		_ = l.InsertHead(3)
		_ = l.InsertHead(1)
		_ = l.InsertTail(3)
		_ = l.InsertTail(7)
		if err := harness.AssertSeqEqual([]int{1, 3, 3, 7}, l.All()); err != nil {
			return err
		}
		head, err := l.RemoveHead()
		if err := harness.All(harness.AssertNoError(err), harness.AssertEqual(1, head),
			harness.AssertSeqEqual([]int{3, 3, 7}, l.All())); err != nil {
			return err
		}
		tail, err := l.RemoveTail()
		return harness.All(
			harness.AssertNoError(err),
			harness.AssertEqual(7, tail),
			harness.AssertSeqEqual([]int{3, 3}, l.All()),
			harness.AssertFalse(l.IsEmpty()),
		)
	})

	s.AddTest("Single element removal", func() error {
		for _, fromHead := range []bool{true, false} {
			l := newList()
			_ = l.InsertTail(42)
			var err error
			if fromHead {
				_, err = l.RemoveHead()
			} else {
				_, err = l.RemoveTail()
			}
			if err := harness.All(harness.AssertNoError(err), harness.AssertEqual(0, l.Size()),
				harness.AssertTrue(l.IsEmpty())); err != nil {
				return err
			}
			_ = l.Destroy()
		}
		return nil
	})

	s.AddTest("Use after destroy", func() error {
		l := newList()
		_ = l.Destroy()
		return harness.All(
			harness.AssertError(l.InsertHead(1), collections.ErrDestroyed),
			harness.AssertError(l.Destroy(), collections.ErrDestroyed),
		)
	})
}

// ListBenchmark times head and tail churn over n elements for both list kinds.
func ListBenchmark(n int) *harness.Benchmark {
	b := harness.NewBenchmark("Linked List Benchmarks")

	b.AddTest("Singly insert/remove head", func() {
		l := list.NewSingly[int]()
		for i := 0; i < n; i++ {
			_ = l.InsertHead(i)
		}
		for !l.IsEmpty() {
			_, _ = l.RemoveHead()
		}
		_ = l.Destroy()
	})

	b.AddTest("Singly insert tail", func() {
		l := list.NewSingly[int]()
		for i := 0; i < min(n, 5000); i++ {
			_ = l.InsertTail(i)
		}
		_ = l.Destroy()
	})

	b.AddTest("Doubly insert/remove tail", func() {
		l := list.NewDoubly[int]()
		for i := 0; i < n; i++ {
			_ = l.InsertTail(i)
		}
		for !l.IsEmpty() {
			_, _ = l.RemoveTail()
		}
		_ = l.Destroy()
	})

	return b
}
