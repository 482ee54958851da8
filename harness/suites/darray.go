// Package suites registers the container checks and timings with the harness.
// Every test builds its own containers, so suites can run side by side.
package suites

import (
	"errors"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/darray"
	"github.com/sharedcode/collections/harness"
)

// ArraySuite returns the growable array checks. opts sets the sizing policy under test.
func ArraySuite(opts darray.Options) *harness.TestSuite {
	s := harness.NewTestSuite("Dynamic Array Tests")
	newArray := func() (*darray.Array[int], error) {
		return darray.NewWithOptions[int](opts, nil)
	}

	s.AddTest("Creation and destruction", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		floor := a.Options().MinCapacity
		if err := harness.All(
			harness.AssertEqual(0, a.Size()),
			harness.AssertTrue(a.Capacity() >= floor, "capacity below floor"),
			harness.AssertTrue(a.IsEmpty()),
		); err != nil {
			return err
		}
		if err := a.Destroy(); err != nil {
			return err
		}
		return harness.AssertError(a.Destroy(), collections.ErrDestroyed)
	})

	s.AddTest("Append, get and size", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		for i := 0; i < 10; i++ {
			if err := a.Append(i * 2); err != nil {
				return err
			}
		}
		first, err := a.Get(0)
		if err != nil {
			return err
		}
		last, err := a.Get(9)
		if err != nil {
			return err
		}
		return harness.All(
			harness.AssertEqual(10, a.Size()),
			harness.AssertEqual(0, first),
			harness.AssertEqual(18, last),
			harness.AssertTrue(a.Capacity() >= a.Size()),
		)
	})

	s.AddTest("Set and get", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		for i := 0; i < 10; i++ {
			_ = a.Append(i * 2)
		}
		for _, kv := range [][2]int{{9, 99}, {0, 333}, {5, 1337}} {
			if err := a.Set(kv[0], kv[1]); err != nil {
				return err
			}
		}
		for _, kv := range [][2]int{{0, 333}, {5, 1337}, {9, 99}} {
			v, err := a.Get(kv[0])
			if err := harness.All(harness.AssertNoError(err), harness.AssertEqual(kv[1], v)); err != nil {
				return err
			}
		}
		return nil
	})

	s.AddTest("Ordered remove", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		for _, v := range []int{333, 2, 4, 6, 8, 1337, 12, 14, 16, 99} {
			_ = a.Append(v)
		}
		for _, i := range []int{2, 7, 4} {
			if _, err := a.Remove(i); err != nil {
				return err
			}
		}
		return harness.All(
			harness.AssertEqual(7, a.Size()),
			harness.AssertSeqEqual([]int{333, 2, 6, 8, 12, 14, 99}, a.Values()),
		)
	})

	s.AddTest("Pop back and size", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		for _, v := range []int{1, 3, 3, 7} {
			_ = a.Append(v)
		}
		for _, want := range []int{7, 3, 3, 1} {
			v, err := a.PopBack()
			if err := harness.All(harness.AssertNoError(err), harness.AssertEqual(want, v)); err != nil {
				return err
			}
		}
		return harness.AssertEqual(0, a.Size())
	})

	s.AddTest("Auto-resize", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		initial := a.Capacity()
		factor := a.Options().GrowthFactor
		for i := 0; i <= initial; i++ {
			_ = a.Append(i)
		}
		if err := harness.AssertEqual(initial*factor, a.Capacity()); err != nil {
			return err
		}
		for i := initial + 1; i <= initial*factor; i++ {
			_ = a.Append(i)
		}
		return harness.All(
			harness.AssertEqual(initial*factor+1, a.Size()),
			harness.AssertEqual(initial*factor*factor, a.Capacity()),
		)
	})

	s.AddTest("Shrink to floor", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		for i := 0; i < 256; i++ {
			_ = a.Append(i)
		}
		for a.Size() > 1 {
			if _, err := a.Remove(0); err != nil {
				return err
			}
		}
		// shrinking stops at the floor, or once one element no longer falls below the threshold.
		o := a.Options()
		return harness.All(
			harness.AssertTrue(a.Capacity() >= o.MinCapacity, "capacity below floor"),
			harness.AssertTrue(a.Capacity() <= max(o.MinCapacity, 2*o.ShrinkDivisor-1), "capacity not shrunk"),
			harness.AssertSeqEqual([]int{255}, a.Values()),
		)
	})

	s.AddTest("Clear keeps capacity", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		for i := 0; i < 100; i++ {
			_ = a.Append(i)
		}
		c := a.Capacity()
		_ = a.Clear()
		_ = a.Clear()
		return harness.All(harness.AssertEqual(0, a.Size()), harness.AssertEqual(c, a.Capacity()))
	})

	s.AddTest("Pop from empty array", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		_, err = a.PopBack()
		return harness.AssertError(err, collections.ErrEmpty, "Expected exception not thrown")
	})

	s.AddTest("Out of bounds access", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		defer a.Destroy()
		_ = a.Append(7)
		_, err1 := a.Get(2)
		_, err2 := a.Get(-3)
		err3 := a.Set(1, 5)
		return harness.All(
			harness.AssertError(err1, collections.ErrOutOfBounds, "Expected exception not thrown"),
			harness.AssertError(err2, collections.ErrOutOfBounds, "Expected exception not thrown"),
			harness.AssertError(err3, collections.ErrOutOfBounds, "Expected exception not thrown"),
			harness.AssertEqual(1, a.Size()),
		)
	})

	s.AddTest("Use after destroy", func() error {
		a, err := newArray()
		if err != nil {
			return err
		}
		_ = a.Destroy()
		err = a.Append(1)
		var ce collections.Error
		return harness.All(
			harness.AssertTrue(errors.As(err, &ce)),
			harness.AssertEqual(collections.UseAfterDestroy, ce.Code),
		)
	})

	return s
}

// ArrayBenchmark times bulk append, append then pop, and random reads over n elements.
// An action whose array cannot be built or filled fails the benchmark run with that error.
func ArrayBenchmark(opts darray.Options, n int, gen *harness.RandomGenerator) *harness.Benchmark {
	b := harness.NewBenchmark("Dynamic Array Benchmarks")

	filled := func() (*darray.Array[int], error) {
		a, err := darray.NewWithOptions[int](opts, nil)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if err := a.Append(i); err != nil {
				_ = a.Destroy()
				return nil, err
			}
		}
		return a, nil
	}

	b.AddCheckedTest("Push back performance", func() error {
		a, err := filled()
		if err != nil {
			return err
		}
		return a.Destroy()
	})

	b.AddCheckedTest("Push and pop performance", func() error {
		a, err := filled()
		if err != nil {
			return err
		}
		for !a.IsEmpty() {
			if _, err := a.PopBack(); err != nil {
				return err
			}
		}
		return a.Destroy()
	})

	b.AddCheckedTest("Random access performance", func() error {
		a, err := filled()
		if err != nil {
			return err
		}
		if n > 0 {
			for _, i := range gen.Ints(max(n/10, 1), 0, n-1) {
				if _, err := a.Get(i); err != nil {
					return err
				}
			}
		}
		return a.Destroy()
	})

	return b
}
