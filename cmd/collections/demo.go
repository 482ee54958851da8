package main

import (
	"fmt"

	"github.com/sharedcode/collections/darray"
	"github.com/sharedcode/collections/list"
)

// demo prints the walkthrough of the selected containers.
func demo(opts darray.Options, selected map[string]bool) error {
	if selected["array"] {
		if err := demoArray(opts); err != nil {
			return err
		}
	}
	if selected["slist"] {
		demoSingly()
	}
	if selected["dlist"] {
		demoDoubly()
	}
	return nil
}

func demoArray(opts darray.Options) error {
	opts.InitialCapacity = 10
	arr, err := darray.NewWithOptions[int](opts, nil)
	if err != nil {
		return fmt.Errorf("creating array: %w", err)
	}
	defer arr.Destroy()
	fmt.Println("created dynamic array")
	fmt.Println(arr)

	fmt.Println("\nappending elements...")
	for i := 0; i < 10; i++ {
		if err := arr.Append(i * 2); err != nil {
			return err
		}
		fmt.Println(arr)
	}

	fmt.Println("\nmodifying elements...")
	for _, kv := range [][2]int{{9, 99}, {0, 333}, {5, 1337}} {
		if err := arr.Set(kv[0], kv[1]); err != nil {
			return err
		}
	}
	fmt.Println(arr)

	fmt.Println("\nremoving elements at index 2, 7, and 4...")
	for _, i := range []int{2, 7, 4} {
		if _, err := arr.Remove(i); err != nil {
			return err
		}
		fmt.Println(arr)
	}

	first, _ := arr.Get(0)
	last, _ := arr.Get(arr.Size() - 1)
	fmt.Printf("\nfirst element of array is: %d\n", first)
	fmt.Printf("last element of array is: %d\n", last)

	fmt.Println("\nclearing array...")
	_ = arr.Clear()
	fmt.Println(arr)
	fmt.Println()
	return nil
}

func demoSingly() {
	l := list.NewSingly[int]()
	defer l.Destroy()
	fmt.Println("Inserting nodes...")
	_ = l.InsertHead(3)
	_ = l.InsertHead(1)
	_ = l.InsertTail(3)
	_ = l.InsertTail(7)
	fmt.Printf("List [size=%d]: %v\n", l.Size(), l)

	if v, err := l.RemoveHead(); err == nil {
		fmt.Printf("Removed head from list: %d\n", v)
	}
	if v, err := l.RemoveTail(); err == nil {
		fmt.Printf("Removed tail from list: %d\n", v)
	}
	fmt.Printf("List [size=%d]: %v\n\n", l.Size(), l)
}

func demoDoubly() {
	l := list.NewDoubly[int]()
	defer l.Destroy()
	fmt.Println("Inserting nodes...")
	_ = l.InsertHead(3)
	_ = l.InsertHead(1)
	_ = l.InsertTail(3)
	_ = l.InsertTail(7)
	fmt.Printf("List [size=%d]:\n%s\n", l.Size(), l)
	fmt.Printf("List Reverse [size=%d]:\n%s\n", l.Size(), l.ReverseString())

	if v, err := l.RemoveHead(); err == nil {
		fmt.Printf("Removed head from list: %d\n", v)
	}
	if v, err := l.RemoveTail(); err == nil {
		fmt.Printf("Removed tail from list: %d\n", v)
	}
	fmt.Printf("List [size=%d]:\n%s\n", l.Size(), l)
	fmt.Printf("List Reverse [size=%d]:\n%s\n\n", l.Size(), l.ReverseString())
}
