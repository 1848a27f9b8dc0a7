package slotlist_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/slotlist"
)

func Example() {
	l, err := slotlist.New[int](4)
	if err != nil {
		log.Fatal(err)
	}
	defer l.Destroy()

	for _, v := range []int{10, 20, 30} {
		if _, err := l.PushBack(v); err != nil {
			log.Fatal(err)
		}
	}
	last, _ := l.PopBack()
	_, _ = l.PushFront(5)

	fmt.Println(last, l.Values(), l.IsSorted())

	if err := l.Compact(); err != nil {
		log.Fatal(err)
	}
	first, _ := l.Get(0)
	fmt.Println(first, l.IsSorted())
	// Output:
	// 30 [5 10 20] false
	// 5 true
}

// ExampleList_InsertAfter shows slot handles.
func ExampleList_InsertAfter() {
	l, _ := slotlist.New[string](8)

	a, _ := l.PushBack("a")
	_, _ = l.PushBack("c")
	b, _ := l.InsertAfter("b", a)

	for i, v := range l.All() {
		fmt.Println(i, v)
	}
	fmt.Println("b is in slot", b)
	// Output:
	// 0 a
	// 1 b
	// 2 c
	// b is in slot 3
}

// ExampleList_PopFront shows error matching.
func ExampleList_PopFront() {
	l, _ := slotlist.New[int](4)

	_, err := l.PopFront()
	fmt.Println(errors.Is(err, slotlist.ErrEmptyList))

	code, _ := slotlist.CodeOf(err)
	fmt.Println(code.Description())
	// Output:
	// true
	// List is empty
}

// ExampleWithReporter demonstrates the diagnostics hook.
func ExampleWithReporter() {
	r := slotlist.ReporterFunc[int](func(reason string, snap *slotlist.Snapshot[int]) {
		fmt.Printf("%s [len=%d cap=%d]\n", reason, snap.Len, snap.Capacity)
	})
	l, _ := slotlist.New[int](2, slotlist.WithReporter[int](r))

	_, _ = l.PushBack(1)
	_, _ = l.PushBack(2)
	_, _ = l.Get(7)
	// Output:
	// push_back: capacity increased from 2 to 4 [len=1 cap=4]
	// slotlist: get: bad logical index (index 7) [len=2 cap=4]
}
