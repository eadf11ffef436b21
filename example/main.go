package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ngicks/deque"
)

func main() {
	for _, d := range []deque.Deque[int]{
		deque.NewArrayDeque[int](),
		deque.NewLinkedDeque[int](),
	} {
		d.AddLast(1)
		d.AddLast(2)
		d.AddFirst(0)

		fmt.Printf("%T: ", d)
		_ = deque.Print(os.Stdout, d)

		for i := 0; i <= d.Len(); i++ {
			v, err := d.Get(i)
			if errors.Is(err, deque.ErrOutOfRange) {
				fmt.Printf("get(%d): %v\n", i, err)
				continue
			}
			fmt.Printf("get(%d) = %d\n", i, v)
		}

		v, _ := d.RemoveLast()
		fmt.Printf("removed last: %d, remaining: %v\n", v, d.Clone())

		for !d.IsEmpty() {
			_, _ = d.RemoveFirst()
		}
		if _, err := d.RemoveFirst(); errors.Is(err, deque.ErrEmpty) {
			fmt.Println("drained")
		}
	}
}
