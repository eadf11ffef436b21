// Package deque provides a double-ended queue contract and several
// interchangeable implementations of it.
//
// None of the implementations are safe for concurrent use.
// Callers that share a Deque between goroutines must impose their own locking.
package deque

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

var (
	ErrEmpty      = errors.New("empty")
	ErrOutOfRange = errors.New("index out of range")
)

// Deque is an ordered sequence of elements that can be grown and shrunk at both ends.
// Elements are indexed forward from the front, starting at 0.
type Deque[T any] interface {
	// AddFirst inserts item at the front.
	AddFirst(item T)
	// AddLast inserts item at the back.
	AddLast(item T)
	// RemoveFirst removes and returns the front element.
	// It returns ErrEmpty if the deque holds no element.
	RemoveFirst() (T, error)
	// RemoveLast removes and returns the back element.
	// It returns ErrEmpty if the deque holds no element.
	RemoveLast() (T, error)
	// Get returns the element at index without mutating the deque.
	// The returned error wraps ErrOutOfRange if index is not in [0, Len()).
	Get(index int) (T, error)
	Len() int
	IsEmpty() bool
	// Clone returns elements in front-to-back order.
	Clone() []T
	// Clear removes all elements.
	// It may or may not retain memory allocated for the deque.
	Clear()
}

func outOfRange(index, n int) error {
	return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, index, n)
}

// Print writes elements of d from front to back, separated by a space
// and followed by a newline.
func Print[T any](w io.Writer, d Deque[T]) error {
	var b strings.Builder
	for i, e := range d.Clone() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// Equal reports whether a and b hold the same elements in the same order,
// regardless of how either is backed.
func Equal[T comparable](a, b Deque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.Equal(a.Clone(), b.Clone())
}

func format[T any](elems []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}
