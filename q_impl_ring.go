package deque

import "github.com/gammazero/deque"

var _ Deque[any] = (*RingDeque[any])(nil)

// RingDeque implements [Deque] on top of github.com/gammazero/deque.
//
// The underlying deque panics on empty pops and out-of-range access;
// RingDeque reports those as ErrEmpty and ErrOutOfRange instead.
type RingDeque[T any] struct {
	d *deque.Deque[T]
}

// NewRingDeque returns an empty RingDeque.
// cap is the base capacity; the buffer never shrinks below it.
func NewRingDeque[T any](cap int) *RingDeque[T] {
	return &RingDeque[T]{
		d: deque.New[T](cap, cap),
	}
}

func (q *RingDeque[T]) AddFirst(item T) {
	q.d.PushFront(item)
}

func (q *RingDeque[T]) AddLast(item T) {
	q.d.PushBack(item)
}

func (q *RingDeque[T]) RemoveFirst() (T, error) {
	if q.d.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.d.PopFront(), nil
}

func (q *RingDeque[T]) RemoveLast() (T, error) {
	if q.d.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.d.PopBack(), nil
}

func (q *RingDeque[T]) Get(index int) (T, error) {
	if index < 0 || index >= q.d.Len() {
		var zero T
		return zero, outOfRange(index, q.d.Len())
	}
	return q.d.At(index), nil
}

func (q *RingDeque[T]) Len() int {
	return q.d.Len()
}

func (q *RingDeque[T]) IsEmpty() bool {
	return q.d.Len() == 0
}

func (q *RingDeque[T]) Clone() []T {
	n := q.d.Len()
	cloned := make([]T, 0, n)
	for i := range n {
		cloned = append(cloned, q.d.At(i))
	}
	return cloned
}

func (q *RingDeque[T]) Clear() {
	q.d.Clear()
}

func (q *RingDeque[T]) String() string {
	return format(q.Clone())
}
