package deque

type Option[T any] func(d *ArrayDeque[T])

// WithCapacity sets the initial capacity of the backing buffer.
// The capacity also works as a lower bound when the buffer shrinks.
// Values less than 1 are ignored.
func WithCapacity[T any](capacity int) Option[T] {
	return func(d *ArrayDeque[T]) {
		if capacity > 0 {
			d.minCap = capacity
		}
	}
}

// WithShrink makes d reclaim memory when its utilization falls far below its capacity.
//
// Without this option, the buffer only grows.
// With it, the capacity is halved after a removal leaves fewer than a quarter of slots used,
// as long as capacity stays at or above both shrinkThreshold and the initial capacity.
func WithShrink[T any]() Option[T] {
	return func(d *ArrayDeque[T]) {
		d.shrink = true
	}
}
