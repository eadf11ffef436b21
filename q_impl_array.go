package deque

var _ Deque[any] = (*ArrayDeque[any])(nil)

const (
	defaultCapacity = 8
	shrinkThreshold = 16
)

// ArrayDeque implements [Deque] over a circular buffer which doubles its capacity when full.
//
// Get is O(1). AddFirst and AddLast are amortized O(1).
// The zero value is an empty deque ready to use.
//
// nextFront and nextBack point to the next free slot on either side of the live elements.
// Both are kept in [0, cap) once the buffer is allocated, and are 0 before that.
type ArrayDeque[T any] struct {
	items     []T
	size      int
	nextFront int
	nextBack  int

	minCap int
	shrink bool
}

func NewArrayDeque[T any](opts ...Option[T]) *ArrayDeque[T] {
	d := &ArrayDeque[T]{
		minCap: defaultCapacity,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.reset(make([]T, d.minCap))
	return d
}

func (d *ArrayDeque[T]) reset(items []T) {
	d.items = items
	d.size = 0
	if len(items) == 0 {
		// unallocated; the first add grows the buffer and places the cursors.
		d.items = nil
		d.nextFront, d.nextBack = 0, 0
		return
	}
	d.nextFront = len(items) / 2
	d.nextBack = d.wrap(d.nextFront + 1)
}

// wrap brings an index at most one capacity away from the buffer back into [0, cap).
func (d *ArrayDeque[T]) wrap(index int) int {
	switch {
	case index < 0:
		return index + len(d.items)
	case index >= len(d.items):
		return index - len(d.items)
	default:
		return index
	}
}

// first returns the slot holding the front element.
func (d *ArrayDeque[T]) first() int {
	return d.wrap(d.nextFront + 1)
}

func (d *ArrayDeque[T]) AddFirst(item T) {
	if d.size == len(d.items) {
		d.grow()
	}
	d.items[d.nextFront] = item
	d.nextFront = d.wrap(d.nextFront - 1)
	d.size++
}

func (d *ArrayDeque[T]) AddLast(item T) {
	if d.size == len(d.items) {
		d.grow()
	}
	d.items[d.nextBack] = item
	d.nextBack = d.wrap(d.nextBack + 1)
	d.size++
}

func (d *ArrayDeque[T]) RemoveFirst() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	d.nextFront = d.wrap(d.nextFront + 1)
	item := d.items[d.nextFront]
	d.items[d.nextFront] = zero
	d.size--
	d.maybeShrink()
	return item, nil
}

func (d *ArrayDeque[T]) RemoveLast() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	d.nextBack = d.wrap(d.nextBack - 1)
	item := d.items[d.nextBack]
	d.items[d.nextBack] = zero
	d.size--
	d.maybeShrink()
	return item, nil
}

func (d *ArrayDeque[T]) Get(index int) (T, error) {
	if index < 0 || index >= d.size {
		var zero T
		return zero, outOfRange(index, d.size)
	}
	return d.items[d.wrap(d.first()+index)], nil
}

func (d *ArrayDeque[T]) Len() int {
	return d.size
}

func (d *ArrayDeque[T]) IsEmpty() bool {
	return d.size == 0
}

// Cap returns the length of the backing buffer.
func (d *ArrayDeque[T]) Cap() int {
	return len(d.items)
}

func (d *ArrayDeque[T]) Clone() []T {
	cloned := make([]T, d.size)
	d.copyTo(cloned)
	return cloned
}

// Clear removes all elements.
// The buffer is retained unless d was created with WithShrink,
// in which case it goes back to the initial capacity.
func (d *ArrayDeque[T]) Clear() {
	if d.shrink && len(d.items) > d.minCap {
		d.reset(make([]T, d.minCap))
		return
	}
	clear(d.items)
	d.reset(d.items)
}

// Copy returns a deep copy of d. Elements are copied by value.
func (d *ArrayDeque[T]) Copy() *ArrayDeque[T] {
	return &ArrayDeque[T]{
		items:     append([]T(nil), d.items...),
		size:      d.size,
		nextFront: d.nextFront,
		nextBack:  d.nextBack,
		minCap:    d.minCap,
		shrink:    d.shrink,
	}
}

func (d *ArrayDeque[T]) String() string {
	return format(d.Clone())
}

func (d *ArrayDeque[T]) maybeShrink() {
	c := len(d.items)
	if !d.shrink || c < shrinkThreshold || d.size >= c/4 || c/2 < d.minCap {
		return
	}
	d.resize(c / 2)
}

func (d *ArrayDeque[T]) grow() {
	newCap := 2 * len(d.items)
	if newCap == 0 {
		newCap = defaultCapacity
	}
	d.resize(newCap)
}

// resize moves live elements into a buffer of newCap slots, front element first.
// newCap must be greater than d.size.
func (d *ArrayDeque[T]) resize(newCap int) {
	items := make([]T, newCap)
	d.copyTo(items)
	d.items = items
	d.nextFront = newCap - 1
	d.nextBack = d.size
}

// copyTo copies live elements to dst in front-to-back order.
// When elements wrap around the end of the buffer, two ranges are copied:
// from the front element to the end of the buffer, then from slot 0 up to the back element.
func (d *ArrayDeque[T]) copyTo(dst []T) {
	if d.size == 0 {
		return
	}
	first := d.first()
	if first+d.size <= len(d.items) {
		copy(dst, d.items[first:first+d.size])
		return
	}
	n := copy(dst, d.items[first:])
	copy(dst[n:], d.items[:d.size-n])
}
