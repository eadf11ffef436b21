package deque

var _ Deque[any] = (*LinkedDeque[any])(nil)

type node[T any] struct {
	prev, next *node[T]
	item       T
}

// LinkedDeque implements [Deque] over a ring of doubly linked nodes
// anchored by a sentinel node.
//
// AddFirst, AddLast, RemoveFirst and RemoveLast are O(1).
// Get(i) walks i+1 nodes from the sentinel and is therefore O(i).
// The zero value is an empty deque ready to use.
type LinkedDeque[T any] struct {
	// sentinel.next is the front node and sentinel.prev is the back node.
	// Both point back to sentinel when the deque is empty.
	sentinel *node[T]
	size     int
}

func NewLinkedDeque[T any]() *LinkedDeque[T] {
	d := &LinkedDeque[T]{}
	d.lazyInit()
	return d
}

func (d *LinkedDeque[T]) lazyInit() {
	if d.sentinel == nil {
		s := &node[T]{}
		s.prev = s
		s.next = s
		d.sentinel = s
	}
}

// insertBetween links a new node holding item in between prev and next, which must be adjacent.
func (d *LinkedDeque[T]) insertBetween(item T, prev, next *node[T]) {
	n := &node[T]{prev: prev, next: next, item: item}
	prev.next = n
	next.prev = n
	d.size++
}

// unlink removes n from the ring and clears every reference n holds.
func (d *LinkedDeque[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	item := n.item
	var zero T
	n.prev, n.next, n.item = nil, nil, zero
	d.size--
	return item
}

func (d *LinkedDeque[T]) AddFirst(item T) {
	d.lazyInit()
	d.insertBetween(item, d.sentinel, d.sentinel.next)
}

func (d *LinkedDeque[T]) AddLast(item T) {
	d.lazyInit()
	d.insertBetween(item, d.sentinel.prev, d.sentinel)
}

func (d *LinkedDeque[T]) RemoveFirst() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.unlink(d.sentinel.next), nil
}

func (d *LinkedDeque[T]) RemoveLast() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.unlink(d.sentinel.prev), nil
}

func (d *LinkedDeque[T]) Get(index int) (T, error) {
	if index < 0 || index >= d.size {
		var zero T
		return zero, outOfRange(index, d.size)
	}
	p := d.sentinel
	for i := 0; i <= index; i++ {
		p = p.next
	}
	return p.item, nil
}

// GetRecursive is same as Get but descends the ring recursively.
func (d *LinkedDeque[T]) GetRecursive(index int) (T, error) {
	if index < 0 || index >= d.size {
		var zero T
		return zero, outOfRange(index, d.size)
	}
	return getRecursive(d.sentinel.next, index), nil
}

func getRecursive[T any](n *node[T], index int) T {
	if index == 0 {
		return n.item
	}
	return getRecursive(n.next, index-1)
}

func (d *LinkedDeque[T]) Len() int {
	return d.size
}

func (d *LinkedDeque[T]) IsEmpty() bool {
	return d.size == 0
}

func (d *LinkedDeque[T]) Clone() []T {
	cloned := make([]T, 0, d.size)
	if d.size == 0 {
		return cloned
	}
	for p := d.sentinel.next; p != d.sentinel; p = p.next {
		cloned = append(cloned, p.item)
	}
	return cloned
}

// Clear unlinks every node, leaving only the sentinel.
func (d *LinkedDeque[T]) Clear() {
	for d.size > 0 {
		_ = d.unlink(d.sentinel.next)
	}
}

// Copy returns a deep copy of d. The copy shares no node with d.
// Elements are copied by value.
func (d *LinkedDeque[T]) Copy() *LinkedDeque[T] {
	cp := NewLinkedDeque[T]()
	if d.size == 0 {
		return cp
	}
	for p := d.sentinel.prev; p != d.sentinel; p = p.prev {
		cp.AddFirst(p.item)
	}
	return cp
}

func (d *LinkedDeque[T]) String() string {
	return format(d.Clone())
}
