package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkArrayInvariant fails t if cursors of d disagree with its size.
func checkArrayInvariant[T any](t *testing.T, d *ArrayDeque[T]) {
	t.Helper()
	c := len(d.items)
	if c == 0 {
		require.Equal(t, 0, d.size)
		require.Equal(t, 0, d.nextFront)
		require.Equal(t, 0, d.nextBack)
		return
	}
	require.GreaterOrEqual(t, c, d.size)
	require.True(t, d.nextFront >= 0 && d.nextFront < c, "nextFront = %d, cap = %d", d.nextFront, c)
	require.True(t, d.nextBack >= 0 && d.nextBack < c, "nextBack = %d, cap = %d", d.nextBack, c)
	require.Equal(t, (d.nextFront+1+d.size)%c, d.nextBack, "size = %d, cap = %d", d.size, c)
}

func TestArrayDeque_initial_layout(t *testing.T) {
	assert := assert.New(t)

	d := NewArrayDeque[int]()
	assert.Equal(defaultCapacity, d.Cap())
	assert.Equal(4, d.nextFront)
	assert.Equal(5, d.nextBack)

	d.AddLast(1)
	d.AddFirst(0)
	assert.Equal(0, d.items[4])
	assert.Equal(1, d.items[5])
	assert.Equal(3, d.nextFront)
	assert.Equal(6, d.nextBack)
	checkArrayInvariant(t, d)
}

func TestArrayDeque_grow_wrapped(t *testing.T) {
	assert := assert.New(t)

	d := NewArrayDeque[int]()
	// Front cursor walks down past slot 0 and wraps to the end of the buffer,
	// so live elements occupy two ranges when the buffer fills up.
	for i := range 6 {
		d.AddFirst(i)
	}
	d.AddLast(100)
	d.AddLast(101)
	assert.Equal(8, d.Cap())
	assert.Greater(d.first()+d.Len(), d.Cap(), "elements must wrap around the end of the buffer")
	checkArrayInvariant(t, d)

	d.AddLast(102)
	assert.Equal(16, d.Cap())
	assert.Equal([]int{5, 4, 3, 2, 1, 0, 100, 101, 102}, d.Clone())
	checkArrayInvariant(t, d)

	for i := range d.Len() {
		v, err := d.Get(i)
		assert.NoError(err)
		assert.Equal(d.Clone()[i], v)
	}
}

func TestArrayDeque_grow_linear(t *testing.T) {
	assert := assert.New(t)

	d := NewArrayDeque(WithCapacity[int](4))
	// nextFront = 2, nextBack = 3. Three AddFirst calls fill slots 2, 1, 0
	// and one AddLast fills slot 3, so the live range is exactly [0, 4).
	d.AddFirst(0)
	d.AddFirst(1)
	d.AddFirst(2)
	d.AddLast(3)
	assert.Equal(4, d.Cap())
	assert.Equal(0, d.first())
	checkArrayInvariant(t, d)

	d.AddFirst(-1)
	assert.Equal(8, d.Cap())
	assert.Equal([]int{-1, 2, 1, 0, 3}, d.Clone())
	checkArrayInvariant(t, d)
}

func TestArrayDeque_resize_transparent(t *testing.T) {
	d := NewArrayDeque(WithCapacity[int](1))
	caps := map[int]bool{}
	for i := range 1000 {
		d.AddLast(i)
		caps[d.Cap()] = true
		checkArrayInvariant(t, d)
	}
	require.Greater(t, len(caps), 5, "must have resized several times")
	for i := range 1000 {
		v, err := d.RemoveFirst()
		require.NoError(t, err)
		require.Equal(t, i, v)
		checkArrayInvariant(t, d)
	}
	require.Equal(t, 1024, d.Cap(), "must not shrink without WithShrink")
}

func TestArrayDeque_shrink(t *testing.T) {
	assert := assert.New(t)

	d := NewArrayDeque(WithShrink[int]())
	for i := range 1000 {
		if i%2 == 0 {
			d.AddLast(i)
		} else {
			d.AddFirst(i)
		}
	}
	assert.Equal(1024, d.Cap())

	expected := d.Clone()
	for d.Len() > 3 {
		v, err := d.RemoveLast()
		assert.NoError(err)
		assert.Equal(expected[d.Len()], v)
		checkArrayInvariant(t, d)
		assert.GreaterOrEqual(d.Cap(), d.Len())
	}
	assert.Equal(defaultCapacity, d.Cap(), "must not shrink below initial capacity")
	assert.Equal(expected[:3], d.Clone())

	for i := range 100 {
		d.AddLast(i)
	}
	d.Clear()
	assert.Equal(defaultCapacity, d.Cap())
	checkArrayInvariant(t, d)
}

func TestArrayDeque_shrink_from_front(t *testing.T) {
	assert := assert.New(t)

	d := NewArrayDeque(WithShrink[int]())
	for i := range 1000 {
		d.AddLast(i)
	}
	assert.Equal(1024, d.Cap())

	caps := []int{d.Cap()}
	for i := range 997 {
		v, err := d.RemoveFirst()
		assert.NoError(err)
		assert.Equal(i, v)
		checkArrayInvariant(t, d)
		if c := d.Cap(); c != caps[len(caps)-1] {
			assert.Equal(caps[len(caps)-1]/2, c, "must shrink by halves")
			caps = append(caps, c)
		}
	}
	assert.Equal([]int{1024, 512, 256, 128, 64, 32, 16, 8}, caps)
	assert.Equal([]int{997, 998, 999}, d.Clone())

	for i := range 3 {
		v, err := d.Get(i)
		assert.NoError(err)
		assert.Equal(997+i, v)
	}
}

func TestArrayDeque_removed_slots_are_zeroed(t *testing.T) {
	d := NewArrayDeque[*int]()
	for i := range 5 {
		v := i
		d.AddLast(&v)
	}
	_, _ = d.RemoveFirst()
	_, _ = d.RemoveLast()

	live := 0
	for _, p := range d.items {
		if p != nil {
			live++
		}
	}
	assert.Equal(t, 3, live)
}

func TestArrayDeque_Copy(t *testing.T) {
	assert := assert.New(t)

	d := NewArrayDeque[int]()
	for i := range 10 {
		d.AddFirst(i)
	}
	cp := d.Copy()
	assert.Equal(d.Clone(), cp.Clone())

	cp.AddLast(99)
	_, _ = cp.RemoveFirst()
	assert.Equal(10, d.Len())
	assert.Equal([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, d.Clone())
	assert.Equal([]int{8, 7, 6, 5, 4, 3, 2, 1, 0, 99}, cp.Clone())
	checkArrayInvariant(t, cp)
}

func TestArrayDeque_zero_value(t *testing.T) {
	var d ArrayDeque[string]
	d.AddFirst("b")
	d.AddFirst("a")
	d.AddLast("c")
	assert.Equal(t, "[a b c]", d.String())
	assert.Equal(t, defaultCapacity, d.Cap())
	checkArrayInvariant(t, &d)
}

func TestArrayDeque_zero_value_Clear(t *testing.T) {
	var d ArrayDeque[int]
	d.Clear()
	checkArrayInvariant(t, &d)
	assert.Equal(t, 0, d.Cap())

	d.AddLast(1)
	d.AddFirst(0)
	assert.Equal(t, "[0 1]", d.String())
	checkArrayInvariant(t, &d)

	shrinking := ArrayDeque[int]{shrink: true}
	shrinking.Clear()
	checkArrayInvariant(t, &shrinking)
	shrinking.AddFirst(3)
	assert.Equal(t, []int{3}, shrinking.Clone())
}
