package deque

import (
	"iter"
	"reflect"
)

// Len returns the number of elements currently stored.
// Complexity: O(1).
func (d *Deque[T]) Len() int {
	return d.size
}

// IsEmpty reports whether the deque holds no elements.
// Complexity: O(1).
func (d *Deque[T]) IsEmpty() bool {
	return d.first == nil
}

// AddFirst inserts item as the new front element.
// Returns ErrNilItem (leaving the deque unchanged) if item is a nil value
// of a nilable kind.
// Complexity: O(1).
func (d *Deque[T]) AddFirst(item T) error {
	if isNilItem(item) {
		return ErrNilItem
	}

	n := &node[T]{item: item}
	if d.IsEmpty() {
		d.first = n
		d.last = n
	} else {
		d.first.prev = n
		n.next = d.first
		d.first = n
	}
	d.size++

	return nil
}

// AddLast inserts item as the new back element.
// Returns ErrNilItem (leaving the deque unchanged) if item is a nil value
// of a nilable kind.
// Complexity: O(1).
func (d *Deque[T]) AddLast(item T) error {
	if isNilItem(item) {
		return ErrNilItem
	}

	n := &node[T]{item: item}
	if d.IsEmpty() {
		d.first = n
	} else {
		d.last.next = n
		n.prev = d.last
	}
	d.last = n
	d.size++

	return nil
}

// RemoveFirst removes and returns the front element.
// Returns the zero value of T and ErrEmptyDeque if the deque is empty.
// Complexity: O(1).
func (d *Deque[T]) RemoveFirst() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, ErrEmptyDeque
	}

	n := d.first
	if n.next == nil {
		// Single element: clear both ends.
		d.first = nil
		d.last = nil
	} else {
		d.first = n.next
		d.first.prev = nil
	}
	d.size--

	return n.item, nil
}

// RemoveLast removes and returns the back element.
// Returns the zero value of T and ErrEmptyDeque if the deque is empty.
// Complexity: O(1).
func (d *Deque[T]) RemoveLast() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, ErrEmptyDeque
	}

	n := d.last
	if n.prev == nil {
		d.first = nil
		d.last = nil
	} else {
		d.last = n.prev
		d.last.next = nil
	}
	d.size--

	return n.item, nil
}

// First returns the front element without removing it.
// Returns the zero value of T and ErrEmptyDeque if the deque is empty.
// Complexity: O(1).
func (d *Deque[T]) First() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, ErrEmptyDeque
	}

	return d.first.item, nil
}

// Last returns the back element without removing it.
// Returns the zero value of T and ErrEmptyDeque if the deque is empty.
// Complexity: O(1).
func (d *Deque[T]) Last() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, ErrEmptyDeque
	}

	return d.last.item, nil
}

// Clear removes all elements, leaving an empty deque.
// Complexity: O(1); the detached chain is reclaimed by the collector.
func (d *Deque[T]) Clear() {
	d.first = nil
	d.last = nil
	d.size = 0
}

// Items returns a lazy, one-shot forward sequence of the elements from
// front to back. The walk starts from the front node as of the moment
// Items is called, not the moment the range begins. Mutating the deque
// mid-range is undefined; the sequence does not support removal.
// Complexity: O(n) for a full walk, Memory: O(1).
func (d *Deque[T]) Items() iter.Seq[T] {
	start := d.first // head is fixed at sequence creation
	return func(yield func(T) bool) {
		for n := start; n != nil; n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Iterator is an explicit forward cursor over a Deque, for call sites that
// prefer a Next loop over range-over-func. It shares Items' caveats.
type Iterator[T any] struct {
	current *node[T]
}

// Iterator returns a cursor positioned at the front of the deque.
// Complexity: O(1).
func (d *Deque[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{current: d.first}
}

// Next returns the next element and advances the cursor.
// The second result is false once the walk is exhausted.
// Complexity: O(1).
func (it *Iterator[T]) Next() (T, bool) {
	if it.current == nil {
		var zero T
		return zero, false
	}

	item := it.current.item
	it.current = it.current.next

	return item, true
}

// isNilItem reports whether item is a nil value of a nilable kind.
// Value types (ints, strings, structs, ...) are never nil and always pass.
func isNilItem[T any](item T) bool {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		// item is a nil interface value.
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
