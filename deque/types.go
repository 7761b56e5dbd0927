// Package deque defines the Deque container type and its sentinel errors.
package deque

import "errors"

// Sentinel errors for deque operations.
var (
	// ErrNilItem indicates a nil element was passed to AddFirst or AddLast.
	// The deque does not support sentinel-valued elements; wrap the element
	// in a pointer or option type if absence is meaningful.
	ErrNilItem = errors.New("deque: nil items are not supported")
	// ErrEmptyDeque indicates a remove or peek on an empty deque.
	ErrEmptyDeque = errors.New("deque: deque is empty")
)

// node is a single link in the chain. Nodes are owned exclusively by the
// containing Deque and never escape it.
type node[T any] struct {
	item T
	prev *node[T]
	next *node[T]
}

// Deque is a double-ended queue over elements of type T, implemented as a
// doubly-linked list. The zero value is ready to use; New is provided for
// symmetry with the rest of the module.
//
// Invariants (maintained by every mutating operation):
//   - size == 0 iff first == nil iff last == nil.
//   - Following next from first reaches last in exactly size steps;
//     following prev from last reaches first in exactly size steps.
//   - first.prev == nil and last.next == nil; the chain has no cycles.
type Deque[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

// New returns an empty Deque ready for use.
// Complexity: O(1).
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}
