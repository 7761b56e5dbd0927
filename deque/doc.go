// Package deque provides a generic double-ended queue backed by a
// doubly-linked list.
//
// What:
//
//   - Deque[T] supports insertion and removal at both ends in O(1).
//   - Len and IsEmpty answer in O(1); traversal is O(n) front-to-back.
//   - Items() yields a lazy, one-shot forward sequence usable with range;
//     Iterator() exposes the same walk as an explicit cursor.
//
// Why:
//
//   - Sliding windows: push at one end, expire at the other.
//   - Work-stealing style scheduling: owners pop the front, thieves the back.
//   - Palindrome/undo buffers: symmetric access to both ends.
//
// Complexity:
//
//   - AddFirst / AddLast / RemoveFirst / RemoveLast: O(1), no amortization.
//   - First / Last / Len / IsEmpty / Clear: O(1).
//   - Items / Iterator walk: O(n), Memory: O(1) beyond the container.
//
// Errors:
//
//   - ErrNilItem: a nil value of a nilable kind passed to AddFirst/AddLast.
//   - ErrEmptyDeque: RemoveFirst/RemoveLast/First/Last on an empty deque.
//
// A Deque is not safe for concurrent use; guard it externally if shared.
// Mutating the deque while ranging over Items() is undefined.
package deque
