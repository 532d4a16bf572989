// ABOUTME: List is the ordered container backing focus rings and selectable list items
// ABOUTME: Supports append, get-by-index, length, removal, and in-order iteration

package tui

import "iter"

// List is an ordered sequence of values. It is owned by one event loop and
// is not safe for concurrent mutation.
type List[T any] struct {
	items []T
}

// NewList creates a List holding items in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{items: make([]T, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

// Append adds values to the end of the list.
func (l *List[T]) Append(v ...T) {
	l.items = append(l.items, v...)
}

// At returns the value at index i and whether i was in range.
func (l *List[T]) At(i int) (T, bool) {
	if l == nil || i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Len returns the number of values. A nil List is empty.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// RemoveAt removes the value at index i.
// Returns true if i was in range.
func (l *List[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// Clear removes all values.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// All iterates over index/value pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a snapshot copy of the values.
func (l *List[T]) Values() []T {
	if l == nil {
		return nil
	}
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
