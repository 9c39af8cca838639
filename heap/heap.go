// Package heap exposes a generic binary heap which may be ordered as either a min or max heap using a three-way
// comparator.
package heap

import "golang.org/x/exp/constraints"

// Heap is a binary heap stored as a complete binary tree in a slice, where the children of the element at index 'i'
// are stored at '2i+1' and '2i+2'.
//
// The zero value of Heap has no comparator and isn't usable, heaps must be created using one of 'New', 'NewOrdered',
// 'NewMin' or 'NewMax'.
//
// NOTE: Heap is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between threads.
type Heap[T any] struct {
	mode    Mode
	compare Comparator[T]
	data    []T
}

// New creates a new empty heap using the given options, an error is returned if the mode is unrecognized or the
// comparator is nil.
func New[T any](options Options[T]) (*Heap[T], error) {
	options.defaults()

	if err := options.validate(); err != nil {
		return nil, err
	}

	heap := &Heap[T]{
		mode:    options.Mode,
		compare: options.Comparator,
		data:    make([]T, 0, options.Capacity),
	}

	return heap, nil
}

// NewOrdered creates a new empty heap for a naturally ordered type, if no comparator is supplied 'DefaultComparator'
// is used.
func NewOrdered[T constraints.Ordered](options Options[T]) (*Heap[T], error) {
	if options.Comparator == nil {
		options.Comparator = DefaultComparator[T]
	}

	return New(options)
}

// NewMin returns an empty min heap for a naturally ordered type.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{mode: Min, compare: DefaultComparator[T]}
}

// NewMax returns an empty max heap for a naturally ordered type.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{mode: Max, compare: DefaultComparator[T]}
}

// Mode returns the mode the heap was created with.
func (h *Heap[T]) Mode() Mode {
	return h.mode
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// IsEmpty returns a boolean indicating whether the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Insert adds the given value to the heap.
func (h *Heap[T]) Insert(value T) {
	h.data = append(h.data, value)
	h.up(len(h.data) - 1)
}

// Peek returns the root of the heap without removing it; the boolean is false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		return *new(T), false
	}

	return h.data[0], true
}

// Remove removes and returns the root of the heap; the boolean is false if the heap is empty.
func (h *Heap[T]) Remove() (T, bool) {
	n := len(h.data)

	if n == 0 {
		return *new(T), false
	}

	root := h.data[0]
	last := h.data[n-1]

	// Clear the vacated slot so that the heap doesn't retain a reference to the element
	h.data[n-1] = *new(T)
	h.data = h.data[:n-1]

	if n == 1 {
		return root, true
	}

	h.data[0] = last
	h.down(0)

	return root, true
}

// Drain removes all elements from the heap in order, running the given function on each. In the event of an error,
// draining stops early, and returns the error.
func (h *Heap[T]) Drain(fn func(value T) error) error {
	for !h.IsEmpty() {
		value, _ := h.Remove()

		if err := fn(value); err != nil {
			return err
		}
	}

	return nil
}

// Clear removes all elements from the heap, the backing storage is retained for reuse.
func (h *Heap[T]) Clear() {
	clear(h.data)
	h.data = h.data[:0]
}

// ordered compares 'a' and 'b' so that a negative result always means 'a' belongs closer to the root, regardless of
// the mode.
func (h *Heap[T]) ordered(a, b T) int {
	if h.mode == Max {
		return -h.compare(a, b)
	}

	return h.compare(a, b)
}

// up moves the element at the given index towards the root until its parent no longer orders after it.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2

		if h.ordered(h.data[i], h.data[parent]) >= 0 {
			return
		}

		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// down moves the element at the given index towards the leaves until neither of its children order before it.
func (h *Heap[T]) down(i int) {
	n := len(h.data)

	for {
		left := 2*i + 1
		if left >= n {
			return
		}

		// Compare against the child which is the greatest threat to the heap property, on ties prefer the left child
		child := left
		if right := left + 1; right < n && h.ordered(h.data[left], h.data[right]) > 0 {
			child = right
		}

		if h.ordered(h.data[i], h.data[child]) <= 0 {
			return
		}

		h.data[i], h.data[child] = h.data[child], h.data[i]
		i = child
	}
}
