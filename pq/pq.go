// Package pq exposes a generic priority queue implemented using a max heap.
package pq

import (
	"github.com/couchbase/tools-heap/heap"
	"github.com/couchbase/tools-heap/log"
)

// Options encapsulates the options available when creating a priority queue.
type Options struct {
	// Capacity is the initial capacity of the queue.
	//
	// NOTE: The capacity has the same behavior as a slices capacity meaning the queue may grow beyond it, it's there
	// for performance optimizations.
	Capacity int

	// Logger is used to report queue events, when not supplied logging is skipped.
	Logger log.Logger
}

// PriorityQueue implements a basic priority queue which accepts a generic payload with an integer priority.
//
// The zero value of PriorityQueue is an empty queue ready for use.
//
// NOTE: PriorityQueue is not safe for concurrent use.
type PriorityQueue[T any] struct {
	inner  *heap.Heap[Item[T]]
	logger log.WrappedLogger
}

// NewPriorityQueue creates a new priority queue using the given options.
func NewPriorityQueue[T any](options Options) *PriorityQueue[T] {
	return &PriorityQueue[T]{inner: newInner[T](options.Capacity), logger: log.NewWrappedLogger(options.Logger)}
}

// newInner returns the max heap backing a queue.
func newInner[T any](capacity int) *heap.Heap[Item[T]] {
	// The mode and comparator are fixed, so construction can't fail
	inner, _ := heap.New(heap.Options[Item[T]]{
		Mode:       heap.Max,
		Comparator: compareItems[T],
		Capacity:   capacity,
	})

	return inner
}

// lazyInit sets up a zero value queue on first use.
func (p *PriorityQueue[T]) lazyInit() {
	if p.inner != nil {
		return
	}

	p.inner = newInner[T](0)
	p.logger = log.NewWrappedLogger(nil)
}

// Enqueue adds the given item to the priority queue.
func (p *PriorityQueue[T]) Enqueue(item Item[T]) {
	p.lazyInit()

	p.inner.Insert(item)
}

// Dequeue removes and returns the item from the queue with the highest priority, where multiple items have the same
// priority, they're returned in an arbitrary order. The boolean is false if the queue is empty.
func (p *PriorityQueue[T]) Dequeue() (Item[T], bool) {
	p.lazyInit()

	return p.inner.Remove()
}

// Peek returns the item with the highest priority without removing it.
func (p *PriorityQueue[T]) Peek() (Item[T], bool) {
	p.lazyInit()

	return p.inner.Peek()
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	p.lazyInit()

	return p.inner.Len()
}

// Drain removes all items from the queue running the given function on each item. In the event of an error, dequeuing
// stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(item Item[T]) error) error {
	p.lazyInit()

	err := p.inner.Drain(fn)
	if err != nil {
		p.logger.Tracef("(PQ) Stopped draining with %d item(s) remaining: %s", p.Len(), err)
	}

	return err
}
