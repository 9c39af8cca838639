package heap

import "github.com/couchbase/tools-heap/errors/definitions"

// MaxInitialCapacity is the largest capacity a heap is pre-sized with, larger requested capacities are reduced to it.
const MaxInitialCapacity = 1 << 20

// Options encapsulates the options available when creating a heap.
type Options[T any] struct {
	// Mode determines whether the root is the minimum or maximum element, defaults to 'Min'.
	Mode Mode

	// Comparator is used to order elements, it's required unless the heap is created using 'NewOrdered'.
	Comparator Comparator[T]

	// Capacity is the initial capacity of the backing storage.
	//
	// NOTE: This behaves like a slices capacity, the heap may grow beyond it. Values above 'MaxInitialCapacity' are
	// reduced to it.
	Capacity int
}

func (o *Options[T]) defaults() {
	if o.Capacity < 0 {
		o.Capacity = 0
	}

	if o.Capacity > MaxInitialCapacity {
		o.Capacity = MaxInitialCapacity
	}
}

// validate returns an error describing every invalid option, or nil if the options are usable.
func (o *Options[T]) validate() error {
	errs := definitions.MultiError{Prefix: "invalid heap options: "}

	if !o.Mode.Valid() {
		errs.Add(&InvalidModeError{value: o.Mode})
	}

	if o.Comparator == nil {
		errs.Add(&InvalidComparatorError{})
	}

	return errs.ErrOrNil()
}
