package heap

import (
	"errors"
	"fmt"
)

// InvalidModeError is returned when constructing a heap with a mode which is neither 'Min' nor 'Max'.
type InvalidModeError struct {
	value any
}

func (i *InvalidModeError) Error() string {
	if s, ok := i.value.(string); ok {
		return fmt.Sprintf("invalid heap mode %q, expected one of 'min' or 'max'", s)
	}

	return fmt.Sprintf("invalid heap mode %v, expected one of 'min' or 'max'", i.value)
}

// IsInvalidMode returns a boolean indicating whether the given error is an 'InvalidModeError'.
func IsInvalidMode(err error) bool {
	var invalidMode *InvalidModeError
	return errors.As(err, &invalidMode)
}

// InvalidComparatorError is returned when constructing a heap without a usable comparator.
type InvalidComparatorError struct{}

func (i *InvalidComparatorError) Error() string {
	return "invalid heap comparator, a non-nil comparison function is required"
}

// IsInvalidComparator returns a boolean indicating whether the given error is an 'InvalidComparatorError'.
func IsInvalidComparator(err error) bool {
	var invalidComparator *InvalidComparatorError
	return errors.As(err, &invalidComparator)
}
