package heap

import "golang.org/x/exp/constraints"

// Comparator is a three-way ordering function; it returns a negative number if 'a' sorts before 'b', zero if they're
// equivalent and a positive number if 'a' sorts after 'b'.
//
// NOTE: The comparator must describe a total, consistent order otherwise the heap property can't be maintained.
type Comparator[T any] func(a, b T) int

// DefaultComparator orders naturally ordered types (numbers and strings) using the built-in operators.
func DefaultComparator[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}
