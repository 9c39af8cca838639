package heap

import (
	"fmt"
	"strings"
)

// Mode determines whether the root of a heap holds the minimum or maximum element, as ranked by its comparator.
type Mode uint8

const (
	// Min orders the heap so that the root is the element which sorts first.
	Min Mode = iota

	// Max orders the heap so that the root is the element which sorts last.
	Max
)

// ParseMode returns the mode represented by the given string, either "min" or "max" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	}

	return 0, &InvalidModeError{value: s}
}

func (m Mode) String() string {
	switch m {
	case Min:
		return "min"
	case Max:
		return "max"
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid returns a boolean indicating whether the mode is one of the recognized values.
func (m Mode) Valid() bool {
	return m == Min || m == Max
}
