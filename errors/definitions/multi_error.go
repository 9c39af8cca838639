// Package definitions holds error types shared across the toolkit, currently 'MultiError' which heap construction uses
// to report every invalid option at once.
package definitions

import (
	"strings"
)

// MultiError collects validation failures into one error; 'errors.Is' and 'errors.As' match any collected error, so
// callers can still test for a specific failure such as an invalid heap mode.
//
// The zero value is an empty collection.
//
// NOTE: MultiError is not safe for concurrent use.
type MultiError struct {
	errs []error

	// Prefix is written once, before the first error.
	Prefix string

	// Separator is written between errors, defaults to "; ".
	Separator string
}

// Add records the given error; nil and the receiver itself are ignored.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}

	if other, ok := err.(*MultiError); ok && other == m {
		return
	}

	m.errs = append(m.errs, err)
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	errStr := strings.Builder{}

	if m.Prefix != "" {
		errStr.WriteString(m.Prefix)
	}

	sep := m.Separator
	if sep == "" {
		sep = "; "
	}

	for _, err := range m.errs[:len(m.errs)-1] {
		errStr.WriteString(err.Error())
		errStr.WriteString(sep)
	}

	errStr.WriteString(m.errs[len(m.errs)-1].Error())

	return errStr.String()
}

// Unwrap returns the aggregated errors, allowing 'errors.Is' and 'errors.As' to match any of them.
func (m *MultiError) Unwrap() []error {
	return m.errs
}

// Errors returns the recorded errors in the order they were added, the slice must not be modified.
func (m *MultiError) Errors() []error {
	return m.errs
}

// ErrOrNil returns the receiver when at least one error was recorded and nil otherwise, so a validation function can end
// with:
//
//	return errs.ErrOrNil()
func (m *MultiError) ErrOrNil() error {
	if len(m.errs) > 0 {
		return m
	}

	return nil
}
