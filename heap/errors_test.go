package heap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInvalidMode(t *testing.T) {
	require.True(t, IsInvalidMode(&InvalidModeError{value: Mode(3)}))
	require.True(t, IsInvalidMode(fmt.Errorf("%w", &InvalidModeError{value: "bogus"})))
	require.False(t, IsInvalidMode(&InvalidComparatorError{}))
	require.False(t, IsInvalidMode(assert.AnError))
	require.False(t, IsInvalidMode(nil))
}

func TestIsInvalidComparator(t *testing.T) {
	require.True(t, IsInvalidComparator(&InvalidComparatorError{}))
	require.True(t, IsInvalidComparator(fmt.Errorf("%w", &InvalidComparatorError{})))
	require.False(t, IsInvalidComparator(&InvalidModeError{}))
	require.False(t, IsInvalidComparator(nil))
}

func TestInvalidModeErrorMessage(t *testing.T) {
	require.EqualError(t, &InvalidModeError{value: Mode(3)}, "invalid heap mode Mode(3), expected one of 'min' or 'max'")
}
