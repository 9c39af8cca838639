package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWrappedLoggerNil(t *testing.T) {
	require.Equal(t, WrappedLogger{Logger: nopLogger{}}, NewWrappedLogger(nil))
}

func TestWrappedLoggerLevels(t *testing.T) {
	logger := NewMockLogger(t)

	logger.On("Log", LevelTrace, "trace %d", 1).Once()
	logger.On("Log", LevelDebug, "debug %d", 2).Once()
	logger.On("Log", LevelInfo, "info %d", 3).Once()
	logger.On("Log", LevelWarning, "warn %d", 4).Once()
	logger.On("Log", LevelError, "error %d", 5).Once()

	wrapped := NewWrappedLogger(logger)

	wrapped.Tracef("trace %d", 1)
	wrapped.Debugf("debug %d", 2)
	wrapped.Infof("info %d", 3)
	wrapped.Warnf("warn %d", 4)
	wrapped.Errorf("error %d", 5)
}

func TestWrappedLoggerPanicf(t *testing.T) {
	logger := NewMockLogger(t)
	logger.On("Log", LevelPanic, "oh no %s", "heap").Once()

	wrapped := NewWrappedLogger(logger)

	require.PanicsWithValue(t, "oh no heap", func() { wrapped.Panicf("oh no %s", "heap") })
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "TRAC", LevelTrace.String())
	require.Equal(t, "WARN", LevelWarning.String())
	require.Equal(t, "PNIC", LevelPanic.String())
	require.Equal(t, "UNKN", Level(42).String())
}
