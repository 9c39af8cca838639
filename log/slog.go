package log

import (
	"context"
	"fmt"
	"log/slog"
)

// UserDataValue is a string that should be treated as user data, and therefore tagged as such in the logs.
type UserDataValue string

func (u UserDataValue) LogValue() slog.Value {
	return slog.StringValue(u.String())
}

func (u UserDataValue) String() string {
	return fmt.Sprintf("<ud>%s</ud>", string(u))
}

// UserData returns an Attr for a string value that should be treated as user data.
func UserData(key, value string) slog.Attr {
	return slog.Attr{Key: key, Value: UserDataValue(value).LogValue()}
}

// LevelTraceSlog and LevelPanicSlog extend the 'slog' levels to cover the full range of levels.
const (
	LevelTraceSlog = slog.LevelDebug - 4
	LevelPanicSlog = slog.LevelError + 4
)

// SlogLogger is a Logger which formats messages and forwards them to a 'slog.Logger'.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger which writes to the given 'slog.Logger', or the default 'slog' logger if nil.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// Log formats the message and logs it at the equivalent 'slog' level.
func (s *SlogLogger) Log(level Level, format string, args ...any) {
	s.logger.Log(context.Background(), level.slog(), fmt.Sprintf(format, args...))
}

// slog returns the 'slog' equivalent of the level.
func (l Level) slog() slog.Level {
	switch l {
	case LevelTrace:
		return LevelTraceSlog
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}

	return LevelPanicSlog
}
