package log

// Level is the severity attached to a log line.
type Level uint8

const (
	// LevelTrace is used for per-operation detail, such as why a queue stopped draining.
	LevelTrace Level = iota

	// LevelDebug is used for progress detail, such as how many values were read from an input.
	LevelDebug

	// LevelInfo marks the milestones of a run, such as starting to drain a heap.
	LevelInfo

	// LevelWarning is used when something unexpected happened but the result is still correct.
	LevelWarning

	// LevelError is used when an operation failed but the caller may carry on.
	LevelError

	// LevelPanic is used immediately before panicking, see 'WrappedLogger.Panicf'.
	LevelPanic
)

// String returns the four letter prefix used when printing the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return "UNKN"
}
