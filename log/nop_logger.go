package log

// nopLogger is used when no Logger is supplied, so callers never need a nil check.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}
