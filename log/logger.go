// Package log lets applications route the messages emitted by the priority queue and the heapsort command to their own
// logging setup.
package log

// Logger receives printf style messages tagged with a level. Implementations decide which levels to keep.
//
//go:generate mockery --name Logger --case underscore --inpackage
type Logger interface {
	Log(level Level, format string, args ...any)
}
