package logging

import (
	"context"
)

type keyType int

const (
	loggerContextKey keyType = iota
)

// From returns the logger in ctx. If no logger is found then the global
// logger is returned. For example if you pass context.Background() then
// you will get back the global logger.
func From(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerContextKey).(*Logger); ok && l != nil {
		return l
	}
	return Global()
}

// NewContext creates a new context that includes logger as a value.
// The logger can be retrieved using logging.From(ctx).
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// NewTestContext is a convenience function for use in unit tests when
// calling functions that expect a context with a logger. Call it like
// this: logging.NewTestContext(t.Name()). The context carries a
// debug-level facade with testName as the subsystem.
func NewTestContext(testName string) context.Context {
	logger := New(DebugLevel, WithSubsystem(testName))
	return NewContext(context.Background(), logger)
}
