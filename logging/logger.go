package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// DefaultSubsystem is the subsystem identifier used when none can be
// derived from the host binary's build metadata.
const DefaultSubsystem = "unknown.application"

// timestampLayout renders record timestamps as UTC ISO8601.
const timestampLayout = "2006-01-02T15:04:05.000Z"

var globalLogger *Logger

// SetGlobalLogger sets the global logger
func SetGlobalLogger(l *Logger) {
	globalLogger = l
}

// Global returns the global logger
func Global() *Logger {
	return globalLogger
}

// A Hook observes each record the facade emits. Hooks run after the sink
// call, once per emission, and never for filtered records.
type Hook func(severity Severity, category Category)

// A Logger filters records by severity, formats them with timestamp and
// call site, and routes them to a per-category sink. A Logger is
// immutable after construction and safe for concurrent use without
// internal locking; thread safety of the actual emission is the sink's
// contract.
type Logger struct {
	subsystem string
	minimum   Severity
	sinks     map[Category]Sink
	hooks     []Hook
	now       func() time.Time
}

type settings struct {
	subsystem string
	factory   SinkFactory
	hooks     []Hook
	now       func() time.Time
}

// An Option customizes facade construction.
type Option func(*settings)

// WithSubsystem overrides the subsystem identifier derived from build
// metadata.
func WithSubsystem(subsystem string) Option {
	return func(s *settings) {
		s.subsystem = subsystem
	}
}

// WithOutput routes the default zap sinks to writer instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		s.factory = NewZapSinkFactory(Lock(w))
	}
}

// WithSinkFactory replaces the default zap sinks entirely.
func WithSinkFactory(factory SinkFactory) Option {
	return func(s *settings) {
		s.factory = factory
	}
}

// WithHook registers a hook observing every emitted record.
func WithHook(hook Hook) Option {
	return func(s *settings) {
		s.hooks = append(s.hooks, hook)
	}
}

// WithTimeSource overrides the clock used for record timestamps.
func WithTimeSource(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// New constructs a facade that drops every record below minimum. Sinks
// are built eagerly, one per category, and owned by the facade for its
// lifetime.
func New(minimum Severity, opts ...Option) *Logger {
	cfg := settings{
		subsystem: detectSubsystem(),
		factory:   NewZapSinkFactory(Lock(os.Stdout)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	sinks := make(map[Category]Sink, len(Categories()))
	for _, category := range Categories() {
		sinks[category] = cfg.factory(cfg.subsystem, category)
	}
	return &Logger{
		subsystem: cfg.subsystem,
		minimum:   minimum,
		sinks:     sinks,
		hooks:     cfg.hooks,
		now:       cfg.now,
	}
}

// detectSubsystem derives the subsystem identifier from the host binary's
// build metadata, falling back to the executable name and finally to
// DefaultSubsystem.
func detectSubsystem() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return info.Main.Path
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return DefaultSubsystem
}

// Subsystem returns the subsystem identifier stamped on every record.
func (l *Logger) Subsystem() string {
	return l.subsystem
}

// Minimum returns the configured severity threshold.
func (l *Logger) Minimum() Severity {
	return l.minimum
}

// Enabled returns true if records at the specified severity pass the
// filter.
func (l *Logger) Enabled(severity Severity) bool {
	return severity.Priority() >= l.minimum.Priority()
}

// LogMessage emits one record through the category's sink, or nothing.
// Below the threshold it returns before any formatting work, including
// the clock read. The record's file is reduced to its final path
// component before rendering.
func (l *Logger) LogMessage(severity Severity, category Category, message, function, file string, line int) {
	if !l.Enabled(severity) {
		return
	}
	timestamp := l.now().UTC().Format(timestampLayout)
	formatted := fmt.Sprintf("%s: [%s][%s:%d] %s - %s",
		l.subsystem, timestamp, filepath.Base(file), line, function, message)
	sink, ok := l.sinks[category]
	if !ok {
		// Unrecognized categories route to the debug sink rather than
		// dropping the record.
		sink = l.sinks[CategoryDebug]
	}
	sink.Emit(severity.sinkLevel(), formatted)
	for _, hook := range l.hooks {
		hook(severity, category)
	}
}

// Log is the convenience form of LogMessage: the call site is captured
// automatically from the calling frame.
func (l *Logger) Log(severity Severity, category Category, message string) {
	if !l.Enabled(severity) {
		return
	}
	function, file, line := callSite(2)
	l.LogMessage(severity, category, message, function, file, line)
}

// callSite resolves the function name, file and line skip frames above
// this call. The function name is trimmed to its last package-local
// segment.
func callSite(skip int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown", 0
	}
	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '/'); i >= 0 {
			function = function[i+1:]
		}
		if i := strings.IndexByte(function, '.'); i >= 0 {
			function = function[i+1:]
		}
	}
	return function, file, line
}
