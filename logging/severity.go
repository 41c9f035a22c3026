package logging

import (
	"fmt"
	"strings"
)

// Severity is the ordered importance of a log record.
type Severity int8

const (
	DebugLevel Severity = iota
	InfoLevel
	WarningLevel
	ErrorLevel
)

// severityPriorities is the explicit total order over severities.
// Comparison goes through Priority, never through declaration order.
var severityPriorities = map[Severity]int{
	DebugLevel:   0,
	InfoLevel:    1,
	WarningLevel: 2,
	ErrorLevel:   3,
}

var severityNames = map[Severity]string{
	DebugLevel:   "debug",
	InfoLevel:    "info",
	WarningLevel: "warning",
	ErrorLevel:   "error",
}

// Priority returns the numeric rank of s. Records are dropped when their
// severity's priority is below the facade's configured minimum.
func (s Severity) Priority() int {
	return severityPriorities[s]
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSeverity parses a severity name, ignoring case.
func ParseSeverity(text string) (Severity, error) {
	switch strings.ToLower(text) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	return DebugLevel, fmt.Errorf("unrecognized severity: %q", text)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("unrecognized severity: %d", s)
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so severities can be
// decoded directly from json or yaml configuration.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// sinkLevel maps a severity to the level handed to the sink. Warning maps
// to the sink's general-purpose level rather than a dedicated warning
// level; the wrapped native facility has no distinct warning level.
func (s Severity) sinkLevel() SinkLevel {
	switch s {
	case DebugLevel:
		return SinkDebug
	case InfoLevel:
		return SinkInfo
	case WarningLevel:
		return SinkDefault
	case ErrorLevel:
		return SinkError
	}
	return SinkDefault
}
