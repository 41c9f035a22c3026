package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func StartLogCapturing() (chan string, *os.File) {
	r, w, _ := os.Pipe()
	outC := make(chan string)

	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()
	return outC, w
}

func StopLogCapturing(outChannel chan string, writeStream *os.File) []string {
	// back to normal state
	writeStream.Close()
	logOutput := <-outChannel

	s := strings.Split(logOutput, "\n")
	return s
}

// recordingSink captures the mapped level and formatted line of every
// emission.
type recordingSink struct {
	levels []SinkLevel
	lines  []string
}

func (s *recordingSink) Emit(level SinkLevel, line string) {
	s.levels = append(s.levels, level)
	s.lines = append(s.lines, line)
}

// newRecordingLogger builds a facade whose categories all share one
// recording sink.
func newRecordingLogger(minimum Severity, opts ...Option) (*Logger, *recordingSink) {
	sink := &recordingSink{}
	opts = append(opts,
		WithSubsystem("test"),
		WithSinkFactory(func(string, Category) Sink { return sink }))
	return New(minimum, opts...), sink
}

func TestLevels(t *testing.T) {
	outC, w := StartLogCapturing()
	logger := New(InfoLevel, WithSubsystem("testlogger"), WithOutput(w))
	logger.Log(DebugLevel, CategoryDebug, "This is a debug log entry!")
	logger.Log(InfoLevel, CategoryLifecycle, "This is a info log entry!")
	logger.Log(WarningLevel, CategoryLifecycle, "This is a warning log entry!")
	logger.Log(ErrorLevel, CategoryErrorHandling, "This is a error log entry!")
	s := StopLogCapturing(outC, w)
	assert.Contains(t, s[0], "This is a info log entry!")
	assert.Contains(t, s[1], "This is a warning log entry!")
	assert.Contains(t, s[2], "This is a error log entry!")
	assert.NotContains(t, strings.Join(s, "\n"), "This is a debug log entry!")
	assert.Contains(t, s[0], `"level":"INFO"`)
	// Warning rides the sink's general-purpose level.
	assert.Contains(t, s[1], `"level":"INFO"`)
	assert.Contains(t, s[2], `"level":"ERROR"`)
	assert.Contains(t, s[0], `"category":"lifecycle"`)
	assert.Contains(t, s[0], `"subsystem":"testlogger"`)
	assert.Contains(t, s[0], `"time":`)
}

func TestMinimumErrorOnlyEmitsError(t *testing.T) {
	for _, severity := range []Severity{DebugLevel, InfoLevel, WarningLevel, ErrorLevel} {
		logger, sink := newRecordingLogger(ErrorLevel)
		logger.LogMessage(severity, CategoryDebug, "msg", "fn", "file.go", 1)
		if severity == ErrorLevel {
			assert.Len(t, sink.lines, 1, "severity %v", severity)
		} else {
			assert.Empty(t, sink.lines, "severity %v", severity)
		}
	}
}

func TestLowerSeverityNeverEmits(t *testing.T) {
	all := []Severity{DebugLevel, InfoLevel, WarningLevel, ErrorLevel}
	for _, minimum := range all {
		for _, severity := range all {
			if severity.Priority() >= minimum.Priority() {
				continue
			}
			logger, sink := newRecordingLogger(minimum)
			logger.LogMessage(severity, CategoryDebug, "msg", "fn", "file.go", 1)
			assert.Empty(t, sink.lines, "minimum %v severity %v", minimum, severity)
		}
	}
}

func TestNoFormattingWorkBelowThreshold(t *testing.T) {
	clockCalls := 0
	logger, sink := newRecordingLogger(ErrorLevel, WithTimeSource(func() time.Time {
		clockCalls++
		return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	}))

	logger.LogMessage(DebugLevel, CategoryDebug, "dropped", "fn", "file.go", 1)
	logger.LogMessage(InfoLevel, CategoryDebug, "dropped", "fn", "file.go", 1)
	assert.Zero(t, clockCalls)
	assert.Empty(t, sink.lines)

	logger.LogMessage(ErrorLevel, CategoryDebug, "kept", "fn", "file.go", 1)
	assert.Equal(t, 1, clockCalls)
	assert.Len(t, sink.lines, 1)
}

func TestMessageFormat(t *testing.T) {
	logger, sink := newRecordingLogger(DebugLevel, WithTimeSource(func() time.Time {
		return time.Date(2026, 1, 2, 15, 4, 5, 123000000, time.UTC)
	}))
	logger.LogMessage(InfoLevel, CategoryUI, "hello", "doWork", "/tmp/src/file.go", 7)
	assert.Equal(t,
		[]string{"test: [2026-01-02T15:04:05.123Z][file.go:7] doWork - hello"},
		sink.lines)
}

func TestFileNameReducedToBase(t *testing.T) {
	logger, sink := newRecordingLogger(DebugLevel)
	logger.LogMessage(InfoLevel, CategoryDatabase, "msg", "fn", "/a/b/c/handler.go", 42)
	assert.Len(t, sink.lines, 1)
	assert.Contains(t, sink.lines[0], "[handler.go:42]")
	assert.NotContains(t, sink.lines[0], "/a/b/c")
}

func TestSinkLevelMapping(t *testing.T) {
	logger, sink := newRecordingLogger(DebugLevel)
	logger.LogMessage(DebugLevel, CategoryDebug, "m", "fn", "f.go", 1)
	logger.LogMessage(InfoLevel, CategoryDebug, "m", "fn", "f.go", 1)
	logger.LogMessage(WarningLevel, CategoryDebug, "m", "fn", "f.go", 1)
	logger.LogMessage(ErrorLevel, CategoryDebug, "m", "fn", "f.go", 1)
	assert.Equal(t, []SinkLevel{SinkDebug, SinkInfo, SinkDefault, SinkError}, sink.levels)
}

func TestLogCapturesCallSite(t *testing.T) {
	logger, sink := newRecordingLogger(DebugLevel)
	logger.Log(InfoLevel, CategoryDebug, "captured")
	assert.Len(t, sink.lines, 1)
	assert.Contains(t, sink.lines[0], "logging_test.go:")
	assert.Contains(t, sink.lines[0], "TestLogCapturesCallSite")
}

func TestPerCategorySinks(t *testing.T) {
	sinks := map[Category]*recordingSink{}
	logger := New(DebugLevel,
		WithSubsystem("test"),
		WithSinkFactory(func(_ string, category Category) Sink {
			sink := &recordingSink{}
			sinks[category] = sink
			return sink
		}))
	assert.Len(t, sinks, len(Categories()))

	logger.LogMessage(InfoLevel, CategoryNetworking, "net", "fn", "f.go", 1)
	logger.LogMessage(InfoLevel, CategoryDatabase, "db", "fn", "f.go", 1)
	assert.Len(t, sinks[CategoryNetworking].lines, 1)
	assert.Len(t, sinks[CategoryDatabase].lines, 1)
	assert.Empty(t, sinks[CategoryUI].lines)
}

func TestEmitHooks(t *testing.T) {
	type emission struct {
		severity Severity
		category Category
	}
	var seen []emission
	logger, _ := newRecordingLogger(InfoLevel, WithHook(func(severity Severity, category Category) {
		seen = append(seen, emission{severity, category})
	}))
	logger.LogMessage(DebugLevel, CategoryDebug, "dropped", "fn", "f.go", 1)
	logger.LogMessage(WarningLevel, CategoryAnalytics, "kept", "fn", "f.go", 1)
	assert.Equal(t, []emission{{WarningLevel, CategoryAnalytics}}, seen)
}

func TestSubsystemDefault(t *testing.T) {
	logger := New(InfoLevel, WithSinkFactory(func(string, Category) Sink { return &recordingSink{} }))
	assert.NotEmpty(t, logger.Subsystem())
}

func TestEnabled(t *testing.T) {
	logger, _ := newRecordingLogger(WarningLevel)
	assert.False(t, logger.Enabled(DebugLevel))
	assert.False(t, logger.Enabled(InfoLevel))
	assert.True(t, logger.Enabled(WarningLevel))
	assert.True(t, logger.Enabled(ErrorLevel))
	assert.Equal(t, WarningLevel, logger.Minimum())
}

func TestGlobalLogger(t *testing.T) {
	prev := Global()
	defer SetGlobalLogger(prev)

	logger, _ := newRecordingLogger(InfoLevel)
	SetGlobalLogger(logger)
	assert.Equal(t, logger, Global())
}

func TestLockToAFileStream(t *testing.T) {
	f, err := os.CreateTemp("", "logfacade")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	logger := New(InfoLevel, WithSubsystem("testlogtempfile"), WithOutput(f))
	now := fmt.Sprintf("written at %d", time.Now().UnixNano())
	logger.Log(InfoLevel, CategoryLifecycle, now)

	contents, err := os.ReadFile(f.Name())
	assert.NoError(t, err)
	assert.Contains(t, string(contents), now)
}
