package logging

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SinkLevel is the level vocabulary of the underlying sink. It is
// narrower than Severity: the sink offers a general-purpose Default level
// instead of a warning level.
type SinkLevel int8

const (
	SinkDebug SinkLevel = iota
	SinkInfo
	SinkDefault
	SinkError
)

func (l SinkLevel) String() string {
	switch l {
	case SinkDebug:
		return "debug"
	case SinkInfo:
		return "info"
	case SinkDefault:
		return "default"
	case SinkError:
		return "error"
	}
	return "unknown"
}

// A Sink accepts a finished, formatted log line plus a mapped level and
// performs the actual emission. Sinks are fire-and-forget: they report no
// errors back to the facade and must be safe for concurrent use.
type Sink interface {
	Emit(level SinkLevel, line string)
}

// SinkFactory builds the sink for one category at facade construction.
type SinkFactory func(subsystem string, category Category) Sink

type WriteSyncer = zapcore.WriteSyncer

// Lock converts a generic io.Writer into a WriteSyncer safe for
// concurrent use by the zap sink.
func Lock(w io.Writer) WriteSyncer {
	// Use NoOp Sync for protection.
	writer := zapcore.AddSync(w)
	return zapcore.Lock(writer)
}

// Constants for standard field key names
const (
	CategoryKey  = "category"
	LevelKey     = "level"
	MessageKey   = "message"
	SubsystemKey = "subsystem"
	TimeKey      = "time"
)

// NewZapSinkFactory returns the default SinkFactory: one JSON zap logger
// per category, all sharing a core that writes to writer. The core is
// left wide open at debug; severity filtering belongs to the facade.
func NewZapSinkFactory(writer WriteSyncer) SinkFactory {
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     MessageKey,
		LevelKey:       LevelKey,
		NameKey:        CategoryKey,
		TimeKey:        TimeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     utcTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, zap.DebugLevel)
	return func(subsystem string, category Category) Sink {
		logger := zap.New(core, zap.Fields(zap.String(SubsystemKey, subsystem))).Named(category.String())
		return &zapSink{logger: logger}
	}
}

// utcTimeEncoder encodes the time as a UTC ISO8601 timestamp
func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}

// zapSink emits through a zap logger. SinkDefault lands on zap's Info,
// zap's own general-purpose level.
type zapSink struct {
	logger *zap.Logger
}

func (s *zapSink) Emit(level SinkLevel, line string) {
	switch level {
	case SinkDebug:
		s.logger.Debug(line)
	case SinkError:
		s.logger.Error(line)
	default:
		s.logger.Info(line)
	}
}
