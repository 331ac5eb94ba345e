package logger

import (
	"context"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

const correlationIDAttribute = "correlation_id"

type attributes = map[string]any

type LogEntry struct {
	Level         LogLevel
	Message       string
	Attributes    attributes
	Error         error
	Timestamp     time.Time
	CorrelationID string
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

type noopLogger struct{}

func (n *noopLogger) Log(context.Context, LogEntry)  {}
func (n *noopLogger) Shutdown(context.Context) error { return nil }

var globalLogger Logger = &noopLogger{}

type correlationKey struct{}

// WithCorrelationID returns a context whose log records carry id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

func newLogEntry(ctx context.Context, level LogLevel, message string, err error, attrs attributes) LogEntry {
	return LogEntry{
		Level:         level,
		Message:       message,
		Attributes:    attrs,
		Error:         err,
		Timestamp:     time.Now(),
		CorrelationID: CorrelationID(ctx),
	}
}

func Debug(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelDebug, message, nil, attrs))
}

func Info(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelInfo, message, nil, attrs))
}

func Warn(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelWarn, message, nil, attrs))
}

func Error(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelError, message, err, attrs))
}

func Fatal(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelFatal, message, err, attrs))
}

func Log(ctx context.Context, entry LogEntry) {
	if entry.CorrelationID == "" {
		entry.CorrelationID = CorrelationID(ctx)
	}
	globalLogger.Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}

func Initialize(collectorEndpoint, serviceName string, isProduction bool) error {
	var (
		l   Logger
		err error
	)

	if isProduction {
		l, err = initializeOtelLogger(collectorEndpoint, serviceName)
	} else {
		l, err = initStdoutLogger(serviceName)
	}

	if err != nil {
		return err
	}

	globalLogger = l
	return nil
}
