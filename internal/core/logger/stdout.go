package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

type StdoutLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

func initStdoutLogger(serviceName string) (Logger, error) {
	return newStdoutLogger(os.Stdout, serviceName), nil
}

func newStdoutLogger(w io.Writer, serviceName string) *StdoutLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})

	handlerWithAttrs := handler.WithAttrs([]slog.Attr{
		slog.String("service", serviceName),
	})

	return &StdoutLogger{
		logger: slog.New(handlerWithAttrs),
		exit:   os.Exit,
	}
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	// attributes stay out of stdout, only the correlation id and the error
	// make it to the line
	attrs := make([]any, 0, 4)
	if entry.CorrelationID != "" {
		attrs = append(attrs, correlationIDAttribute, entry.CorrelationID)
	}
	if entry.Error != nil {
		attrs = append(attrs, "error", entry.Error.Error())
	}

	switch entry.Level {
	case LogLevelDebug:
		l.logger.DebugContext(ctx, entry.Message, attrs...)
	case LogLevelInfo:
		l.logger.InfoContext(ctx, entry.Message, attrs...)
	case LogLevelWarn:
		l.logger.WarnContext(ctx, entry.Message, attrs...)
	case LogLevelError:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
	case LogLevelFatal:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
		l.exit(1)
	}
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	return nil
}
