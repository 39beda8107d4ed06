package log

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"runtime"
)

// Logger is the interface used to log panics recovered during analysis. It is settable via
// graphql.Logger.
type Logger interface {
	LogPanic(ctx context.Context, value interface{})
}

// LoggerFunc is a function type that implements the Logger interface.
type LoggerFunc func(ctx context.Context, value interface{})

// LogPanic calls the LoggerFunc with the given context and panic value.
func (f LoggerFunc) LogPanic(ctx context.Context, value interface{}) {
	f(ctx, value)
}

// DefaultLogger is the default logger used to log panics recovered during analysis.
type DefaultLogger struct{}

// LogPanic is used to log recovered panic values that occur during analysis.
func (l *DefaultLogger) LogPanic(ctx context.Context, value interface{}) {
	log.Printf("graphql: panic occurred: %v\n%s\ncontext: %v", value, stack(), ctx)
}

// SlogLogger logs recovered panics as structured records at error level.
type SlogLogger struct {
	Logger *slog.Logger
}

// NewSlogLogger returns a SlogLogger writing to l, or to slog.Default() if l is nil.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{Logger: l}
}

func (l *SlogLogger) LogPanic(ctx context.Context, value interface{}) {
	l.Logger.ErrorContext(ctx, "graphql: panic occurred",
		slog.String("panic", fmt.Sprint(value)),
		slog.String("stack", string(stack())),
	)
}

func stack() []byte {
	const size = 64 << 10
	buf := make([]byte, size)
	return buf[:runtime.Stack(buf, false)]
}
