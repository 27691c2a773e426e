// Package logger configures the process-wide slog default and provides
// request-scoped and component-scoped loggers.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type requestIDKey struct{}

// Setup installs the default slog logger. Format "json" selects the JSON
// handler; anything else falls back to text.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// WithRequestID stores a request ID in ctx for FromContext to pick up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns the default logger, annotated with the request ID when
// ctx carries one.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id := RequestID(ctx); id != "" {
		log = log.With("request_id", id)
	}
	return log
}

// WithComponent returns the default logger annotated with a component name.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
