package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"dpwhcli/internal/errors"
)

// GenerateTraceID creates a new unique trace ID using UUID v4
func GenerateTraceID() string {
	return uuid.New().String()
}

// ContextWithTraceID creates a new context with a generated trace ID
func ContextWithTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, GenerateTraceID())
}

// EnsureTraceID ensures the context has a trace ID, generating one if needed
func EnsureTraceID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if GetTraceID(ctx) == "" {
		return ContextWithTraceID(ctx)
	}
	return ctx
}

// LoggerOrDefault returns logger, or the global logger when nil
func LoggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return GetLogger()
	}
	return logger
}

// WithComponent creates a logger with a component field
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return LoggerOrDefault(logger).With(slog.String("component", component))
}

// WithError creates a logger with an error field, plus error_type for AppErrors
func WithError(logger *slog.Logger, err error) *slog.Logger {
	if err == nil {
		return logger
	}
	logger = LoggerOrDefault(logger).With(slog.String("error", err.Error()))
	if errType := errors.TypeOf(err); errType != "" {
		logger = logger.With(slog.String("error_type", string(errType)))
	}
	return logger
}
