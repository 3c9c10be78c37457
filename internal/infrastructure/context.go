package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// GenerateRunID creates a unique identifier for one CLI invocation.
func GenerateRunID() string {
	return uuid.New().String()
}

// ContextWithRunID creates a new context carrying a fresh run ID.
func ContextWithRunID(ctx context.Context) context.Context {
	return WithTraceID(ctx, GenerateRunID())
}

// LoggerWithContext returns the global logger with the context's trace ID
// attached, if present.
func LoggerWithContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()
	if traceID := GetTraceID(ctx); traceID != "" {
		logger = logger.With("trace_id", traceID)
	}
	return logger
}
