package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	OperationKey ContextKey = "operation"
)

// WithContext returns the global logger enriched with the request-scoped
// values the middleware stashes in ctx.
func WithContext(ctx context.Context) *slog.Logger {
	log := Logger
	if log == nil {
		log = slog.Default()
	}

	args := make([]any, 0, 6)
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		args = append(args, "request_id", requestID)
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		args = append(args, "user_id", userID)
	}
	if operation, ok := ctx.Value(OperationKey).(string); ok {
		args = append(args, "operation", operation)
	}

	return log.With(args...)
}

// Safe* helpers log through the global logger without requiring callers to
// check whether InitLogger ran (tests frequently don't).

func SafeInfo(msg string, args ...any) {
	if Logger != nil {
		Logger.Info(msg, args...)
		return
	}
	slog.Info(msg, args...)
}

func SafeWarn(msg string, args ...any) {
	if Logger != nil {
		Logger.Warn(msg, args...)
		return
	}
	slog.Warn(msg, args...)
}

func SafeError(msg string, args ...any) {
	if Logger != nil {
		Logger.Error(msg, args...)
		return
	}
	slog.Error(msg, args...)
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Info(msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Warn(msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Error(msg, args...)
}
