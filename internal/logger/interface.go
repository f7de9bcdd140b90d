package logger

import "context"

// Logger defines the logging operations used across the service.
// Messages are printf-style format strings.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// SetLevel changes the minimum level at runtime. Unknown levels fall back to info.
	SetLevel(level string)
}
