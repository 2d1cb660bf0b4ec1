package logger

import (
	"context"
)

// Logger is the structured-logging contract consumed by the binding
// packages. Every method takes the message, an optional error and any number
// of field maps; the WithContext variants additionally carry a context so
// trace and span IDs can be correlated with the entry.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	// Plain logging methods

	// Debug records diagnostic detail useful while developing or debugging.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info records normal operational progress.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn records a condition worth attention that is not yet a failure.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error records a failure of the current operation.
	Error(msg string, err error, fields ...map[string]interface{})

	// Fatal records an unrecoverable failure and terminates the process.
	Fatal(msg string, err error, fields ...map[string]interface{})

	// Context-aware variants; they append trace/span IDs when tracing is enabled

	// DebugWithContext is Debug plus trace correlation from ctx.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// InfoWithContext is Info plus trace correlation from ctx.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext is Warn plus trace correlation from ctx.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext is Error plus trace correlation from ctx.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// FatalWithContext is Fatal plus trace correlation from ctx; it terminates the process.
	FatalWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
