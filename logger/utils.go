package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// extractTracingFields pulls trace correlation data out of ctx.
//
// Parameters:
//   - ctx: The context that may carry an active span
//
// Returns:
//   - []zap.Field: trace_id and span_id fields, or nil
//
// The fields are produced only when tracing is enabled, the context holds a
// recording span, and that span's context is valid. In every other case the
// method returns nil and the log entry carries no trace fields.
func (l *LoggerClient) extractTracingFields(ctx context.Context) []zap.Field {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}

	spanContext := span.SpanContext()
	if !spanContext.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	}
}

// convertToZapFields folds the optional error and field maps into the
// zap.Field slice the underlying logger expects.
//
// Parameters:
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
//
// Returns:
//   - []zap.Field: The flattened fields ready for Zap
//
// When several maps carry the same key the later map wins.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// Info logs normal operational progress with an optional error and
// structured fields.
//
// Parameters:
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
//
// Example:
//
//	log.Info("subscription established", nil, map[string]interface{}{
//	    "topic":          "IBM US Equity",
//	    "correlation_id": 42,
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs diagnostic detail that matters while developing or debugging,
// for example per-message decode traces.
//
// Parameters:
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
//
// Example:
//
//	log.Debug("decoding message payload", nil, map[string]interface{}{
//	    "message_type": "MarketDataEvents",
//	    "num_elements": 12,
//	})
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a condition worth attention that has not failed anything yet.
//
// Parameters:
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
//
// Example:
//
//	log.Warn("slow consumer, event queue filling", nil, map[string]interface{}{
//	    "queue_depth": 9500,
//	    "capacity":    10000,
//	})
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs a failure of the current operation, with the error itself and
// any context that helps diagnose it.
//
// Parameters:
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
//
// Example:
//
//	if err := dec.Decode(ctx, el); err != nil {
//	    log.Error("element decode failed", err, map[string]interface{}{
//	        "datatype": "SEQUENCE",
//	    })
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs an unrecoverable failure and terminates the process with exit
// code 1. Reserve it for states the binding cannot continue from.
//
// Parameters:
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
//
// Note: This function does not return.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}

// InfoWithContext is Info with trace correlation: when tracing is enabled
// and ctx carries a recording span, the entry also gets trace_id and
// span_id fields.
//
// Parameters:
//   - ctx: The context that may carry an active span
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Info(msg, zapFields...)
}

// DebugWithContext is Debug with trace correlation; see InfoWithContext for
// how the trace fields are derived.
//
// Parameters:
//   - ctx: The context that may carry an active span
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Debug(msg, zapFields...)
}

// WarnWithContext is Warn with trace correlation; see InfoWithContext for
// how the trace fields are derived.
//
// Parameters:
//   - ctx: The context that may carry an active span
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Warn(msg, zapFields...)
}

// ErrorWithContext is Error with trace correlation; see InfoWithContext for
// how the trace fields are derived.
//
// Parameters:
//   - ctx: The context that may carry an active span
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
//
// Example:
//
//	if err := dec.Decode(ctx, el); err != nil {
//	    log.ErrorWithContext(ctx, "element decode failed", err, map[string]interface{}{
//	        "datatype": "SEQUENCE",
//	    })
//	}
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Error(msg, zapFields...)
}

// FatalWithContext is Fatal with trace correlation; see InfoWithContext for
// how the trace fields are derived. It terminates the process and does not
// return.
//
// Parameters:
//   - ctx: The context that may carry an active span
//   - msg: The log message
//   - err: An error to attach to the entry, or nil
//   - fields: Any number of map[string]interface{} with extra structured data
func (l *LoggerClient) FatalWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Fatal(msg, zapFields...)
}
