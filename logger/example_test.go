package logger_test

import (
	"context"
	"errors"

	"github.com/aalemi-dev/mdbridge/logger"
)

func ExampleNewLoggerClient() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "ticker-feed",
	})

	log.Info("bridge started", nil)
}

func ExampleLoggerClient_Info() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "ticker-feed",
	})

	log.Info("subscription established", nil, map[string]interface{}{
		"topic":          "IBM US Equity",
		"correlation_id": 42,
	})
}

func ExampleLoggerClient_Error() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "ticker-feed",
	})

	err := errors.New("datatype mismatch")
	log.Error("element decode failed", err, map[string]interface{}{
		"datatype":    "SEQUENCE",
		"field_count": 12,
	})
}

func ExampleLoggerClient_Debug() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Debug,
		ServiceName: "ticker-feed",
	})

	log.Debug("decoding message payload", nil, map[string]interface{}{
		"message_type": "MarketDataEvents",
		"num_elements": 8,
	})
}

func ExampleLoggerClient_InfoWithContext() {
	log := logger.NewLoggerClient(logger.Config{
		Level:         logger.Info,
		ServiceName:   "ticker-feed",
		EnableTracing: true,
	})

	ctx := context.Background()

	// When an active OpenTelemetry span is present in ctx,
	// trace_id and span_id are automatically attached to the log entry.
	log.InfoWithContext(ctx, "handling event", nil, map[string]interface{}{
		"event_type": "SUBSCRIPTION_DATA",
	})
}

func ExampleLoggerClient_ErrorWithContext() {
	log := logger.NewLoggerClient(logger.Config{
		Level:         logger.Info,
		ServiceName:   "ticker-feed",
		EnableTracing: true,
	})

	ctx := context.Background()
	err := errors.New("session terminated")

	log.ErrorWithContext(ctx, "event dispatch failed", err, map[string]interface{}{
		"service": "refdata",
	})
}

func Example_callerSkip() {
	// When wrapping the logger in your own type, increase CallerSkip
	// so the reported caller points to your business logic, not the wrapper.
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "ticker-feed",
		CallerSkip:  2,
	})

	log.Info("called from wrapper", nil)
}
