// Package logger provides structured logging for the market-data bridge.
//
// Every component of the bridge (element decoding, lifetime management,
// observability plumbing) logs through this package. It offers leveled,
// structured logging with optional distributed-tracing correlation, and
// plugs into the fx dependency injection framework used across the module.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: the contract consumers depend on
//   - LoggerClient struct: the concrete zap-backed implementation
//   - NewLoggerClient constructor: returns *LoggerClient (concrete type)
//   - FXModule: provides both *LoggerClient and the Logger interface
//
// Core features:
//   - Structured logging with key-value field maps
//   - Leveled output (Debug, Info, Warning, Error, Fatal)
//   - Context-aware variants for request and message correlation
//   - Automatic trace_id and span_id extraction from OpenTelemetry contexts
//   - JSON output with ISO8601 timestamps, written to stderr
//
// # Direct Usage (Without FX)
//
// For small tools or tests, create a logger directly:
//
//	import "github.com/aalemi-dev/mdbridge/logger"
//
//	// Create a new logger (returns concrete *LoggerClient)
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "ticker-feed",
//	})
//
//	// Log with structured fields (without context)
//	log.Info("subscription established", nil, map[string]interface{}{
//		"topic":    "IBM US Equity",
//		"interval": 2,
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id)
//	log.InfoWithContext(ctx, "decoding message payload", nil, map[string]interface{}{
//		"datatype": "SEQUENCE",
//	})
//
// # FX Module Integration
//
// Long-running services assemble the logger through fx. Supply a
// logger.Config to the container alongside FXModule:
//
//	import (
//		"github.com/aalemi-dev/mdbridge/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		logger.FXModule, // Provides *LoggerClient and logger.Logger interface
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				Level:         logger.Info,
//				EnableTracing: true,
//				ServiceName:   "ticker-feed",
//			}
//		}),
//		fx.Invoke(func(log *logger.LoggerClient) {
//			log.Info("bridge started", nil)
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Type Aliases in Consumer Code
//
// Packages that want to stay decoupled from this import path can alias the
// interface:
//
//	package feed
//
//	import mdlog "github.com/aalemi-dev/mdbridge/logger"
//
//	type Logger = mdlog.Logger
//
//	func dispatch(log Logger) {
//		log.Info("dispatching event", nil)
//	}
//
// Switching implementations later means changing only the alias definition.
//
// # Logging Levels
//
// Level constants are plain strings:
//
//	logger.Debug   // "debug"
//	logger.Info    // "info"
//	logger.Warning // "warning"
//	logger.Error   // "error"
//
// Example usage:
//
//	log.Debug("resolving schema definition", nil)
//	log.Info("session started", nil)
//	log.Warn("slow consumer detected", nil)
//	log.Error("element decode failed", err)
//	log.Fatal("engine unrecoverable", err) // calls os.Exit(1) after logging
//
// # Context-Aware Logging
//
//	log.DebugWithContext(ctx, "walking sequence children", nil)
//	log.InfoWithContext(ctx, "message dispatched", nil)
//	log.WarnWithContext(ctx, "partial fill", nil)
//	log.ErrorWithContext(ctx, "access failure", err)
//	log.FatalWithContext(ctx, "session terminated", err) // calls os.Exit(1) after logging
//
// # Tracing Integration
//
// With EnableTracing set, the *WithContext methods inspect the context for an
// active, valid OpenTelemetry span and attach two fields to the entry:
//   - trace_id: the OpenTelemetry trace ID
//   - span_id: the OpenTelemetry span ID
//
// This correlates bridge logs with the spans emitted by the traceobs
// observer. Contexts without a recording span log normally with no extra
// fields.
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by
// multiple goroutines.
package logger
