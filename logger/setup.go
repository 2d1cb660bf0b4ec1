package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient wraps Uber's Zap logger behind the small surface the binding
// packages need: leveled logging with optional error and field maps, plus
// context-aware variants that attach trace correlation data.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger. It is exported so callers can reach
	// Zap-specific functionality directly; routine logging should go through
	// the wrapper methods.
	Zap *zap.Logger

	// tracingEnabled controls whether the WithContext variants look for an
	// active span and append trace_id/span_id fields.
	tracingEnabled bool
}

// NewLoggerClient builds a logger from the given configuration.
//
// Parameters:
//   - cfg: Configuration for the logger, including log level, caller skip and tracing options
//
// Returns:
//   - *LoggerClient: A configured logger instance ready for use
//
// Every entry is JSON-encoded with an ISO8601 "timestamp" key, a capitalized
// level name, the full caller path and millisecond-rendered durations. The
// process ID and the configured service name ride along as initial fields on
// every entry, and both output streams go to stderr.
//
// CallerSkip defaults to 1, which reports the call site of the wrapper
// methods themselves; set it higher when another logging facade sits on top.
//
// Initialization failure is unrecoverable and terminates the process via
// log.Fatal.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "ticker-feed",
//	})
//	log.Info("subscription established", nil, map[string]interface{}{
//	    "topic": "IBM US Equity",
//	})
func NewLoggerClient(cfg Config) *LoggerClient {

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeCaller = zapcore.FullCallerEncoder
	enc.EncodeDuration = zapcore.MillisDurationEncoder

	level := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		level = zap.DebugLevel
	case Info:
		level = zap.InfoLevel
	case Warning:
		level = zap.WarnLevel
	case Error:
		level = zap.ErrorLevel
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     enc,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	// 1 attributes entries to the caller of the wrapper methods
	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	zapLogger, err := zapCfg.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{
		Zap:            zapLogger,
		tracingEnabled: cfg.EnableTracing,
	}
}
