package logger

// Log level constants naming the levels a Config.Level may carry.
const (
	// Debug is the most verbose level. At Debug every message (Debug,
	// Info, Warning, Error) is emitted; reserve it for development and
	// per-message decode troubleshooting.
	Debug = "debug"

	// Info emits Info, Warning and Error messages and suppresses Debug.
	// This is the level binding services normally run at.
	Info = "info"

	// Warning emits only Warning and Error messages.
	Warning = "warning"

	// Error emits only Error messages.
	Error = "error"
)

// Config carries the settings that shape the logger's behavior.
type Config struct {
	// Level is the minimum level that will be emitted. Valid values are
	// "debug", "info", "warning" and "error"; anything else falls back
	// to "info".
	Level string

	// EnableTracing turns on trace correlation for the WithContext
	// logging variants. When true and the context carries a recording
	// span, each entry gains:
	//   - "trace_id": The trace ID of the current span context
	//   - "span_id": The span ID of the current span context
	//
	// Leave it false when the application does not run a tracer; the
	// WithContext variants then behave exactly like their plain
	// counterparts.
	EnableTracing bool

	// ServiceName populates the "service" field carried by every log
	// entry. Use the name of the consuming service, not this module.
	ServiceName string

	// CallerSkip is the number of stack frames to skip when reporting
	// the caller, for code that puts its own facade on top of this
	// logger.
	//
	//   - 1 (default): calling the wrapper methods directly
	//   - 2: one additional facade layer
	//   - 3+: deeper stacks of wrappers
	//
	// Zero or negative values default to 1.
	CallerSkip int
}
