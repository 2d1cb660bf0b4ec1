package logger

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observedClient builds a LoggerClient over an in-memory zap core so tests
// can inspect emitted entries instead of parsing stderr.
func observedClient(level zapcore.Level, tracing bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &LoggerClient{Zap: zap.New(core), tracingEnabled: tracing}, logs
}

func requireSingleEntry(t *testing.T, logs *observer.ObservedLogs) observer.LoggedEntry {
	t.Helper()
	if logs.Len() != 1 {
		t.Fatalf("expected exactly 1 log entry, got %d", logs.Len())
	}
	return logs.All()[0]
}

func TestNewLoggerClient(t *testing.T) {
	t.Parallel()

	for _, level := range []string{Debug, Info, Warning, Error, "bogus"} {
		l := NewLoggerClient(Config{Level: level, ServiceName: "ticker-feed"})
		if l == nil || l.Zap == nil {
			t.Fatalf("level %q: expected a usable client", level)
		}
	}

	if !NewLoggerClient(Config{Level: Info, EnableTracing: true}).tracingEnabled {
		t.Error("EnableTracing not propagated to the client")
	}

	// zero CallerSkip falls back to the default without panicking
	if NewLoggerClient(Config{Level: Info}) == nil {
		t.Fatal("expected non-nil client for zero-value CallerSkip")
	}
}

func TestConvertToZapFields(t *testing.T) {
	t.Parallel()
	l, _ := observedClient(zapcore.DebugLevel, false)

	cases := []struct {
		name string
		err  error
		maps []map[string]interface{}
		want int
	}{
		{"empty", nil, nil, 0},
		{"error only", errors.New("engine: session terminated"), nil, 1},
		{"two field maps", nil, []map[string]interface{}{
			{"topic": "IBM US Equity"},
			{"correlation_id": 42},
		}, 2},
		{"error plus fields", errors.New("decode failed"), []map[string]interface{}{
			{"datatype": "SEQUENCE"},
		}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := l.convertToZapFields(tc.err, tc.maps...)
			if len(fields) != tc.want {
				t.Errorf("got %d zap fields, want %d", len(fields), tc.want)
			}
			if tc.err != nil && fields[0].Key != "error" {
				t.Errorf("first field key = %q, want \"error\"", fields[0].Key)
			}
		})
	}
}

func TestLeveledMethods(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		emit  func(l *LoggerClient, msg string, err error)
		level zapcore.Level
	}{
		{"Debug", func(l *LoggerClient, m string, e error) { l.Debug(m, e) }, zapcore.DebugLevel},
		{"Info", func(l *LoggerClient, m string, e error) { l.Info(m, e) }, zapcore.InfoLevel},
		{"Warn", func(l *LoggerClient, m string, e error) { l.Warn(m, e) }, zapcore.WarnLevel},
		{"Error", func(l *LoggerClient, m string, e error) { l.Error(m, e) }, zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, logs := observedClient(zapcore.DebugLevel, false)
			tc.emit(l, "subscription established", nil)
			entry := requireSingleEntry(t, logs)
			if entry.Level != tc.level {
				t.Errorf("entry level = %v, want %v", entry.Level, tc.level)
			}
			if entry.Message != "subscription established" {
				t.Errorf("entry message = %q", entry.Message)
			}
		})
	}
}

func TestErrorAttachesErrorField(t *testing.T) {
	t.Parallel()
	l, logs := observedClient(zapcore.ErrorLevel, false)
	l.Error("element decode failed", errors.New("engine: read failed"))

	entry := requireSingleEntry(t, logs)
	if entry.ContextMap()["error"] != "engine: read failed" {
		t.Errorf("error field = %v, want the wrapped message", entry.ContextMap()["error"])
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	t.Parallel()
	l, logs := observedClient(zapcore.InfoLevel, false)
	l.Debug("resolving schema definition", nil)
	if logs.Len() != 0 {
		t.Errorf("debug entry leaked through an info-level core: %d entries", logs.Len())
	}
}

func TestContextMethods(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		emit  func(l *LoggerClient, ctx context.Context, msg string, err error)
		level zapcore.Level
	}{
		{"DebugWithContext", func(l *LoggerClient, c context.Context, m string, e error) {
			l.DebugWithContext(c, m, e)
		}, zapcore.DebugLevel},
		{"InfoWithContext", func(l *LoggerClient, c context.Context, m string, e error) {
			l.InfoWithContext(c, m, e)
		}, zapcore.InfoLevel},
		{"WarnWithContext", func(l *LoggerClient, c context.Context, m string, e error) {
			l.WarnWithContext(c, m, e)
		}, zapcore.WarnLevel},
		{"ErrorWithContext", func(l *LoggerClient, c context.Context, m string, e error) {
			l.ErrorWithContext(c, m, e)
		}, zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, logs := observedClient(zapcore.DebugLevel, true)
			tc.emit(l, context.Background(), "handling event", nil)
			entry := requireSingleEntry(t, logs)
			if entry.Level != tc.level {
				t.Errorf("entry level = %v, want %v", entry.Level, tc.level)
			}
			// background context carries no span, so no trace correlation
			if _, ok := entry.ContextMap()["trace_id"]; ok {
				t.Error("unexpected trace_id without an active span")
			}
		})
	}
}

func TestExtractTracingFields(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		l, _ := observedClient(zapcore.DebugLevel, false)
		if got := l.extractTracingFields(context.Background()); len(got) != 0 {
			t.Errorf("tracing disabled but got %d fields", len(got))
		}
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		l, _ := observedClient(zapcore.DebugLevel, true)
		//nolint:staticcheck // exercising the nil guard
		if got := l.extractTracingFields(nil); len(got) != 0 {
			t.Errorf("nil context but got %d fields", len(got))
		}
	})

	t.Run("no active span", func(t *testing.T) {
		t.Parallel()
		l, _ := observedClient(zapcore.DebugLevel, true)
		if got := l.extractTracingFields(context.Background()); len(got) != 0 {
			t.Errorf("spanless context but got %d fields", len(got))
		}
	})
}

func TestLoggerInterfaceSatisfied(t *testing.T) {
	t.Parallel()
	l, _ := observedClient(zapcore.InfoLevel, false)
	var _ Logger = l
}
