package tracer

import (
	"context"
	"time"
)

// Tracer is the distributed-tracing contract the binding packages use. It
// wraps OpenTelemetry span creation and trace-context propagation behind a
// small surface that test doubles can implement.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a new span with the given name, parented to the
	// span in ctx when one exists. It returns the context carrying the
	// new span and the span itself; always call span.End() when the
	// operation completes, typically via defer.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// StartSpanAt creates a new span with the given name and an explicit
	// start time. Use it to record spans for operations whose timing
	// was measured elsewhere, such as observers that learn the duration
	// only after the operation completed. Pair with Span.EndAt for the
	// matching end time.
	StartSpanAt(ctx context.Context, name string, at time.Time) (context.Context, Span)

	// GetCarrier extracts the trace context from ctx as a header map,
	// for propagation on outbound requests or messages.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext injects a received header map into ctx so the
	// trace continues across the service boundary.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span is one traced operation. Spans nest: a span started from a context
// that already carries one becomes its child, which is how a message
// dispatch span ends up owning its per-element decode spans.
//
// The interface hides the OpenTelemetry span type so application code has
// no direct dependency on the tracing library.
type Span interface {
	// End completes the span at the current wall clock and hands it to
	// the configured exporters. Defer it right after obtaining the span.
	//
	// Example:
	//   ctx, span := tc.StartSpan(ctx, "element.decode")
	//   defer span.End()
	End()

	// EndAt completes the span at an explicit time instead of the
	// current wall clock. Use together with Tracer.StartSpanAt when
	// recording a span for an operation that has already completed.
	EndAt(at time.Time)

	// SetAttributes attaches key-value context to the span. Strings,
	// integers, floats and booleans are supported; other types are
	// stringified.
	//
	// Example:
	//   span.SetAttributes(map[string]interface{}{
	//     "datatype":       "SEQUENCE",
	//     "items":          12,
	//     "correlation_id": 42,
	//   })
	SetAttributes(attrs map[string]interface{})

	// RecordError marks the span as failed and records the error on it,
	// so failed operations stand out in the trace view.
	//
	// Example:
	//   value, err := dec.Decode(ctx, el)
	//   if err != nil {
	//     span.RecordError(err)
	//     return element.Value{}, err
	//   }
	RecordError(err error)
}
