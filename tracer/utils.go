package tracer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// spanImpl adapts an OpenTelemetry span to the Span interface.
type spanImpl struct {
	span traceSpan.Span
}

// End completes the underlying OpenTelemetry span at the current wall
// clock. The end time is recorded, the span is submitted to the configured
// exporters and must not be touched afterwards.
//
// Example usage:
//
//	ctx, span := tc.StartSpan(ctx, "element.decode")
//	defer span.End()
func (s *spanImpl) End() {
	s.span.End()
}

// EndAt completes the underlying OpenTelemetry span with an explicit end
// timestamp. This is the counterpart to TracerClient.StartSpanAt for
// recording spans after the fact.
func (s *spanImpl) EndAt(at time.Time) {
	s.span.End(traceSpan.WithTimestamp(at))
}

// SetAttributes attaches the given key-value pairs to the span. Go values
// map onto OpenTelemetry attribute types as follows:
//   - string: string attribute
//   - int / int64: integer attribute
//   - float64: floating-point attribute
//   - bool: boolean attribute
//   - anything else: stringified with fmt.Sprint
//
// An empty map is a no-op.
//
// Example usage:
//
//	span.SetAttributes(map[string]interface{}{
//	    "datatype":       "SEQUENCE",
//	    "items":          12,
//	    "correlation_id": 42,
//	    "partial":        false,
//	})
func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	s.span.SetAttributes(attributes...)
}

// RecordError records the error as an event on the span and sets the span
// status to Error with the error's message as description. Failed
// operations then stand out in trace views and can be filtered and alerted
// on.
//
// Call it just before returning the error to the caller.
//
// Example usage:
//
//	value, err := dec.Decode(ctx, el)
//	if err != nil {
//	    span.RecordError(err)
//	    return element.Value{}, err
//	}
func (s *spanImpl) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a new span with the given name. The span becomes a
// child of any span already in ctx, or a root span otherwise, so the span
// hierarchy mirrors the call structure.
//
// Parameters:
//   - ctx: The parent context, which may carry a parent span
//   - name: A descriptive name for the operation (e.g. "session.handleMessage")
//
// Returns:
//   - context.Context: The context carrying the new span
//   - Span: The span, which must be ended when the operation completes
//
// Example:
//
//	func (s *Session) handleMessage(ctx context.Context, el element.Element) error {
//	    ctx, span := s.tracer.StartSpan(ctx, "session.handleMessage")
//	    defer span.End()
//
//	    value, err := s.decoder.Decode(ctx, el)
//	    if err != nil {
//	        span.RecordError(err)
//	        return err
//	    }
//	    return s.dispatch(ctx, value)
//	}
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	tracer := t.tracer.Tracer("")
	ctx, otSpan := tracer.Start(ctx, name)

	span := &spanImpl{
		span: otSpan,
	}

	return ctx, span
}

// StartSpanAt creates a new span with the given name and an explicit start
// time. Parenting works exactly like StartSpan; only the start timestamp is
// taken from the at argument instead of the current time.
//
// This exists for observers and collectors that learn about an operation
// only after it finished: they reconstruct a span covering the real
// wall-clock interval by starting it at the recorded start time and ending
// it with Span.EndAt at start plus the measured duration.
//
// Example:
//
//	ctx, span := tc.StartSpanAt(ctx, "element.decode", start)
//	span.SetAttributes(map[string]interface{}{"datatype": "SEQUENCE"})
//	span.EndAt(start.Add(elapsed))
func (t *TracerClient) StartSpanAt(ctx context.Context, name string, at time.Time) (context.Context, Span) {
	tracer := t.tracer.Tracer("")
	ctx, otSpan := tracer.Start(ctx, name, traceSpan.WithTimestamp(at))

	span := &spanImpl{
		span: otSpan,
	}

	return ctx, span
}

// GetCarrier extracts the trace context from ctx as a header map in W3C
// Trace Context format, ready to be copied onto outbound HTTP headers or
// message properties so the receiving service can continue the trace.
//
// Parameters:
//   - ctx: The context carrying the current trace
//
// Returns:
//   - map[string]string: The trace context headers
//
// The map typically holds:
//   - "traceparent": trace ID, span ID and trace flags
//   - "tracestate": vendor-specific trace data, when present
//
// Example:
//
//	req, _ := http.NewRequestWithContext(ctx, "GET", url, nil)
//	for key, value := range tc.GetCarrier(ctx) {
//	    req.Header.Set(key, value)
//	}
//	resp, err := http.DefaultClient.Do(req)
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext is the complement of GetCarrier: it reads W3C Trace
// Context headers out of the carrier map and returns a context continuing
// that trace. Use it at the receiving side of a service boundary so spans
// created afterwards attach to the upstream trace instead of starting a
// fresh one.
//
// Parameters:
//   - ctx: The base context to inject the trace information into
//   - carrier: The header map received from the upstream service
//
// Returns:
//   - context.Context: A context continuing the upstream trace
//
// Example:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    headers := make(map[string]string)
//	    for key, values := range r.Header {
//	        if len(values) > 0 {
//	            headers[key] = values[0]
//	        }
//	    }
//
//	    ctx := tc.SetCarrierOnContext(r.Context(), headers)
//	    // spans created with ctx join the upstream trace
//	    process(ctx, r)
//	}
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
