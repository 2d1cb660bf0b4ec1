// Package traceobs implements the observability.Observer interface on top of
// the tracer package, turning binding operation events into OpenTelemetry
// spans.
//
// # Overview
//
// The element and lifetime packages emit an observability.OperationContext
// for every completed operation, after the fact. This package reconstructs a
// span covering the operation's real wall-clock interval: the span starts at
// now minus the measured duration and ends at now, via the tracer's
// StartSpanAt and EndAt methods.
//
// Span names follow the "component.operation" convention, for example
// "element.decode" or "lifetime.copy". The operation's datatype, item count,
// and metadata are attached as span attributes, and failed operations are
// marked via RecordError.
//
// When the operation carries a caller context with an active span, the
// reconstructed span becomes its child, so decode spans nest under the
// request span that triggered them.
//
// # Usage
//
//	tc, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "ticker-feed",
//		AppEnv:       "production",
//		EnableExport: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	obs := traceobs.NewTraceObserver(tc)
//	dec := element.NewDecoder(element.Config{ServiceName: "ticker-feed"}).
//		WithObserver(obs)
//
// To emit metrics and spans from the same component, combine observers with
// observability.NewMultiObserver.
package traceobs
