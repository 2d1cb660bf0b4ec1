// Package tracer provides distributed tracing built on OpenTelemetry.
//
// The package hides the OpenTelemetry SDK behind two small interfaces so
// the rest of the module can create spans, record errors and propagate
// trace context without depending on the tracing library directly.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Tracer interface: the contract for span creation and propagation
//   - TracerClient struct: concrete implementation of Tracer
//   - Span interface: the contract for one traced operation
//   - Constructor returns *TracerClient (concrete type)
//   - FX module provides both *TracerClient and the Tracer interface
//
// Core features:
//   - Span creation at the current time or backdated (StartSpanAt/EndAt),
//     which is how observers reconstruct spans for completed operations
//   - Error recording with span status
//   - Typed span attributes
//   - W3C trace context propagation across service boundaries
//   - OTLP HTTP export to a collector
//
// # Basic Usage (Direct)
//
//	import (
//		"context"
//		"github.com/aalemi-dev/mdbridge/tracer"
//	)
//
//	tc, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "ticker-feed",
//		AppEnv:       "development",
//		EnableExport: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, span := tc.StartSpan(ctx, "session.handleMessage")
//	defer span.End()
//
//	span.SetAttributes(map[string]interface{}{
//		"message_type":   "MarketDataEvents",
//		"correlation_id": 42,
//	})
//
//	if err != nil {
//		span.RecordError(err)
//		return err
//	}
//
// # FX Module Integration
//
// The FX module injects both the concrete client and the interface:
//
//	import (
//		"github.com/aalemi-dev/mdbridge/tracer"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		tracer.FXModule,
//		fx.Provide(
//			func() tracer.Config {
//				return tracer.Config{
//					ServiceName:  "ticker-feed",
//					AppEnv:       "production",
//					EnableExport: true,
//				}
//			},
//		),
//		fx.Invoke(func(t tracer.Tracer) {
//			ctx, span := t.StartSpan(context.Background(), "app-startup")
//			defer span.End()
//		}),
//	)
//	app.Run()
//
// # Recording Spans After the Fact
//
// Observers learn about decode and lifetime operations only once they have
// completed. StartSpanAt and EndAt exist for that case:
//
//	start := time.Now().Add(-op.Duration)
//	ctx, span := tc.StartSpanAt(ctx, "element.decode", start)
//	span.SetAttributes(map[string]interface{}{"datatype": op.Datatype})
//	span.EndAt(start.Add(op.Duration))
//
// # Distributed Tracing Across Services
//
//	// sending side
//	ctx, span := tc.StartSpan(ctx, "send-request")
//	defer span.End()
//
//	for key, value := range tc.GetCarrier(ctx) {
//		req.Header.Set(key, value)
//	}
//
//	// receiving side
//	func handler(w http.ResponseWriter, r *http.Request) {
//		headers := make(map[string]string)
//		for key, values := range r.Header {
//			if len(values) > 0 {
//				headers[key] = values[0]
//			}
//		}
//
//		ctx := tc.SetCarrierOnContext(r.Context(), headers)
//
//		ctx, span := tc.StartSpan(ctx, "handle-request")
//		defer span.End()
//		// ...
//	}
//
// # Thread Safety
//
// All methods on TracerClient and on spans are safe for concurrent use by
// multiple goroutines.
package tracer
