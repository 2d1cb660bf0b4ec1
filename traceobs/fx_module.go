package traceobs

import (
	"go.uber.org/fx"
)

// FXModule defines the Fx module for the trace observer.
// It provides the concrete *TraceObserver. Unlike metricsobs, it does not
// claim the observability.Observer interface slot, so applications that want
// both metrics and tracing can combine the two with
// observability.NewMultiObserver:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    metrics.FXModule,
//	    traceobs.FXModule,
//	    fx.Provide(
//	        fx.Annotate(
//	            func(m *metrics.Metrics, to *traceobs.TraceObserver) observability.Observer {
//	                return observability.NewMultiObserver(metricsobs.NewMetricsObserver(m), to)
//	            },
//	            fx.As(new(observability.Observer)),
//	        ),
//	    ),
//	    element.FXModule,
//	    lifetime.FXModule,
//	    // config providers...
//	)
//
// Dependencies required by this module:
// - tracer.Tracer (provided by tracer.FXModule)
var FXModule = fx.Module("traceobs",
	fx.Provide(
		NewTraceObserver, // Provides *TraceObserver
	),
)
